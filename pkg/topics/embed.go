package topics

import (
	"embed"
	"io/fs"
)

//go:embed content
var content embed.FS

// Content returns the help topics shipped with the binary.
func Content() fs.FS {
	sub, err := fs.Sub(content, "content")
	if err != nil {
		panic(err)
	}
	return sub
}
