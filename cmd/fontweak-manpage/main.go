// Command fontweak-manpage writes the fontweak(1) man pages, one per
// command, into a directory.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/fontweak/cmd/fontweak"
	"github.com/arthur-debert/fontweak/internal/version"
)

func main() {
	dir := "man"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	rootCmd := fontweak.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "FONTWEAK",
		Section: "1",
		Source:  "fontweak " + version.Version,
		Manual:  "fontweak manual",
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", dir, err)
		os.Exit(1)
	}
	if err := doc.GenManTree(rootCmd, header, dir); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
