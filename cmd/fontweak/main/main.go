package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/fontweak/cmd/fontweak"
	"github.com/arthur-debert/fontweak/pkg/style"
)

func main() {
	rootCmd := fontweak.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		renderer := style.Setup(os.Stderr, false)
		fmt.Fprintln(os.Stderr, renderer.RenderError(err))
		os.Exit(1)
	}
}
