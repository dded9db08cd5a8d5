// Command fontweak-completions writes the shell completion scripts shipped
// with release archives.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/fontweak/cmd/fontweak"
)

// scripts maps each shell to its file name and generator
var scripts = map[string]struct {
	file string
	gen  func(root *cobra.Command, w io.Writer) error
}{
	"bash": {"fontweak.bash", func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletionV2(w, true) }},
	"zsh":  {"_fontweak", func(root *cobra.Command, w io.Writer) error { return root.GenZshCompletion(w) }},
	"fish": {"fontweak.fish", func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) }},
	"powershell": {"fontweak.ps1", func(root *cobra.Command, w io.Writer) error {
		return root.GenPowerShellCompletionWithDesc(w)
	}},
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <bash|zsh|fish|powershell|all> [dir]\n", os.Args[0])
		os.Exit(1)
	}

	shell := os.Args[1]
	rootCmd := fontweak.NewRootCmd()

	if shell != "all" {
		script, ok := scripts[shell]
		if !ok {
			fmt.Fprintf(os.Stderr, "Unknown shell: %s\n", shell)
			fmt.Fprintf(os.Stderr, "Supported shells: bash, zsh, fish, powershell\n")
			os.Exit(1)
		}
		if err := script.gen(rootCmd, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating %s completion: %v\n", shell, err)
			os.Exit(1)
		}
		return
	}

	dir := "completions"
	if len(os.Args) > 2 {
		dir = os.Args[2]
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", dir, err)
		os.Exit(1)
	}
	for name, script := range scripts {
		if err := writeScript(rootCmd, filepath.Join(dir, script.file), script.gen); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating %s completion: %v\n", name, err)
			os.Exit(1)
		}
	}
}

func writeScript(root *cobra.Command, path string, gen func(*cobra.Command, io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gen(root, f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
