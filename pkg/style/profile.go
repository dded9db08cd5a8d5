package style

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Setup configures lipgloss for w and returns the renderer to use. Styling
// is dropped when w is not a terminal, when NO_COLOR is set, or when plain
// is requested.
func Setup(w io.Writer, plain bool) Renderer {
	if plain || !IsTerminal(w) {
		lipgloss.SetColorProfile(termenv.Ascii)
		return NewPlainRenderer()
	}

	output := termenv.NewOutput(w)
	lipgloss.SetColorProfile(output.EnvColorProfile())
	lipgloss.SetHasDarkBackground(output.HasDarkBackground())
	return NewTerminalRenderer()
}

// IsTerminal reports whether w is a character device
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
