package prefs

import (
	_ "embed"
)

// defaultTemplate is installed when no configuration exists yet and when an
// existing one cannot be parsed.
//
//go:embed default.conf
var defaultTemplate []byte

// DefaultTemplate returns a copy of the bundled fonts.conf
func DefaultTemplate() []byte {
	return append([]byte(nil), defaultTemplate...)
}
