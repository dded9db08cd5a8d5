package fontweak

import (
	_ "embed"
	"strings"
)

// Message constants
const (
	MsgRootShort = "Edit fontconfig font preferences"

	// Flag descriptions
	MsgFlagVerbose          = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfigFile       = "fonts.conf to manage (default $XDG_CONFIG_HOME/fontconfig/fonts.conf)"
	MsgFlagLocale           = "Locale used to decide rule bindings (default from LC_ALL, LC_MESSAGES, LANG)"
	MsgFlagPlain            = "Disable colors and styling"
	MsgFlagFormat           = "Output format: text, yaml or json"
	MsgFlagKeepUnrecognized = "Keep rules fontweak does not understand when saving"

	// Errors
	MsgErrNoCommand    = "no command specified"
	MsgErrUnknownFormat = "unknown output format %q (want text, yaml or json)"
	MsgErrLoadSettings = "failed to load settings: %w"
	MsgErrOpenConfig   = "failed to open %s: %w"

	// Version
	MsgVersionShort = "Print version information"
	MsgVersionLine  = "fontweak version %s\n  commit: %s\n  built:  %s\n"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
