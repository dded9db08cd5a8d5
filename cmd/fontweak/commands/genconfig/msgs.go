package genconfig

// Message constants
const (
	MsgShort   = "Generate the default settings file"
	MsgLong    = "Output the default fontweak settings to stdout, every value commented out.\n\nWith -w the file is written to $XDG_CONFIG_HOME/fontweak/config.toml unless it already exists."
	MsgExample = `  fontweak genconfig              # Output to stdout
  fontweak genconfig -w           # Write config.toml
  fontweak genconfig -w --force   # Replace an existing config.toml`
	MsgFlagWrite = "Write the settings file instead of printing it"
	MsgFlagForce = "Replace an existing settings file"
	MsgErrGenConfig = "failed to generate settings: %w"
)
