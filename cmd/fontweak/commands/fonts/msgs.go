package fonts

// Message constants
const (
	MsgShort    = "List installed font families"
	MsgLong     = "Scan the XDG font directories, plus any listed under [fonts] dirs in the settings file, and print the families found."
	MsgErrFonts = "failed to list fonts: %w"
)
