package reset

// Message constants
const (
	MsgShort    = "Discard all preferences"
	MsgLong     = "Replace fonts.conf with the default template: default rendering options, no preferred families and no aliases. Save a scheme first to keep the current file."
	MsgFlagYes  = "Do not ask for confirmation"
	MsgConfirm  = "This replaces %s with the defaults. Run again with --yes to continue."
	MsgErrReset = "failed to reset preferences: %w"
)
