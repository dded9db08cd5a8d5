package suggest

// Message constants
const (
	MsgShort   = "Suggest installed fonts for empty slots"
	MsgLong    = "Scan the installed fonts and propose a well-known family for each slot that has none. With --apply the suggestions are written to fonts.conf."
	MsgExample = `  fontweak suggest
  fontweak suggest --lang ja --lang ko
  fontweak suggest --apply`
	MsgFlagApply = "Write the suggestions to fonts.conf"
	MsgFlagLang  = "Also suggest for the slots of this language (repeatable)"
	MsgErrSuggest = "failed to suggest fonts: %w"
)
