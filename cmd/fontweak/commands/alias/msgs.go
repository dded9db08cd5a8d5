package alias

// Message constants
const (
	MsgShort       = "Substitute one family for another"
	MsgLong        = "An alias makes every request for a family use another one instead, for example to replace Helvetica with Liberation Sans."
	MsgAddShort    = "Prefer a family whenever another is requested"
	MsgRemoveShort = "Remove the alias for a family"
	MsgExample     = `  fontweak alias add Helvetica "Liberation Sans"
  fontweak alias remove Helvetica`
	MsgErrAlias = "failed to update alias: %w"
)
