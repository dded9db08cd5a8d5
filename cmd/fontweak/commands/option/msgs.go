package option

// Message constants
const (
	MsgShort      = "List and change rendering options"
	MsgLong       = "Rendering options control antialiasing, hinting and subpixel rendering for every font."
	MsgListShort  = "List rendering options with their values and choices"
	MsgSetShort   = "Set a rendering option"
	MsgResetShort = "Restore rendering options to their defaults"
	MsgExample    = `  fontweak option list
  fontweak option set hintstyle slight
  fontweak option set rgba rgb
  fontweak option reset hinting hintstyle
  fontweak option reset                # every option`
	MsgErrOption = "failed to update option: %w"
)
