package scheme

import (
	_ "embed"
	"strings"
)

// Message constants
const (
	MsgShort         = "Save and switch between named configurations"
	MsgListShort     = "List saved schemes"
	MsgSaveShort     = "Save the current fonts.conf as a scheme"
	MsgApplyShort    = "Replace fonts.conf with a saved scheme"
	MsgRenameShort   = "Rename a scheme"
	MsgDeleteShort   = "Delete a scheme"
	MsgFlagOverwrite = "Replace an existing scheme with the same name"
	MsgErrScheme     = "scheme operation failed: %w"
)

// Embedded message files
var (
	//go:embed scheme-long.txt
	msgLongRaw string
	MsgLong    = strings.TrimSpace(msgLongRaw)

	//go:embed scheme-example.txt
	msgExampleRaw string
	MsgExample    = strings.TrimSpace(msgExampleRaw)
)
