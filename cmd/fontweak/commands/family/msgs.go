package family

import (
	_ "embed"
	"strings"
)

// Message constants
const (
	MsgShort           = "Edit the preferred families of a slot"
	MsgSetShort        = "Replace the families of a slot"
	MsgClearShort      = "Remove every family from a slot"
	MsgAddShort        = "Append a family to a slot"
	MsgRemoveShort     = "Remove a family from a slot"
	MsgMoveShort       = "Move a family to another position"
	MsgAddSlotShort    = "Create an empty slot for a language"
	MsgRemoveSlotShort = "Delete a language slot"
	MsgFlagLang        = "Fontconfig language of the slot (ja, zh-tw, ...); empty for the default slot"
	MsgErrFamily       = "failed to update slot: %w"
	MsgErrPosition     = "invalid position %q"
)

// Embedded message files
var (
	//go:embed family-long.txt
	msgLongRaw string
	MsgLong    = strings.TrimSpace(msgLongRaw)

	//go:embed family-example.txt
	msgExampleRaw string
	MsgExample    = strings.TrimSpace(msgExampleRaw)
)
