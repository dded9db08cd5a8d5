package show

// Message constants
const (
	MsgShort   = "Show the current font preferences"
	MsgLong    = "Print the rendering options, the preferred families of every slot with the binding each is written with, and the family aliases found in fonts.conf."
	MsgExample = `  fontweak show
  fontweak show --locale ja_JP.UTF-8   # bindings as a Japanese session sees them
  fontweak show --format yaml`
	MsgErrShow = "failed to read preferences: %w"
)
