package types

// ShowResult is the preference view printed by the show command.
type ShowResult struct {
	Path         string     `json:"path" yaml:"path"`
	Locale       string     `json:"locale" yaml:"locale"`
	Options      OptionSet  `json:"options" yaml:"options"`
	Slots        []SlotView `json:"slots" yaml:"slots"`
	Aliases      []Alias    `json:"aliases" yaml:"aliases"`
	Unrecognized int        `json:"unrecognized" yaml:"unrecognized,omitempty"`
}

// SlotView is a slot together with the binding it is written with.
type SlotView struct {
	Slot    Slot   `json:"slot" yaml:",inline"`
	Binding string `json:"binding" yaml:"binding"`
}

// OptionRow describes one rendering option for listing.
type OptionRow struct {
	Name    string   `json:"name" yaml:"name"`
	Value   string   `json:"value" yaml:"value"`
	Default string   `json:"default" yaml:"default"`
	Choices []string `json:"choices" yaml:"choices"`
}

// OptionsResult holds the result of 'option list'.
type OptionsResult struct {
	Options []OptionRow `json:"options" yaml:"options"`
}

// ChangeResult reports a mutation that was saved to disk.
type ChangeResult struct {
	Command string `json:"command" yaml:"command"`
	Path    string `json:"path" yaml:"path"`
	Message string `json:"message" yaml:"message"`
}

// FontsResult holds the installed families found by a scan.
type FontsResult struct {
	Dirs     []string `json:"dirs" yaml:"dirs"`
	Families []string `json:"families" yaml:"families"`
}

// SuggestionView is one proposed family for an empty slot.
type SuggestionView struct {
	Slot   string `json:"slot" yaml:"slot"`
	Family string `json:"family" yaml:"family"`
}

// SuggestResult holds the result of the suggest command.
type SuggestResult struct {
	Suggestions []SuggestionView `json:"suggestions" yaml:"suggestions"`
	Applied     bool             `json:"applied" yaml:"applied"`
	Path        string           `json:"path,omitempty" yaml:"path,omitempty"`
}

// SchemeInfo describes one saved scheme.
type SchemeInfo struct {
	Name    string `json:"name" yaml:"name"`
	Path    string `json:"path" yaml:"path"`
	Current bool   `json:"current" yaml:"current"`
}

// SchemeListResult holds the result of 'scheme list'.
type SchemeListResult struct {
	Schemes []SchemeInfo `json:"schemes" yaml:"schemes"`
}

// GenConfigResult holds the result of the genconfig command.
type GenConfigResult struct {
	ConfigContent string   `json:"configContent"`
	FilesWritten  []string `json:"filesWritten"`
}
