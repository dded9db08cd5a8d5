package types

import "strings"

// Alias remaps one family name to a preferred one
type Alias struct {
	Family string `json:"family" yaml:"family"`
	Prefer string `json:"prefer" yaml:"prefer"`
}

// IsComplete reports whether both names are present
func (a Alias) IsComplete() bool {
	return strings.TrimSpace(a.Family) != "" && strings.TrimSpace(a.Prefer) != ""
}
