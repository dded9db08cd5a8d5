// Package fallback suggests initial fonts for empty slots from curated lists
// of common free fonts. Nothing here reads or writes documents; callers
// decide whether to apply a suggestion.
package fallback

import (
	"strings"

	"github.com/arthur-debert/fontweak/pkg/types"
)

// candidateTable lists preferred fonts per language, per generic family
var candidateTable = map[string]map[types.GenericFamily][]string{
	types.DefaultLang: {
		types.SansSerif: {"Ubuntu", "Nimbus Sans L", "DejaVu Sans", "Liberation Sans", "Droid Sans"},
		types.Serif:     {"Nimbus Roman No9 L", "DejaVu Serif", "Liberation Serif", "Droid Serif"},
		types.Monospace: {"Ubuntu Mono", "DejaVu Sans Mono", "Liberation Mono", "Droid Sans Mono"},
	},
	"zh-cn": {
		types.SansSerif: cjkSans,
		types.Serif:     {"AR PL UMing CN"},
		types.Monospace: cjkMono,
	},
	"zh-tw": {
		types.SansSerif: cjkSans,
		types.Serif:     {"AR PL UMing TW"},
		types.Monospace: cjkMono,
	},
	"zh-hk": {
		types.SansSerif: cjkSans,
		types.Serif:     {"AR PL UMing HK"},
		types.Monospace: cjkMono,
	},
	"ja": {
		types.SansSerif: {"Droid Sans Japanese", "WenQuanYi Micro Hei", "WenQuanYi Zen Hei"},
		types.Serif:     {"AR PL UMing TW"},
		types.Monospace: {"Droid Sans Japanese", "WenQuanYi Micro Hei Mono"},
	},
	"ko": {
		types.SansSerif: cjkSans,
		types.Serif:     {"AR PL UMing TW"},
		types.Monospace: cjkMono,
	},
}

var (
	cjkSans = []string{"WenQuanYi Micro Hei", "Droid Sans Fallback", "WenQuanYi Zen Hei"}
	cjkMono = []string{"WenQuanYi Micro Hei Mono"}
)

// Languages returns the languages with curated candidates, default first
func Languages() []string {
	return []string{types.DefaultLang, "zh-cn", "zh-tw", "zh-hk", "ja", "ko"}
}

// Candidates returns the curated list for a slot, most preferred first. Keys
// without a curated list return nil.
func Candidates(key types.SlotKey) []string {
	lang := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(key.Lang), "_", "-"))
	if key.IsDefault() {
		lang = types.DefaultLang
	}
	byFamily, ok := candidateTable[lang]
	if !ok {
		return nil
	}
	return append([]string(nil), byFamily[key.Family]...)
}

// InstalledSet indexes installed family names for FirstInstalled
func InstalledSet(installed []string) map[string]struct{} {
	set := make(map[string]struct{}, len(installed))
	for _, name := range installed {
		set[name] = struct{}{}
	}
	return set
}

// FirstInstalled returns the first candidate present in installed
func FirstInstalled(candidates []string, installed map[string]struct{}) (string, bool) {
	for _, c := range candidates {
		if _, ok := installed[c]; ok {
			return c, true
		}
	}
	return "", false
}

// Suggestion proposes a font for an empty slot
type Suggestion struct {
	Key    types.SlotKey `json:"-" yaml:"-"`
	Slot   string        `json:"slot" yaml:"slot"`
	Family string        `json:"family" yaml:"family"`
}

// Suggest returns a suggestion for every empty slot that has an installed
// candidate, in slot order.
func Suggest(slots []types.Slot, installed []string) []Suggestion {
	set := InstalledSet(installed)
	var out []Suggestion
	for _, slot := range slots {
		if !slot.IsEmpty() {
			continue
		}
		key := slot.Key()
		if family, ok := FirstInstalled(Candidates(key), set); ok {
			out = append(out, Suggestion{Key: key, Slot: key.String(), Family: family})
		}
	}
	return out
}
