package types

import (
	"fmt"
	"strings"
)

// DefaultLang marks a slot without a language condition
const DefaultLang = "default"

// SlotKey identifies a slot: a generic family, optionally scoped to a language
type SlotKey struct {
	Family GenericFamily
	Lang   string
}

// NewSlotKey builds a key, mapping an empty language to DefaultLang
func NewSlotKey(family GenericFamily, lang string) SlotKey {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		lang = DefaultLang
	}
	return SlotKey{Family: family, Lang: lang}
}

// IsDefault reports whether the key has no language condition
func (k SlotKey) IsDefault() bool {
	return k.Lang == "" || strings.EqualFold(k.Lang, DefaultLang)
}

// Equal compares keys, ignoring the case of the language tag
func (k SlotKey) Equal(other SlotKey) bool {
	if k.Family != other.Family {
		return false
	}
	if k.IsDefault() || other.IsDefault() {
		return k.IsDefault() == other.IsDefault()
	}
	return strings.EqualFold(k.Lang, other.Lang)
}

func (k SlotKey) String() string {
	if k.IsDefault() {
		return k.Family.String()
	}
	return fmt.Sprintf("%s [%s]", k.Family, k.Lang)
}

// BaseSlotKeys are the three language-independent slots every model carries
func BaseSlotKeys() []SlotKey {
	keys := make([]SlotKey, 0, len(GenericFamilies))
	for _, f := range GenericFamilies {
		keys = append(keys, SlotKey{Family: f, Lang: DefaultLang})
	}
	return keys
}

// Slot is the ordered list of preferred families for one (family, lang) pair.
// The first entry is the most preferred.
type Slot struct {
	Family   GenericFamily `json:"family" yaml:"family"`
	Lang     string        `json:"lang" yaml:"lang"`
	Families []string      `json:"families" yaml:"families"`
}

// Key returns the slot's identity
func (s Slot) Key() SlotKey {
	return NewSlotKey(s.Family, s.Lang)
}

// IsEmpty reports whether the slot would produce no rule
func (s Slot) IsEmpty() bool {
	return len(s.Families) == 0
}

// Clone returns a copy that shares no memory with s
func (s Slot) Clone() Slot {
	c := s
	c.Families = append([]string(nil), s.Families...)
	return c
}
