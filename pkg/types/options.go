package types

import "strings"

// HintStyle is the fontconfig hintstyle option
type HintStyle int

const (
	HintNone HintStyle = iota
	HintSlight
	HintMedium
	HintFull
)

// Subpixel is the fontconfig rgba option
type Subpixel int

const (
	SubpixelNone Subpixel = iota
	SubpixelRGB
	SubpixelBGR
	SubpixelVRGB
	SubpixelVBGR
)

// LCDFilter is the fontconfig lcdfilter option
type LCDFilter int

const (
	LCDNone LCDFilter = iota
	LCDDefault
	LCDLight
	LCDLegacy
)

// enumEntry pairs the short name shown to users with the constant written to
// fonts.conf
type enumEntry struct {
	name     string
	constant string
}

var hintStyleTable = []enumEntry{
	HintNone:   {"none", "hintnone"},
	HintSlight: {"slight", "hintslight"},
	HintMedium: {"medium", "hintmedium"},
	HintFull:   {"full", "hintfull"},
}

var subpixelTable = []enumEntry{
	SubpixelNone: {"none", "none"},
	SubpixelRGB:  {"rgb", "rgb"},
	SubpixelBGR:  {"bgr", "bgr"},
	SubpixelVRGB: {"vrgb", "vrgb"},
	SubpixelVBGR: {"vbgr", "vbgr"},
}

var lcdFilterTable = []enumEntry{
	LCDNone:    {"none", "lcdnone"},
	LCDDefault: {"default", "lcddefault"},
	LCDLight:   {"light", "lcdlight"},
	LCDLegacy:  {"legacy", "lcdlegacy"},
}

// lookupEnum accepts either spelling, case-insensitively
func lookupEnum(table []enumEntry, s string) (int, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, e := range table {
		if s == e.name || s == e.constant {
			return i, true
		}
	}
	return 0, false
}

func enumNames(table []enumEntry) []string {
	names := make([]string, len(table))
	for i, e := range table {
		names[i] = e.name
	}
	return names
}

func (h HintStyle) String() string {
	if h < 0 || int(h) >= len(hintStyleTable) {
		return DefaultOptions().HintStyle.String()
	}
	return hintStyleTable[h].name
}

// Const returns the fontconfig constant for h
func (h HintStyle) Const() string {
	if h < 0 || int(h) >= len(hintStyleTable) {
		return DefaultOptions().HintStyle.Const()
	}
	return hintStyleTable[h].constant
}

// ParseHintStyle reads "slight" or "hintslight"
func ParseHintStyle(s string) (HintStyle, bool) {
	i, ok := lookupEnum(hintStyleTable, s)
	return HintStyle(i), ok
}

// HintStyleNames returns the accepted short names in order
func HintStyleNames() []string { return enumNames(hintStyleTable) }

func (p Subpixel) String() string {
	if p < 0 || int(p) >= len(subpixelTable) {
		return DefaultOptions().Subpixel.String()
	}
	return subpixelTable[p].name
}

// Const returns the fontconfig constant for p
func (p Subpixel) Const() string {
	if p < 0 || int(p) >= len(subpixelTable) {
		return DefaultOptions().Subpixel.Const()
	}
	return subpixelTable[p].constant
}

// ParseSubpixel reads an rgba constant
func ParseSubpixel(s string) (Subpixel, bool) {
	i, ok := lookupEnum(subpixelTable, s)
	return Subpixel(i), ok
}

// SubpixelNames returns the accepted names in order
func SubpixelNames() []string { return enumNames(subpixelTable) }

func (f LCDFilter) String() string {
	if f < 0 || int(f) >= len(lcdFilterTable) {
		return DefaultOptions().LCDFilter.String()
	}
	return lcdFilterTable[f].name
}

// Const returns the fontconfig constant for f
func (f LCDFilter) Const() string {
	if f < 0 || int(f) >= len(lcdFilterTable) {
		return DefaultOptions().LCDFilter.Const()
	}
	return lcdFilterTable[f].constant
}

// ParseLCDFilter reads "light" or "lcdlight"
func ParseLCDFilter(s string) (LCDFilter, bool) {
	i, ok := lookupEnum(lcdFilterTable, s)
	return LCDFilter(i), ok
}

// LCDFilterNames returns the accepted short names in order
func LCDFilterNames() []string { return enumNames(lcdFilterTable) }

func (h HintStyle) MarshalText() ([]byte, error) { return []byte(h.String()), nil }
func (p Subpixel) MarshalText() ([]byte, error)  { return []byte(p.String()), nil }
func (f LCDFilter) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// OptionSet holds the global rendering options
type OptionSet struct {
	Antialias      bool      `json:"antialias" yaml:"antialias"`
	Hinting        bool      `json:"hinting" yaml:"hinting"`
	HintStyle      HintStyle `json:"hintstyle" yaml:"hintstyle"`
	Subpixel       Subpixel  `json:"rgba" yaml:"rgba"`
	LCDFilter      LCDFilter `json:"lcdfilter" yaml:"lcdfilter"`
	EmbeddedBitmap bool      `json:"embeddedbitmap" yaml:"embeddedbitmap"`
}

// DefaultOptions returns the values used for options a document does not set
func DefaultOptions() OptionSet {
	return OptionSet{
		Antialias:      true,
		Hinting:        true,
		HintStyle:      HintNone,
		Subpixel:       SubpixelNone,
		LCDFilter:      LCDDefault,
		EmbeddedBitmap: true,
	}
}
