package types

import "strings"

// GenericFamily is one of the abstract font categories fontconfig substitutes.
type GenericFamily int

const (
	SansSerif GenericFamily = iota
	Serif
	Monospace
)

// GenericFamilies lists the generic families in their canonical order
var GenericFamilies = []GenericFamily{SansSerif, Serif, Monospace}

// String returns the fontconfig spelling of the family
func (g GenericFamily) String() string {
	switch g {
	case SansSerif:
		return "sans-serif"
	case Monospace:
		return "monospace"
	default:
		return "serif"
	}
}

// ParseGenericFamily normalizes a family test value. "sans" and
// "sans-serif" map to SansSerif, "mono" and "monospace" to Monospace;
// everything else is Serif.
func ParseGenericFamily(s string) GenericFamily {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sans", "sans-serif":
		return SansSerif
	case "mono", "monospace":
		return Monospace
	default:
		return Serif
	}
}

// LookupGenericFamily is the strict variant of ParseGenericFamily used for
// user input, where an unknown name is an error rather than serif.
func LookupGenericFamily(s string) (GenericFamily, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sans", "sans-serif":
		return SansSerif, true
	case "serif":
		return Serif, true
	case "mono", "monospace":
		return Monospace, true
	}
	return Serif, false
}

// MarshalText implements encoding.TextMarshaler
func (g GenericFamily) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}
