// Package binding decides the priority of family-substitution rules.
//
// fontconfig evaluates rules in document order, but an edit with
// binding="strong" takes effect wherever it sits. The language-independent
// slot and slots for languages other than the running locale are written
// strong so they override whatever another program wrote earlier in the
// file. A slot for the running locale keeps the default binding and composes
// with locale-specific system configuration in the normal order.
package binding

import (
	"os"
	"strings"

	"golang.org/x/text/language"

	"github.com/arthur-debert/fontweak/pkg/types"
)

// Binding is the priority attribute of a substitution edit. Default means
// no binding attribute is written, which fontconfig treats as weak.
type Binding int

const (
	Default Binding = iota
	Strong
)

func (b Binding) String() string {
	if b == Strong {
		return "strong"
	}
	return "default"
}

// IsStrong reports whether the rule carries binding="strong"
func (b Binding) IsStrong() bool {
	return b == Strong
}

// legacyDefaultLang is the tag older versions wrote for the
// language-independent slot.
const legacyDefaultLang = "en"

// Resolver computes bindings against a fixed locale
type Resolver struct {
	Locale language.Tag
}

// New returns a resolver for locale
func New(locale language.Tag) *Resolver {
	return &Resolver{Locale: locale}
}

// Parse returns a resolver for a textual locale such as "zh_CN.UTF-8"
func Parse(locale string) *Resolver {
	return New(ParseLocale(locale))
}

// FromEnvironment returns a resolver for the process locale, read from
// LC_ALL, LC_MESSAGES and LANG in that order.
func FromEnvironment() *Resolver {
	return Parse(EnvironmentLocale())
}

// EnvironmentLocale returns the first non-empty locale variable
func EnvironmentLocale() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v
		}
	}
	return ""
}

// ParseLocale turns a POSIX locale name into a language tag. The C and
// POSIX locales and anything unparsable map to English.
func ParseLocale(s string) language.Tag {
	s = normalize(s)
	switch s {
	case "", "c", "posix":
		return language.English
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.English
	}
	return tag
}

// normalize strips codeset and modifier and uses '-' as separator:
// "en_US.UTF-8@euro" becomes "en-us".
func normalize(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	return strings.ToLower(strings.ReplaceAll(s, "_", "-"))
}

// Resolve returns the binding for a slot language
func (r *Resolver) Resolve(lang string) Binding {
	key := types.NewSlotKey(types.SansSerif, lang)
	if key.IsDefault() || strings.EqualFold(strings.TrimSpace(lang), legacyDefaultLang) {
		return Strong
	}
	if r.matches(lang) {
		return Default
	}
	return Strong
}

// ResolveSlot is Resolve for a slot key
func (r *Resolver) ResolveSlot(key types.SlotKey) Binding {
	return r.Resolve(key.Lang)
}

// matches reports whether lang names the resolver's locale: same base
// language, and same region when lang carries one.
func (r *Resolver) matches(lang string) bool {
	locale := r.Locale
	if locale == language.Und {
		locale = language.English
	}

	tag, err := language.Parse(normalize(lang))
	if err != nil {
		return matchesText(normalize(lang), locale)
	}

	base, _ := tag.Base()
	localeBase, _ := locale.Base()
	if base != localeBase {
		return false
	}
	region, conf := tag.Region()
	if conf != language.Exact {
		return true
	}
	localeRegion, _ := locale.Region()
	return region == localeRegion
}

// matchesText compares tags x/text cannot parse, such as private codes
func matchesText(lang string, locale language.Tag) bool {
	parts := strings.Split(lang, "-")
	localeParts := strings.Split(strings.ToLower(locale.String()), "-")
	if parts[0] != localeParts[0] {
		return false
	}
	if len(parts) < 2 || len(parts[1]) != 2 {
		return true
	}
	localeRegion, _ := locale.Region()
	return strings.EqualFold(parts[1], localeRegion.String())
}
