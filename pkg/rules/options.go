package rules

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/arthur-debert/fontweak/pkg/errors"
	"github.com/arthur-debert/fontweak/pkg/types"
)

// Option names as written in fonts.conf
const (
	OptAntialias      = "antialias"
	OptHinting        = "hinting"
	OptHintStyle      = "hintstyle"
	OptRGBA           = "rgba"
	OptLCDFilter      = "lcdfilter"
	OptEmbeddedBitmap = "embeddedbitmap"
)

// OptionSetting is one decoded global option rule
type OptionSetting struct {
	Name  string
	Value string
}

type optionSpec struct {
	name    string
	literal string
	choices func() []string
	get     func(types.OptionSet) string
	show    func(types.OptionSet) string
	set     func(*types.OptionSet, string) bool
}

func boolOption(name string, field func(*types.OptionSet) *bool) optionSpec {
	return optionSpec{
		name:    name,
		literal: tagBool,
		choices: func() []string { return []string{"true", "false"} },
		get: func(o types.OptionSet) string {
			return formatBool(*field(&o))
		},
		show: func(o types.OptionSet) string {
			return formatBool(*field(&o))
		},
		set: func(o *types.OptionSet, s string) bool {
			b, ok := parseBool(s)
			if ok {
				*field(o) = b
			}
			return ok
		},
	}
}

// optionSpecs is in the order options are written
var optionSpecs = []optionSpec{
	boolOption(OptAntialias, func(o *types.OptionSet) *bool { return &o.Antialias }),
	boolOption(OptHinting, func(o *types.OptionSet) *bool { return &o.Hinting }),
	{
		name:    OptHintStyle,
		literal: tagConst,
		choices: types.HintStyleNames,
		get:     func(o types.OptionSet) string { return o.HintStyle.Const() },
		show:    func(o types.OptionSet) string { return o.HintStyle.String() },
		set: func(o *types.OptionSet, s string) bool {
			v, ok := types.ParseHintStyle(s)
			if ok {
				o.HintStyle = v
			}
			return ok
		},
	},
	{
		name:    OptRGBA,
		literal: tagConst,
		choices: types.SubpixelNames,
		get:     func(o types.OptionSet) string { return o.Subpixel.Const() },
		show:    func(o types.OptionSet) string { return o.Subpixel.String() },
		set: func(o *types.OptionSet, s string) bool {
			v, ok := types.ParseSubpixel(s)
			if ok {
				o.Subpixel = v
			}
			return ok
		},
	},
	{
		name:    OptLCDFilter,
		literal: tagConst,
		choices: types.LCDFilterNames,
		get:     func(o types.OptionSet) string { return o.LCDFilter.Const() },
		show:    func(o types.OptionSet) string { return o.LCDFilter.String() },
		set: func(o *types.OptionSet, s string) bool {
			v, ok := types.ParseLCDFilter(s)
			if ok {
				o.LCDFilter = v
			}
			return ok
		},
	},
	boolOption(OptEmbeddedBitmap, func(o *types.OptionSet) *bool { return &o.EmbeddedBitmap }),
}

func lookupOption(name string) (optionSpec, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "subpixel" {
		name = OptRGBA
	}
	for _, spec := range optionSpecs {
		if spec.name == name {
			return spec, true
		}
	}
	return optionSpec{}, false
}

// OptionNames returns the known option names in write order
func OptionNames() []string {
	names := make([]string, len(optionSpecs))
	for i, spec := range optionSpecs {
		names[i] = spec.name
	}
	return names
}

// OptionChoices returns the accepted values for an option
func OptionChoices(name string) ([]string, bool) {
	spec, ok := lookupOption(name)
	if !ok {
		return nil, false
	}
	return spec.choices(), true
}

// IsOptionRule reports whether e is a <match target="font"> rule
func IsOptionRule(e *etree.Element) bool {
	return e.Tag == tagMatch && e.SelectAttrValue(attrTarget, "") == targetFont
}

// DecodeOption reads the option assigned by a <match target="font"> rule.
// ok is false for unknown option names, a missing edit, or a literal of the
// wrong kind or value.
func DecodeOption(e *etree.Element) (OptionSetting, bool) {
	edit := e.SelectElement(tagEdit)
	if edit == nil {
		return OptionSetting{}, false
	}
	spec, ok := lookupOption(edit.SelectAttrValue(attrName, ""))
	if !ok {
		return OptionSetting{}, false
	}
	value, ok := firstText(edit, spec.literal)
	if !ok {
		return OptionSetting{}, false
	}
	var probe types.OptionSet
	if !spec.set(&probe, value) {
		return OptionSetting{}, false
	}
	return OptionSetting{Name: spec.name, Value: value}, true
}

// ApplyOption stores a decoded setting in set. Settings that no longer parse
// leave set unchanged.
func ApplyOption(set *types.OptionSet, s OptionSetting) {
	if spec, ok := lookupOption(s.Name); ok {
		spec.set(set, s.Value)
	}
}

// SetOption assigns a textual value to the named option
func SetOption(set *types.OptionSet, name, value string) error {
	spec, ok := lookupOption(name)
	if !ok {
		return errors.Newf(errors.ErrOptionUnknown, "unknown option %q", name).
			WithDetail("known", OptionNames())
	}
	if !spec.set(set, value) {
		return errors.Newf(errors.ErrOptionValue, "invalid value %q for %s (want one of %s)",
			value, spec.name, strings.Join(spec.choices(), ", "))
	}
	return nil
}

// OptionValue returns the user-facing value of the named option, as listed
// by OptionChoices
func OptionValue(set types.OptionSet, name string) (string, error) {
	spec, ok := lookupOption(name)
	if !ok {
		return "", errors.Newf(errors.ErrOptionUnknown, "unknown option %q", name)
	}
	return spec.show(set), nil
}

// OptionLiteral returns the fontconfig literal written for the named option
func OptionLiteral(set types.OptionSet, name string) (string, error) {
	spec, ok := lookupOption(name)
	if !ok {
		return "", errors.Newf(errors.ErrOptionUnknown, "unknown option %q", name)
	}
	return spec.get(set), nil
}

// EncodeOptions appends one <match target="font"> rule per option to root
func EncodeOptions(root *etree.Element, set types.OptionSet) {
	for _, spec := range optionSpecs {
		match := root.CreateElement(tagMatch)
		match.CreateAttr(attrTarget, targetFont)
		edit := match.CreateElement(tagEdit)
		edit.CreateAttr(attrName, spec.name)
		edit.CreateAttr(attrMode, "assign")
		edit.CreateElement(spec.literal).SetText(spec.get(set))
	}
}

// FormatOptions renders set as name=value pairs in write order
func FormatOptions(set types.OptionSet) []string {
	out := make([]string, len(optionSpecs))
	for i, spec := range optionSpecs {
		out[i] = fmt.Sprintf("%s=%s", spec.name, spec.show(set))
	}
	return out
}
