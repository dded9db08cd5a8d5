package rules

import (
	"github.com/beevik/etree"

	"github.com/arthur-debert/fontweak/pkg/logging"
	"github.com/arthur-debert/fontweak/pkg/types"
)

// Kind tells what a top-level rule was recognized as
type Kind int

const (
	KindUnrecognized Kind = iota
	KindSlot
	KindOption
	KindAlias
)

func (k Kind) String() string {
	switch k {
	case KindSlot:
		return "slot"
	case KindOption:
		return "option"
	case KindAlias:
		return "alias"
	default:
		return "unrecognized"
	}
}

// Item is one classified top-level rule. Only the field matching Kind is set.
// Element points into the classified tree and must not be modified.
type Item struct {
	Kind    Kind
	Slot    types.Slot
	Option  OptionSetting
	Alias   types.Alias
	Element *etree.Element
}

// IsRule reports whether a top-level element is a <match> or <alias> rule
func IsRule(e *etree.Element) bool {
	return e.Tag == tagMatch || e.Tag == tagAlias
}

// Classify walks the direct children of root once and returns an item for
// every rule, in document order. Non-rule children are skipped. The tree is
// not modified.
func Classify(root *etree.Element) []Item {
	if root == nil {
		return nil
	}
	logger := logging.GetLogger("rules")
	var items []Item
	for _, e := range root.ChildElements() {
		if !IsRule(e) {
			continue
		}
		item := classify(e)
		if item.Kind == KindUnrecognized {
			logger.Debug().
				Str("tag", e.Tag).
				Str("path", e.GetPath()).
				Msg("Unrecognized rule")
		}
		items = append(items, item)
	}
	logger.Trace().Int("rules", len(items)).Msg("Classified document")
	return items
}

func classify(e *etree.Element) Item {
	item := Item{Kind: KindUnrecognized, Element: e}
	switch {
	case e.Tag == tagAlias:
		if a, ok := DecodeAlias(e); ok {
			item.Kind = KindAlias
			item.Alias = a
		}
	case IsOptionRule(e):
		if o, ok := DecodeOption(e); ok {
			item.Kind = KindOption
			item.Option = o
		}
	default:
		if s, ok := DecodeMatch(e); ok {
			item.Kind = KindSlot
			item.Slot = s
		}
	}
	return item
}

// StripRules returns a copy of doc with every top-level rule removed. The
// declaration, doctype, comments and non-rule elements are kept.
func StripRules(doc *etree.Document) *etree.Document {
	out := doc.Copy()
	root := out.Root()
	if root == nil {
		return out
	}
	for _, e := range root.ChildElements() {
		if IsRule(e) {
			root.RemoveChild(e)
		}
	}
	return out
}
