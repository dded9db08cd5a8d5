package rules

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/arthur-debert/fontweak/pkg/types"
)

// DecodeMatch reads a family-substitution rule. Only children carrying
// attributes take part: <test name="family">, <test name="lang"> and
// <edit name="family">. ok is false when the family test or the edited
// family list is missing.
func DecodeMatch(e *etree.Element) (types.Slot, bool) {
	var (
		family   string
		haveFam  bool
		lang     string
		families []string
	)
	for _, child := range e.ChildElements() {
		if len(child.Attr) == 0 {
			continue
		}
		name := child.SelectAttrValue(attrName, "")
		switch child.Tag {
		case tagTest:
			switch name {
			case nameFamily:
				family, haveFam = firstText(child, tagString)
			case nameLang:
				lang, _ = firstText(child, tagString)
			}
		case tagEdit:
			if name == nameFamily {
				families = texts(child, tagString)
			}
		}
	}
	if !haveFam || len(families) == 0 {
		return types.Slot{}, false
	}
	key := types.NewSlotKey(types.ParseGenericFamily(family), lang)
	return types.Slot{Family: key.Family, Lang: key.Lang, Families: families}, true
}

// EncodeSlot appends the family-substitution rule for slot to root. Slots
// without families produce nothing and EncodeSlot returns nil.
func EncodeSlot(root *etree.Element, slot types.Slot, strong bool) *etree.Element {
	if slot.IsEmpty() {
		return nil
	}
	match := root.CreateElement(tagMatch)

	test := match.CreateElement(tagTest)
	test.CreateAttr(attrName, nameFamily)
	test.CreateElement(tagString).SetText(slot.Family.String())

	if key := slot.Key(); !key.IsDefault() {
		lang := match.CreateElement(tagTest)
		lang.CreateAttr(attrName, nameLang)
		lang.CreateAttr(attrCompare, "contains")
		lang.CreateElement(tagString).SetText(strings.TrimSpace(key.Lang))
	}

	edit := match.CreateElement(tagEdit)
	edit.CreateAttr(attrName, nameFamily)
	edit.CreateAttr(attrMode, "prepend")
	if strong {
		edit.CreateAttr(attrBinding, "strong")
	}
	for _, f := range slot.Families {
		edit.CreateElement(tagString).SetText(f)
	}
	return match
}
