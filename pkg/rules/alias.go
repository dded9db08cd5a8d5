package rules

import (
	"github.com/beevik/etree"

	"github.com/arthur-debert/fontweak/pkg/types"
)

// DecodeAlias reads the first <family> and the first <prefer><family> of an
// <alias> rule. ok is false unless both are present.
func DecodeAlias(e *etree.Element) (types.Alias, bool) {
	family, _ := firstText(e, tagFamily)
	var prefer string
	if p := e.SelectElement(tagPrefer); p != nil {
		prefer, _ = firstText(p, tagFamily)
	}
	a := types.Alias{Family: family, Prefer: prefer}
	return a, a.IsComplete()
}

// EncodeAlias appends a strong alias rule for a to root
func EncodeAlias(root *etree.Element, a types.Alias) *etree.Element {
	alias := root.CreateElement(tagAlias)
	alias.CreateAttr(attrBinding, "strong")
	alias.CreateElement(tagFamily).SetText(a.Family)
	alias.CreateElement(tagPrefer).CreateElement(tagFamily).SetText(a.Prefer)
	return alias
}
