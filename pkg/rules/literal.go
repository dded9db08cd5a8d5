package rules

import (
	"strings"

	"github.com/beevik/etree"
)

// Element and attribute names of the fontconfig rule language
const (
	tagMatch  = "match"
	tagAlias  = "alias"
	tagTest   = "test"
	tagEdit   = "edit"
	tagString = "string"
	tagBool   = "bool"
	tagConst  = "const"
	tagFamily = "family"
	tagPrefer = "prefer"

	attrName    = "name"
	attrTarget  = "target"
	attrMode    = "mode"
	attrBinding = "binding"
	attrCompare = "compare"

	nameFamily = "family"
	nameLang   = "lang"

	targetFont = "font"
)

// firstText returns the trimmed text of the first child named tag
func firstText(e *etree.Element, tag string) (string, bool) {
	child := e.SelectElement(tag)
	if child == nil {
		return "", false
	}
	text := strings.TrimSpace(child.Text())
	return text, text != ""
}

// texts returns the trimmed, non-empty texts of all children named tag
func texts(e *etree.Element, tag string) []string {
	var out []string
	for _, child := range e.SelectElements(tag) {
		if text := strings.TrimSpace(child.Text()); text != "" {
			out = append(out, text)
		}
	}
	return out
}

// parseBool reads a fontconfig boolean literal
func parseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on", "1", "t", "y":
		return true, true
	case "false", "no", "off", "0", "f", "n":
		return false, true
	}
	return false, false
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
