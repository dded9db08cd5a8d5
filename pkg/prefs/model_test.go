package prefs

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/arthur-debert/fontweak/pkg/binding"
	"github.com/arthur-debert/fontweak/pkg/document"
	"github.com/arthur-debert/fontweak/pkg/errors"
	"github.com/arthur-debert/fontweak/pkg/types"
)

var enUS = ModelConfig{Resolver: binding.New(language.AmericanEnglish)}

func parse(t *testing.T, xml string) *etree.Document {
	t.Helper()
	doc, err := document.Parse([]byte(xml), nil)
	require.NoError(t, err)
	return doc
}

const exampleConf = `<?xml version="1.0"?>
<!DOCTYPE fontconfig SYSTEM "fonts.dtd">
<fontconfig>
  <match>
    <test name="family"><string>sans-serif</string></test>
    <edit name="family" mode="prepend" binding="strong"><string>Ubuntu</string></edit>
  </match>
  <match>
    <test name="family"><string>serif</string></test>
    <test name="lang" compare="contains"><string>zh-cn</string></test>
    <edit name="family" mode="prepend" binding="strong"><string>AR PL UMing CN</string></edit>
  </match>
  <match target="font">
    <edit name="antialias" mode="assign"><bool>false</bool></edit>
  </match>
</fontconfig>`

func TestFromDocumentExample(t *testing.T) {
	m := FromDocument(parse(t, exampleConf), enUS)

	sans, ok := m.Slot(types.NewSlotKey(types.SansSerif, ""))
	require.True(t, ok)
	assert.Equal(t, []string{"Ubuntu"}, sans.Families)

	zh, ok := m.Slot(types.NewSlotKey(types.Serif, "zh-cn"))
	require.True(t, ok)
	assert.Equal(t, []string{"AR PL UMing CN"}, zh.Families)

	want := types.DefaultOptions()
	want.Antialias = false
	assert.Equal(t, want, m.Options())

	slots := m.Slots()
	require.Len(t, slots, 4)
	assert.Equal(t, types.SansSerif, slots[0].Family)
	assert.Equal(t, types.Serif, slots[1].Family)
	assert.Equal(t, types.Monospace, slots[2].Family)
	assert.Equal(t, "zh-cn", slots[3].Lang)
}

func TestDefaultSlotSynthesis(t *testing.T) {
	m := FromDocument(parse(t, `<fontconfig><dir>~/.fonts</dir></fontconfig>`), enUS)

	slots := m.Slots()
	require.Len(t, slots, 3)
	for i, f := range types.GenericFamilies {
		assert.Equal(t, f, slots[i].Family)
		assert.Equal(t, types.DefaultLang, slots[i].Lang)
		assert.Empty(t, slots[i].Families)
	}
	assert.Equal(t, types.DefaultOptions(), m.Options())
	assert.Empty(t, m.Aliases())

	assert.Len(t, NewModel(enUS).Slots(), 3)
	assert.Len(t, FromDocument(nil, enUS).Slots(), 3)
}

func TestMalformedAliasDropped(t *testing.T) {
	m := FromDocument(parse(t, `<fontconfig>
	  <alias><family>Arial</family></alias>
	  <alias><family>Helvetica</family><prefer><family>Nimbus Sans L</family></prefer></alias>
	</fontconfig>`), enUS)

	assert.Equal(t, []types.Alias{{Family: "Helvetica", Prefer: "Nimbus Sans L"}}, m.Aliases())
}

func TestDuplicateSlotsMerge(t *testing.T) {
	m := FromDocument(parse(t, `<fontconfig>
	  <match><test name="family"><string>monospace</string></test>
	    <edit name="family" mode="prepend"><string>DejaVu Sans Mono</string><string>Hack</string></edit></match>
	  <match><test name="family"><string>mono</string></test>
	    <edit name="family" mode="prepend"><string>Fira Mono</string><string>Hack</string></edit></match>
	</fontconfig>`), enUS)

	mono, ok := m.Slot(types.NewSlotKey(types.Monospace, ""))
	require.True(t, ok)
	assert.Equal(t, []string{"Fira Mono", "Hack", "DejaVu Sans Mono"}, mono.Families)
	assert.Len(t, m.Slots(), 3)
}

func TestDocumentEncoding(t *testing.T) {
	m := FromDocument(parse(t, exampleConf), enUS)
	m.SetFamilies(types.NewSlotKey(types.Monospace, "en-us"), []string{"Inconsolata"})
	require.NoError(t, m.AddAlias("Arial", "Liberation Sans"))

	root := m.Document().Root()
	children := root.ChildElements()
	// sans, serif zh-cn, mono en-us, alias, six options
	require.Len(t, children, 10)

	assert.Equal(t, "match", children[0].Tag)
	assert.Equal(t, "strong", children[0].SelectElement("edit").SelectAttrValue("binding", ""))

	assert.Equal(t, "strong", children[1].SelectElement("edit").SelectAttrValue("binding", ""))

	assert.Nil(t, children[2].SelectElement("edit").SelectAttr("binding"))

	assert.Equal(t, "alias", children[3].Tag)
	for _, c := range children[4:] {
		assert.Equal(t, "font", c.SelectAttrValue("target", ""))
	}
}

func TestEmptySlotsProduceNoRules(t *testing.T) {
	m := NewModel(enUS)
	require.NoError(t, m.AddSlot(types.NewSlotKey(types.Serif, "ja")))

	for _, c := range m.Document().Root().ChildElements() {
		assert.Equal(t, "font", c.SelectAttrValue("target", ""), "only option rules expected")
	}
}

func TestRoundTrip(t *testing.T) {
	m := NewModel(enUS)
	m.SetFamilies(types.NewSlotKey(types.SansSerif, ""), []string{"Noto Sans", "DejaVu Sans"})
	m.SetFamilies(types.NewSlotKey(types.Serif, "ja"), []string{"IPAMincho"})
	m.SetFamilies(types.NewSlotKey(types.Monospace, "zh-tw"), []string{"WenQuanYi Micro Hei Mono"})
	require.NoError(t, m.AddAlias("Helvetica", "Nimbus Sans L"))
	require.NoError(t, m.AddAlias("Times", "Nimbus Roman No9 L"))
	require.NoError(t, m.SetOption("hintstyle", "slight"))
	require.NoError(t, m.SetOption("rgba", "rgb"))
	require.NoError(t, m.SetOption("embeddedbitmap", "false"))

	again := FromDocument(m.Document(), enUS)
	assert.Equal(t, m.Slots(), again.Slots())
	assert.Equal(t, m.Aliases(), again.Aliases())
	assert.Equal(t, m.Options(), again.Options())
}

func TestIdempotentSave(t *testing.T) {
	m := FromDocument(parse(t, exampleConf), enUS)
	first, err := document.Serialize(m.Document())
	require.NoError(t, err)

	second, err := document.Serialize(m.Document())
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))

	reloaded := FromDocument(parse(t, string(first)), enUS)
	third, err := document.Serialize(reloaded.Document())
	require.NoError(t, err)
	assert.Equal(t, string(first), string(third))
}

func TestSkeletonKept(t *testing.T) {
	m := FromDocument(parse(t, `<?xml version="1.0"?>
<!DOCTYPE fontconfig SYSTEM "fonts.dtd">
<fontconfig>
  <dir>~/.fonts</dir>
  <match target="pattern"><edit name="dpi" mode="assign"><double>96</double></edit></match>
  <include ignore_missing="yes">conf.d</include>
</fontconfig>`), enUS)

	var tags []string
	for _, c := range m.Document().Root().ChildElements() {
		tags = append(tags, c.Tag)
	}
	require.GreaterOrEqual(t, len(tags), 2)
	assert.Equal(t, []string{"dir", "include"}, tags[:2])
	assert.Equal(t, 1, m.Unrecognized())
}

func TestKeepUnrecognized(t *testing.T) {
	conf := `<fontconfig>
  <match target="pattern"><edit name="dpi" mode="assign"><double>96</double></edit></match>
  <match><test name="family"><string>serif</string></test><edit name="family"><string>Gentium</string></edit></match>
</fontconfig>`

	dropped := FromDocument(parse(t, conf), enUS)
	assert.Equal(t, 1, dropped.Unrecognized())
	for _, c := range dropped.Document().Root().ChildElements() {
		assert.NotEqual(t, "pattern", c.SelectAttrValue("target", ""))
	}

	cfg := enUS
	cfg.KeepUnrecognized = true
	kept := FromDocument(parse(t, conf), cfg)
	assert.Equal(t, 1, kept.Unrecognized())
	children := kept.Document().Root().ChildElements()
	require.NotEmpty(t, children)
	assert.Equal(t, "pattern", children[0].SelectAttrValue("target", ""))

	// the retained rule is not classified twice on reload
	again := FromDocument(kept.Document(), cfg)
	assert.Equal(t, 1, again.Unrecognized())
	assert.Equal(t, kept.Slots(), again.Slots())
}

func TestSlotMutations(t *testing.T) {
	m := NewModel(enUS)
	ja := types.NewSlotKey(types.SansSerif, "ja")

	require.NoError(t, m.AddSlot(ja))
	err := m.AddSlot(types.NewSlotKey(types.SansSerif, "JA"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrSlotExists))

	require.NoError(t, m.AppendFamily(ja, "Noto Sans CJK JP"))
	require.NoError(t, m.AppendFamily(ja, " VL Gothic "))
	assert.True(t, errors.IsErrorCode(m.AppendFamily(ja, "VL Gothic"), errors.ErrAlreadyExists))
	assert.True(t, errors.IsErrorCode(m.AppendFamily(ja, "  "), errors.ErrInvalidInput))

	require.NoError(t, m.AppendFamily(ja, "IPAGothic"))
	require.NoError(t, m.MoveFamily(ja, 2, 0))
	slot, _ := m.Slot(ja)
	assert.Equal(t, []string{"IPAGothic", "Noto Sans CJK JP", "VL Gothic"}, slot.Families)

	require.NoError(t, m.MoveFamily(ja, 0, 2))
	slot, _ = m.Slot(ja)
	assert.Equal(t, []string{"Noto Sans CJK JP", "VL Gothic", "IPAGothic"}, slot.Families)
	assert.True(t, errors.IsErrorCode(m.MoveFamily(ja, 0, 3), errors.ErrInvalidInput))

	require.NoError(t, m.RemoveFamily(ja, "VL Gothic"))
	assert.True(t, errors.IsErrorCode(m.RemoveFamily(ja, "VL Gothic"), errors.ErrFamilyNotFound))
	slot, _ = m.Slot(ja)
	assert.Equal(t, []string{"Noto Sans CJK JP", "IPAGothic"}, slot.Families)

	// copies do not alias model state
	slot.Families[0] = "changed"
	slot, _ = m.Slot(ja)
	assert.Equal(t, "Noto Sans CJK JP", slot.Families[0])

	require.NoError(t, m.RemoveSlot(ja))
	_, ok := m.Slot(ja)
	assert.False(t, ok)
	assert.True(t, errors.IsErrorCode(m.RemoveSlot(ja), errors.ErrSlotNotFound))
	assert.True(t, errors.IsErrorCode(m.AppendFamily(ja, "x"), errors.ErrSlotNotFound))

	base := types.NewSlotKey(types.Serif, "")
	m.SetFamilies(base, []string{"Gentium", "", "Gentium", "Charis SIL"})
	slot, _ = m.Slot(base)
	assert.Equal(t, []string{"Gentium", "Charis SIL"}, slot.Families)

	require.NoError(t, m.RemoveSlot(base))
	slot, ok = m.Slot(base)
	require.True(t, ok)
	assert.Empty(t, slot.Families)
	assert.Len(t, m.Slots(), 3)
}

func TestAliasMutations(t *testing.T) {
	m := NewModel(enUS)
	assert.True(t, errors.IsErrorCode(m.AddAlias("Arial", ""), errors.ErrInvalidInput))

	require.NoError(t, m.AddAlias("Arial", "Liberation Sans"))
	require.NoError(t, m.AddAlias("Courier", "Liberation Mono"))
	require.NoError(t, m.RemoveAlias("arial"))
	assert.Equal(t, []types.Alias{{Family: "Courier", Prefer: "Liberation Mono"}}, m.Aliases())
	assert.True(t, errors.IsErrorCode(m.RemoveAlias("Arial"), errors.ErrAliasNotFound))

	m.SetAliases([]types.Alias{{Family: "A", Prefer: "B"}, {Family: "C"}})
	assert.Equal(t, []types.Alias{{Family: "A", Prefer: "B"}}, m.Aliases())
}

func TestOptionMutations(t *testing.T) {
	m := NewModel(enUS)
	require.NoError(t, m.SetOption("antialias", "false"))
	assert.False(t, m.Options().Antialias)
	assert.True(t, errors.IsErrorCode(m.SetOption("gamma", "2"), errors.ErrOptionUnknown))

	set := types.DefaultOptions()
	set.LCDFilter = types.LCDLegacy
	m.SetOptions(set)
	assert.Equal(t, set, m.Options())
}
