package prefs

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/arthur-debert/fontweak/pkg/binding"
	"github.com/arthur-debert/fontweak/pkg/document"
	"github.com/arthur-debert/fontweak/pkg/errors"
	"github.com/arthur-debert/fontweak/pkg/logging"
	"github.com/arthur-debert/fontweak/pkg/rules"
	"github.com/arthur-debert/fontweak/pkg/types"
)

// ModelConfig controls how a Model is built and encoded
type ModelConfig struct {
	// Resolver decides rule bindings on encode. Nil uses the process locale.
	Resolver *binding.Resolver
	// KeepUnrecognized re-emits rules the model does not understand,
	// unchanged and ahead of the generated ones.
	KeepUnrecognized bool
}

// Model is the editable view of a fonts.conf document
type Model struct {
	options      types.OptionSet
	slots        []types.Slot
	aliases      []types.Alias
	skeleton     *etree.Document
	unrecognized []*etree.Element
	dropped      int
	cfg          ModelConfig
}

// NewModel returns a model for an empty document: default options and the
// three empty base slots.
func NewModel(cfg ModelConfig) *Model {
	return FromDocument(document.New(), cfg)
}

// FromDocument builds a model from doc. doc is not modified and is not
// referenced afterwards.
func FromDocument(doc *etree.Document, cfg ModelConfig) *Model {
	if cfg.Resolver == nil {
		cfg.Resolver = binding.FromEnvironment()
	}
	logger := logging.GetLogger("prefs")
	if doc == nil || doc.Root() == nil {
		doc = document.New()
	}

	m := &Model{
		options:  types.DefaultOptions(),
		skeleton: rules.StripRules(doc),
		cfg:      cfg,
	}

	for _, item := range rules.Classify(doc.Root()) {
		switch item.Kind {
		case rules.KindSlot:
			m.mergeSlot(item.Slot)
		case rules.KindOption:
			rules.ApplyOption(&m.options, item.Option)
		case rules.KindAlias:
			m.aliases = append(m.aliases, item.Alias)
		default:
			m.dropped++
			if cfg.KeepUnrecognized {
				m.unrecognized = append(m.unrecognized, item.Element.Copy())
			}
		}
	}
	m.ensureBaseSlots()

	logger.Debug().
		Int("slots", len(m.slots)).
		Int("aliases", len(m.aliases)).
		Int("unrecognized", m.dropped).
		Bool("keep_unrecognized", cfg.KeepUnrecognized).
		Msg("Built preference model")
	return m
}

// mergeSlot adds a decoded slot. A second rule for the same key is evaluated
// after the first by fontconfig and prepends ahead of it, so its families
// come first.
func (m *Model) mergeSlot(slot types.Slot) {
	i := m.index(slot.Key())
	if i < 0 {
		m.slots = append(m.slots, slot.Clone())
		return
	}
	m.slots[i].Families = mergeFamilies(slot.Families, m.slots[i].Families)
}

// ensureBaseSlots puts the three language-independent slots first, in
// canonical order, creating the missing ones empty.
func (m *Model) ensureBaseSlots() {
	ordered := make([]types.Slot, 0, len(m.slots)+len(types.GenericFamilies))
	for _, key := range types.BaseSlotKeys() {
		if i := m.index(key); i >= 0 {
			ordered = append(ordered, m.slots[i])
			continue
		}
		ordered = append(ordered, types.Slot{Family: key.Family, Lang: key.Lang})
	}
	for _, s := range m.slots {
		if !s.Key().IsDefault() {
			ordered = append(ordered, s)
		}
	}
	m.slots = ordered
}

func (m *Model) index(key types.SlotKey) int {
	for i, s := range m.slots {
		if s.Key().Equal(key) {
			return i
		}
	}
	return -1
}

// Options returns the global rendering options
func (m *Model) Options() types.OptionSet {
	return m.options
}

// Slots returns a copy of all slots, base slots first
func (m *Model) Slots() []types.Slot {
	out := make([]types.Slot, len(m.slots))
	for i, s := range m.slots {
		out[i] = s.Clone()
	}
	return out
}

// Slot returns a copy of the slot for key
func (m *Model) Slot(key types.SlotKey) (types.Slot, bool) {
	i := m.index(key)
	if i < 0 {
		return types.Slot{}, false
	}
	return m.slots[i].Clone(), true
}

// Aliases returns a copy of the aliases in order
func (m *Model) Aliases() []types.Alias {
	return append([]types.Alias(nil), m.aliases...)
}

// Unrecognized returns how many rules were not understood on load
func (m *Model) Unrecognized() int {
	return m.dropped
}

// SetOptions replaces all options
func (m *Model) SetOptions(set types.OptionSet) {
	m.options = set
}

// SetOption assigns one option from its textual form
func (m *Model) SetOption(name, value string) error {
	return rules.SetOption(&m.options, name, value)
}

// AddSlot creates an empty slot for key
func (m *Model) AddSlot(key types.SlotKey) error {
	if m.index(key) >= 0 {
		return errors.Newf(errors.ErrSlotExists, "slot %s already exists", key).
			WithDetail("slot", key.String())
	}
	key = types.NewSlotKey(key.Family, key.Lang)
	m.slots = append(m.slots, types.Slot{Family: key.Family, Lang: key.Lang})
	return nil
}

// RemoveSlot deletes the slot for key. Base slots cannot be removed and are
// cleared instead.
func (m *Model) RemoveSlot(key types.SlotKey) error {
	i := m.index(key)
	if i < 0 {
		return slotNotFound(key)
	}
	if key.IsDefault() {
		m.slots[i].Families = nil
		return nil
	}
	m.slots = append(m.slots[:i], m.slots[i+1:]...)
	return nil
}

// SetFamilies replaces the families of the slot for key, creating the slot
// when it does not exist. Names are trimmed; blanks and repeats are dropped.
func (m *Model) SetFamilies(key types.SlotKey, families []string) {
	families = mergeFamilies(families, nil)
	i := m.index(key)
	if i < 0 {
		key = types.NewSlotKey(key.Family, key.Lang)
		m.slots = append(m.slots, types.Slot{Family: key.Family, Lang: key.Lang, Families: families})
		return
	}
	m.slots[i].Families = families
}

// AppendFamily adds family as the least preferred entry of the slot
func (m *Model) AppendFamily(key types.SlotKey, family string) error {
	i := m.index(key)
	if i < 0 {
		return slotNotFound(key)
	}
	family = strings.TrimSpace(family)
	if family == "" {
		return errors.New(errors.ErrInvalidInput, "family name is empty")
	}
	if indexOf(m.slots[i].Families, family) >= 0 {
		return errors.Newf(errors.ErrAlreadyExists, "%s is already listed for %s", family, key)
	}
	m.slots[i].Families = append(m.slots[i].Families, family)
	return nil
}

// RemoveFamily removes family from the slot
func (m *Model) RemoveFamily(key types.SlotKey, family string) error {
	i := m.index(key)
	if i < 0 {
		return slotNotFound(key)
	}
	j := indexOf(m.slots[i].Families, strings.TrimSpace(family))
	if j < 0 {
		return errors.Newf(errors.ErrFamilyNotFound, "%s is not listed for %s", family, key).
			WithDetail("family", family)
	}
	fams := m.slots[i].Families
	m.slots[i].Families = append(fams[:j:j], fams[j+1:]...)
	return nil
}

// MoveFamily moves the entry at position from to position to, shifting the
// entries in between.
func (m *Model) MoveFamily(key types.SlotKey, from, to int) error {
	i := m.index(key)
	if i < 0 {
		return slotNotFound(key)
	}
	fams := m.slots[i].Families
	if from < 0 || from >= len(fams) || to < 0 || to >= len(fams) {
		return errors.Newf(errors.ErrInvalidInput, "position out of range for %s (%d entries)", key, len(fams)).
			WithDetails(map[string]interface{}{"from": from, "to": to})
	}
	name := fams[from]
	rest := append(append([]string(nil), fams[:from]...), fams[from+1:]...)
	moved := make([]string, 0, len(fams))
	moved = append(moved, rest[:to]...)
	moved = append(moved, name)
	moved = append(moved, rest[to:]...)
	m.slots[i].Families = moved
	return nil
}

// AddAlias appends an alias. Both names are required.
func (m *Model) AddAlias(family, prefer string) error {
	a := types.Alias{Family: strings.TrimSpace(family), Prefer: strings.TrimSpace(prefer)}
	if !a.IsComplete() {
		return errors.New(errors.ErrInvalidInput, "an alias needs both a family and a preferred family")
	}
	m.aliases = append(m.aliases, a)
	return nil
}

// RemoveAlias removes every alias for family
func (m *Model) RemoveAlias(family string) error {
	family = strings.TrimSpace(family)
	kept := m.aliases[:0:0]
	for _, a := range m.aliases {
		if !strings.EqualFold(a.Family, family) {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(m.aliases) {
		return errors.Newf(errors.ErrAliasNotFound, "no alias for %s", family).
			WithDetail("family", family)
	}
	m.aliases = kept
	return nil
}

// SetAliases replaces all aliases, dropping incomplete ones
func (m *Model) SetAliases(aliases []types.Alias) {
	m.aliases = m.aliases[:0:0]
	for _, a := range aliases {
		if a.IsComplete() {
			m.aliases = append(m.aliases, a)
		}
	}
}

// Document encodes the model into a new document: the skeleton, retained
// unrecognized rules, family-substitution rules, aliases, then options.
func (m *Model) Document() *etree.Document {
	doc := m.skeleton.Copy()
	root := doc.Root()

	for _, e := range m.unrecognized {
		root.AddChild(e.Copy())
	}
	for _, s := range m.slots {
		rules.EncodeSlot(root, s, m.cfg.Resolver.ResolveSlot(s.Key()).IsStrong())
	}
	for _, a := range m.aliases {
		rules.EncodeAlias(root, a)
	}
	rules.EncodeOptions(root, m.options)
	return doc
}

func slotNotFound(key types.SlotKey) error {
	return errors.Newf(errors.ErrSlotNotFound, "no slot for %s", key).
		WithDetail("slot", key.String())
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}

// mergeFamilies returns first followed by the entries of second not already
// present, trimmed and without blanks.
func mergeFamilies(first, second []string) []string {
	out := make([]string, 0, len(first)+len(second))
	seen := make(map[string]struct{}, len(first)+len(second))
	for _, list := range [][]string{first, second} {
		for _, f := range list {
			f = strings.TrimSpace(f)
			if f == "" {
				continue
			}
			if _, ok := seen[f]; ok {
				continue
			}
			seen[f] = struct{}{}
			out = append(out, f)
		}
	}
	return out
}
