// Package family implements the commands that edit family-substitution
// slots: replacing, clearing and reordering the preferred fonts of a generic
// family, optionally scoped to a language.
package family

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/fontweak/pkg/errors"
	"github.com/arthur-debert/fontweak/pkg/logging"
	"github.com/arthur-debert/fontweak/pkg/prefs"
	"github.com/arthur-debert/fontweak/pkg/types"
)

// SlotOptions selects a slot by generic family name and language.
type SlotOptions struct {
	Store   *prefs.Store
	Generic string
	// Lang is a fontconfig language such as "ja" or "zh-tw". Empty or
	// "default" selects the language-independent slot.
	Lang string
}

// ParseSlotKey validates user input naming a slot
func ParseSlotKey(generic, lang string) (types.SlotKey, error) {
	family, ok := types.LookupGenericFamily(generic)
	if !ok {
		return types.SlotKey{}, errors.Newf(errors.ErrInvalidInput,
			"unknown generic family %q (want sans-serif, serif or monospace)", generic)
	}
	lang = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(lang), "_", "-"))
	if strings.ContainsAny(lang, " \t<>&") {
		return types.SlotKey{}, errors.Newf(errors.ErrInvalidInput, "invalid language %q", lang)
	}
	return types.NewSlotKey(family, lang), nil
}

func (o SlotOptions) resolve() (*prefs.Model, types.SlotKey, error) {
	if o.Store == nil || o.Store.Model() == nil {
		return nil, types.SlotKey{}, errors.New(errors.ErrInvalidInput, "no configuration loaded")
	}
	key, err := ParseSlotKey(o.Generic, o.Lang)
	if err != nil {
		return nil, types.SlotKey{}, err
	}
	return o.Store.Model(), key, nil
}

func (o SlotOptions) save(model *prefs.Model, command, message string) (*types.ChangeResult, error) {
	if err := o.Store.Save(model); err != nil {
		return nil, err
	}
	logger := logging.GetLogger("commands.family")
	logger.Info().Str("command", command).Msg(message)
	return &types.ChangeResult{Command: command, Path: o.Store.Path(), Message: message}, nil
}

// SetOptions defines the options for the Set command.
type SetOptions struct {
	SlotOptions
	Families []string
}

// Set replaces the families of a slot, creating the slot if needed.
func Set(opts SetOptions) (*types.ChangeResult, error) {
	model, key, err := opts.resolve()
	if err != nil {
		return nil, err
	}
	model.SetFamilies(key, opts.Families)
	slot, _ := model.Slot(key)
	return opts.save(model, "family set",
		fmt.Sprintf("%s: %s", key, strings.Join(slot.Families, ", ")))
}

// Clear empties a slot. An empty slot writes no rule.
func Clear(opts SlotOptions) (*types.ChangeResult, error) {
	model, key, err := opts.resolve()
	if err != nil {
		return nil, err
	}
	if _, ok := model.Slot(key); !ok {
		return nil, errors.Newf(errors.ErrSlotNotFound, "no slot for %s", key)
	}
	model.SetFamilies(key, nil)
	return opts.save(model, "family clear", fmt.Sprintf("%s cleared", key))
}

// AddSlot creates an empty language slot.
func AddSlot(opts SlotOptions) (*types.ChangeResult, error) {
	model, key, err := opts.resolve()
	if err != nil {
		return nil, err
	}
	if err := model.AddSlot(key); err != nil {
		return nil, err
	}
	return opts.save(model, "family add-slot", fmt.Sprintf("%s added", key))
}

// RemoveSlot deletes a language slot. The three base slots are cleared
// instead of removed.
func RemoveSlot(opts SlotOptions) (*types.ChangeResult, error) {
	model, key, err := opts.resolve()
	if err != nil {
		return nil, err
	}
	if err := model.RemoveSlot(key); err != nil {
		return nil, err
	}
	msg := fmt.Sprintf("%s removed", key)
	if key.IsDefault() {
		msg = fmt.Sprintf("%s cleared", key)
	}
	return opts.save(model, "family remove-slot", msg)
}

// AppendOptions defines the options for the Append command.
type AppendOptions struct {
	SlotOptions
	Family string
}

// Append adds a family as the least preferred entry of a slot.
func Append(opts AppendOptions) (*types.ChangeResult, error) {
	model, key, err := opts.resolve()
	if err != nil {
		return nil, err
	}
	if err := model.AppendFamily(key, opts.Family); err != nil {
		return nil, err
	}
	return opts.save(model, "family add", fmt.Sprintf("%s added to %s", strings.TrimSpace(opts.Family), key))
}

// Remove drops a family from a slot.
func Remove(opts AppendOptions) (*types.ChangeResult, error) {
	model, key, err := opts.resolve()
	if err != nil {
		return nil, err
	}
	if err := model.RemoveFamily(key, opts.Family); err != nil {
		return nil, err
	}
	return opts.save(model, "family remove", fmt.Sprintf("%s removed from %s", strings.TrimSpace(opts.Family), key))
}

// MoveOptions defines the options for the Move command. Positions are
// 1-based, as shown by the show command.
type MoveOptions struct {
	SlotOptions
	From int
	To   int
}

// Move changes the priority of one family within a slot.
func Move(opts MoveOptions) (*types.ChangeResult, error) {
	model, key, err := opts.resolve()
	if err != nil {
		return nil, err
	}
	if err := model.MoveFamily(key, opts.From-1, opts.To-1); err != nil {
		return nil, err
	}
	slot, _ := model.Slot(key)
	return opts.save(model, "family move",
		fmt.Sprintf("%s: %s", key, strings.Join(slot.Families, ", ")))
}
