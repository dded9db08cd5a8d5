package option

import (
	"fmt"

	"github.com/arthur-debert/fontweak/pkg/errors"
	"github.com/arthur-debert/fontweak/pkg/logging"
	"github.com/arthur-debert/fontweak/pkg/prefs"
	"github.com/arthur-debert/fontweak/pkg/rules"
	"github.com/arthur-debert/fontweak/pkg/types"
)

// ListOptions defines the options for the List command.
type ListOptions struct {
	Store *prefs.Store
}

// List reports every rendering option with its current value, default and
// accepted values, in the order they are written to the file.
func List(opts ListOptions) (*types.OptionsResult, error) {
	log := logging.GetLogger("commands.option")
	log.Debug().Str("command", "OptionList").Msg("Executing command")

	model, err := loaded(opts.Store)
	if err != nil {
		return nil, err
	}

	current := model.Options()
	defaults := types.DefaultOptions()
	result := &types.OptionsResult{}
	for _, name := range rules.OptionNames() {
		value, err := rules.OptionValue(current, name)
		if err != nil {
			return nil, err
		}
		def, err := rules.OptionValue(defaults, name)
		if err != nil {
			return nil, err
		}
		choices, _ := rules.OptionChoices(name)
		result.Options = append(result.Options, types.OptionRow{
			Name:    name,
			Value:   value,
			Default: def,
			Choices: choices,
		})
	}
	return result, nil
}

// SetOptions defines the options for the Set command.
type SetOptions struct {
	Store *prefs.Store
	Name  string
	Value string
}

// Set changes one rendering option and saves the file.
func Set(opts SetOptions) (*types.ChangeResult, error) {
	log := logging.GetLogger("commands.option")
	log.Debug().Str("command", "OptionSet").Str("name", opts.Name).Str("value", opts.Value).Msg("Executing command")

	model, err := loaded(opts.Store)
	if err != nil {
		return nil, err
	}
	if err := model.SetOption(opts.Name, opts.Value); err != nil {
		return nil, err
	}
	if err := opts.Store.Save(model); err != nil {
		return nil, err
	}

	value, _ := rules.OptionValue(model.Options(), opts.Name)
	log.Info().Str("command", "OptionSet").Str("name", opts.Name).Str("value", value).Msg("Command finished")
	return &types.ChangeResult{
		Command: "option set",
		Path:    opts.Store.Path(),
		Message: fmt.Sprintf("%s set to %s", opts.Name, value),
	}, nil
}

// ResetOptions defines the options for the Reset command.
type ResetOptions struct {
	Store *prefs.Store
	// Names lists the options to reset. Empty resets all of them.
	Names []string
}

// Reset restores options to their defaults and saves the file.
func Reset(opts ResetOptions) (*types.ChangeResult, error) {
	log := logging.GetLogger("commands.option")

	model, err := loaded(opts.Store)
	if err != nil {
		return nil, err
	}

	names := opts.Names
	if len(names) == 0 {
		names = rules.OptionNames()
	}
	defaults := types.DefaultOptions()
	set := model.Options()
	for _, name := range names {
		def, err := rules.OptionValue(defaults, name)
		if err != nil {
			return nil, err
		}
		if err := rules.SetOption(&set, name, def); err != nil {
			return nil, err
		}
	}
	model.SetOptions(set)
	if err := opts.Store.Save(model); err != nil {
		return nil, err
	}

	log.Info().Str("command", "OptionReset").Strs("names", names).Msg("Command finished")
	return &types.ChangeResult{
		Command: "option reset",
		Path:    opts.Store.Path(),
		Message: fmt.Sprintf("%d option(s) reset to default", len(names)),
	}, nil
}

func loaded(store *prefs.Store) (*prefs.Model, error) {
	if store == nil || store.Model() == nil {
		return nil, errors.New(errors.ErrInvalidInput, "no configuration loaded")
	}
	return store.Model(), nil
}
