package show

import (
	"github.com/arthur-debert/fontweak/pkg/errors"
	"github.com/arthur-debert/fontweak/pkg/logging"
	"github.com/arthur-debert/fontweak/pkg/prefs"
	"github.com/arthur-debert/fontweak/pkg/types"
)

// ShowOptions defines the options for the Show command.
type ShowOptions struct {
	Store *prefs.Store
}

// Show builds the preference view of the loaded file, with the binding each
// slot is saved with under the store's locale.
func Show(opts ShowOptions) (*types.ShowResult, error) {
	log := logging.GetLogger("commands.show")
	log.Debug().Str("command", "Show").Msg("Executing command")

	if opts.Store == nil || opts.Store.Model() == nil {
		return nil, errors.New(errors.ErrInvalidInput, "no configuration loaded")
	}
	model := opts.Store.Model()
	resolver := opts.Store.Resolver()

	result := &types.ShowResult{
		Path:         opts.Store.Path(),
		Locale:       resolver.Locale.String(),
		Options:      model.Options(),
		Aliases:      model.Aliases(),
		Unrecognized: model.Unrecognized(),
	}
	for _, slot := range model.Slots() {
		result.Slots = append(result.Slots, types.SlotView{
			Slot:    slot,
			Binding: resolver.ResolveSlot(slot.Key()).String(),
		})
	}

	log.Info().Str("command", "Show").Int("slots", len(result.Slots)).Msg("Command finished")
	return result, nil
}
