package suggest

import (
	"github.com/arthur-debert/fontweak/pkg/errors"
	"github.com/arthur-debert/fontweak/pkg/fallback"
	"github.com/arthur-debert/fontweak/pkg/logging"
	"github.com/arthur-debert/fontweak/pkg/prefs"
	"github.com/arthur-debert/fontweak/pkg/types"
)

// SuggestOptions defines the options for the Suggest command.
type SuggestOptions struct {
	Store *prefs.Store
	// Installed lists the installed family names, as returned by a font scan
	Installed []string
	// Languages adds empty slots for these languages before suggesting
	Languages []string
	// Apply fills the empty slots with the suggestions and saves the file
	Apply bool
}

// Suggest proposes an installed font for every empty slot from the curated
// candidate lists.
func Suggest(opts SuggestOptions) (*types.SuggestResult, error) {
	log := logging.GetLogger("commands.suggest")
	log.Debug().Str("command", "Suggest").Int("installed", len(opts.Installed)).Bool("apply", opts.Apply).Msg("Executing command")

	if opts.Store == nil || opts.Store.Model() == nil {
		return nil, errors.New(errors.ErrInvalidInput, "no configuration loaded")
	}
	model := opts.Store.Model()

	slots := model.Slots()
	for _, lang := range opts.Languages {
		for _, g := range types.GenericFamilies {
			key := types.NewSlotKey(g, lang)
			if _, ok := model.Slot(key); !ok {
				slots = append(slots, types.Slot{Family: key.Family, Lang: key.Lang})
			}
		}
	}

	suggestions := fallback.Suggest(slots, opts.Installed)
	result := &types.SuggestResult{}
	for _, s := range suggestions {
		result.Suggestions = append(result.Suggestions, types.SuggestionView{Slot: s.Slot, Family: s.Family})
	}

	if !opts.Apply || len(suggestions) == 0 {
		return result, nil
	}
	for _, s := range suggestions {
		model.SetFamilies(s.Key, []string{s.Family})
	}
	if err := opts.Store.Save(model); err != nil {
		return nil, err
	}
	result.Applied = true
	result.Path = opts.Store.Path()

	log.Info().Str("command", "Suggest").Int("applied", len(suggestions)).Msg("Command finished")
	return result, nil
}
