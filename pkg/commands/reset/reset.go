// Package reset implements the command that discards all preferences.
package reset

import (
	"github.com/arthur-debert/fontweak/pkg/errors"
	"github.com/arthur-debert/fontweak/pkg/logging"
	"github.com/arthur-debert/fontweak/pkg/prefs"
	"github.com/arthur-debert/fontweak/pkg/types"
)

// ResetOptions defines the options for the Reset command.
type ResetOptions struct {
	Store *prefs.Store
}

// Reset reinstalls the default template over fonts.conf.
func Reset(opts ResetOptions) (*types.ChangeResult, error) {
	log := logging.GetLogger("commands.reset")
	log.Debug().Str("command", "Reset").Msg("Executing command")

	if opts.Store == nil {
		return nil, errors.New(errors.ErrInvalidInput, "no configuration loaded")
	}
	if _, err := opts.Store.Reset(); err != nil {
		return nil, err
	}

	log.Info().Str("command", "Reset").Str("path", opts.Store.Path()).Msg("Command finished")
	return &types.ChangeResult{
		Command: "reset",
		Path:    opts.Store.Path(),
		Message: "fonts.conf reset to defaults",
	}, nil
}
