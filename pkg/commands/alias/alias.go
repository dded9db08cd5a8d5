package alias

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/fontweak/pkg/errors"
	"github.com/arthur-debert/fontweak/pkg/logging"
	"github.com/arthur-debert/fontweak/pkg/prefs"
	"github.com/arthur-debert/fontweak/pkg/types"
)

// AddOptions defines the options for the Add command.
type AddOptions struct {
	Store  *prefs.Store
	Family string
	Prefer string
}

// Add appends an alias rule mapping Family to Prefer and saves the file.
func Add(opts AddOptions) (*types.ChangeResult, error) {
	log := logging.GetLogger("commands.alias")
	log.Debug().Str("command", "AliasAdd").Str("family", opts.Family).Str("prefer", opts.Prefer).Msg("Executing command")

	if opts.Store == nil || opts.Store.Model() == nil {
		return nil, errors.New(errors.ErrInvalidInput, "no configuration loaded")
	}
	model := opts.Store.Model()
	if err := model.AddAlias(opts.Family, opts.Prefer); err != nil {
		return nil, err
	}
	if err := opts.Store.Save(model); err != nil {
		return nil, err
	}

	log.Info().Str("command", "AliasAdd").Int("aliases", len(model.Aliases())).Msg("Command finished")
	return &types.ChangeResult{
		Command: "alias add",
		Path:    opts.Store.Path(),
		Message: fmt.Sprintf("%s now prefers %s", strings.TrimSpace(opts.Family), strings.TrimSpace(opts.Prefer)),
	}, nil
}

// RemoveOptions defines the options for the Remove command.
type RemoveOptions struct {
	Store  *prefs.Store
	Family string
}

// Remove deletes every alias for Family and saves the file.
func Remove(opts RemoveOptions) (*types.ChangeResult, error) {
	log := logging.GetLogger("commands.alias")
	log.Debug().Str("command", "AliasRemove").Str("family", opts.Family).Msg("Executing command")

	if opts.Store == nil || opts.Store.Model() == nil {
		return nil, errors.New(errors.ErrInvalidInput, "no configuration loaded")
	}
	model := opts.Store.Model()
	if err := model.RemoveAlias(opts.Family); err != nil {
		return nil, err
	}
	if err := opts.Store.Save(model); err != nil {
		return nil, err
	}

	log.Info().Str("command", "AliasRemove").Msg("Command finished")
	return &types.ChangeResult{
		Command: "alias remove",
		Path:    opts.Store.Path(),
		Message: fmt.Sprintf("alias for %s removed", strings.TrimSpace(opts.Family)),
	}, nil
}
