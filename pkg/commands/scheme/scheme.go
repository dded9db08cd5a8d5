// Package scheme implements the commands that manage named copies of
// fonts.conf.
package scheme

import (
	"fmt"

	"github.com/arthur-debert/fontweak/pkg/errors"
	"github.com/arthur-debert/fontweak/pkg/logging"
	"github.com/arthur-debert/fontweak/pkg/prefs"
	"github.com/arthur-debert/fontweak/pkg/schemes"
	"github.com/arthur-debert/fontweak/pkg/types"
)

// ListOptions defines the options for the List command.
type ListOptions struct {
	Manager *schemes.Manager
}

// List returns the saved schemes, marking the applied one.
func List(opts ListOptions) (*types.SchemeListResult, error) {
	log := logging.GetLogger("commands.scheme")
	log.Debug().Str("command", "SchemeList").Msg("Executing command")

	if opts.Manager == nil {
		return nil, errors.New(errors.ErrInvalidInput, "no scheme manager configured")
	}
	names, err := opts.Manager.List()
	if err != nil {
		return nil, err
	}
	current, err := opts.Manager.Current()
	if err != nil {
		log.Warn().Err(err).Msg("Cannot read scheme selection")
	}

	result := &types.SchemeListResult{Schemes: make([]types.SchemeInfo, 0, len(names))}
	for _, name := range names {
		result.Schemes = append(result.Schemes, types.SchemeInfo{
			Name:    name,
			Path:    opts.Manager.Path(name),
			Current: name == current,
		})
	}
	return result, nil
}

// SaveOptions defines the options for the Save command.
type SaveOptions struct {
	Manager   *schemes.Manager
	Store     *prefs.Store
	Name      string
	Overwrite bool
}

// Save stores the current fonts.conf as a named scheme.
func Save(opts SaveOptions) (*types.ChangeResult, error) {
	if err := check(opts.Manager, opts.Store); err != nil {
		return nil, err
	}
	if err := opts.Manager.Save(opts.Name, opts.Store.Path(), opts.Overwrite); err != nil {
		return nil, err
	}
	return done("scheme save", opts.Manager.Path(opts.Name), fmt.Sprintf("saved scheme %s", opts.Name)), nil
}

// ApplyOptions defines the options for the Apply command.
type ApplyOptions struct {
	Manager *schemes.Manager
	Store   *prefs.Store
	Name    string
}

// Apply replaces fonts.conf with a scheme and reloads the store.
func Apply(opts ApplyOptions) (*types.ChangeResult, error) {
	if err := check(opts.Manager, opts.Store); err != nil {
		return nil, err
	}
	if err := opts.Manager.Apply(opts.Name, opts.Store.Path()); err != nil {
		return nil, err
	}
	if _, err := opts.Store.Load(); err != nil {
		return nil, err
	}
	return done("scheme apply", opts.Store.Path(), fmt.Sprintf("applied scheme %s", opts.Name)), nil
}

// RenameOptions defines the options for the Rename command.
type RenameOptions struct {
	Manager *schemes.Manager
	From    string
	To      string
}

// Rename gives a scheme a new name.
func Rename(opts RenameOptions) (*types.ChangeResult, error) {
	if opts.Manager == nil {
		return nil, errors.New(errors.ErrInvalidInput, "no scheme manager configured")
	}
	if err := opts.Manager.Rename(opts.From, opts.To); err != nil {
		return nil, err
	}
	return done("scheme rename", opts.Manager.Path(opts.To), fmt.Sprintf("renamed scheme %s to %s", opts.From, opts.To)), nil
}

// DeleteOptions defines the options for the Delete command.
type DeleteOptions struct {
	Manager *schemes.Manager
	Name    string
}

// Delete removes a scheme.
func Delete(opts DeleteOptions) (*types.ChangeResult, error) {
	if opts.Manager == nil {
		return nil, errors.New(errors.ErrInvalidInput, "no scheme manager configured")
	}
	path := opts.Manager.Path(opts.Name)
	if err := opts.Manager.Delete(opts.Name); err != nil {
		return nil, err
	}
	return done("scheme delete", path, fmt.Sprintf("deleted scheme %s", opts.Name)), nil
}

func check(m *schemes.Manager, s *prefs.Store) error {
	if m == nil {
		return errors.New(errors.ErrInvalidInput, "no scheme manager configured")
	}
	if s == nil {
		return errors.New(errors.ErrInvalidInput, "no configuration loaded")
	}
	return nil
}

func done(command, path, message string) *types.ChangeResult {
	logger := logging.GetLogger("commands.scheme")
	logger.Info().Str("command", command).Str("path", path).Msg("Command finished")
	return &types.ChangeResult{Command: command, Path: path, Message: message}
}
