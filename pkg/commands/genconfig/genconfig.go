package genconfig

import (
	"path/filepath"

	"github.com/arthur-debert/fontweak/pkg/config"
	"github.com/arthur-debert/fontweak/pkg/errors"
	"github.com/arthur-debert/fontweak/pkg/filesystem"
	"github.com/arthur-debert/fontweak/pkg/logging"
	"github.com/arthur-debert/fontweak/pkg/types"
)

// GenConfigOptions holds options for the genconfig command
type GenConfigOptions struct {
	FS filesystem.FS
	// Path is where the settings file is written in write mode
	Path  string
	Write bool
	// Force replaces an existing file
	Force bool
}

// GenConfig outputs or writes the default settings file
func GenConfig(opts GenConfigOptions) (*types.GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	content := config.GenerateConfigContent()
	result := &types.GenConfigResult{
		ConfigContent: content,
		FilesWritten:  []string{},
	}

	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}
	if opts.Path == "" {
		return nil, errors.New(errors.ErrInvalidInput, "no settings path to write to")
	}
	if opts.FS == nil {
		opts.FS = filesystem.NewOS()
	}

	if !opts.Force && filesystem.Exists(opts.FS, opts.Path) {
		logger.Warn().Str("path", opts.Path).Msg("Config file already exists, skipping")
		return result, nil
	}

	dir := filepath.Dir(opts.Path)
	if err := opts.FS.MkdirAll(dir, 0755); err != nil {
		return result, errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", dir)
	}
	if err := filesystem.WriteFileAtomic(opts.FS, opts.Path, []byte(content), 0644); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileWrite, "failed to write config to %s", opts.Path)
	}

	logger.Info().Str("path", opts.Path).Msg("Written config file")
	result.FilesWritten = append(result.FilesWritten, opts.Path)
	return result, nil
}
