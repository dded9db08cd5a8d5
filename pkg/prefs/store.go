package prefs

import (
	"path/filepath"

	"github.com/arthur-debert/fontweak/pkg/binding"
	"github.com/arthur-debert/fontweak/pkg/document"
	"github.com/arthur-debert/fontweak/pkg/errors"
	"github.com/arthur-debert/fontweak/pkg/filesystem"
	"github.com/arthur-debert/fontweak/pkg/logging"
)

// StoreConfig locates the configuration file and carries everything a Store
// would otherwise take from the environment.
type StoreConfig struct {
	FS filesystem.FS
	// Path is the current fonts.conf location
	Path string
	// LegacyPath is migrated into Path on first use. Empty disables migration.
	LegacyPath string
	// DefaultTemplate is installed when Path is missing or unparsable.
	// Nil uses the bundled template.
	DefaultTemplate []byte

	Resolver         *binding.Resolver
	KeepUnrecognized bool
}

// Store reads and writes one fonts.conf file
type Store struct {
	cfg   StoreConfig
	model *Model
}

// Open prepares the file at cfg.Path and loads it. When only the legacy file
// exists it is moved into place; when both exist the legacy file is deleted;
// when neither exists the template is installed.
func Open(cfg StoreConfig) (*Store, error) {
	if cfg.FS == nil {
		cfg.FS = filesystem.NewOS()
	}
	if cfg.DefaultTemplate == nil {
		cfg.DefaultTemplate = DefaultTemplate()
	}
	if cfg.Resolver == nil {
		cfg.Resolver = binding.FromEnvironment()
	}
	if cfg.Path == "" {
		return nil, errors.New(errors.ErrInvalidInput, "configuration path is empty")
	}

	s := &Store{cfg: cfg}
	if err := s.setup(); err != nil {
		return nil, err
	}
	if _, err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) setup() error {
	logger := logging.GetLogger("prefs")
	fsys := s.cfg.FS
	current := filesystem.Exists(fsys, s.cfg.Path)
	legacy := s.cfg.LegacyPath != "" && filesystem.Exists(fsys, s.cfg.LegacyPath)

	switch {
	case current && legacy:
		logger.Info().Str("legacy", s.cfg.LegacyPath).Msg("Removing legacy configuration")
		if err := fsys.Remove(s.cfg.LegacyPath); err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot remove %s", s.cfg.LegacyPath).
				WithDetail("path", s.cfg.LegacyPath)
		}
	case legacy:
		logger.Info().
			Str("from", s.cfg.LegacyPath).
			Str("to", s.cfg.Path).
			Msg("Migrating legacy configuration")
		if err := s.ensureDir(); err != nil {
			return err
		}
		if err := fsys.Rename(s.cfg.LegacyPath, s.cfg.Path); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "cannot move %s to %s", s.cfg.LegacyPath, s.cfg.Path).
				WithDetail("path", s.cfg.Path)
		}
	case !current:
		logger.Info().Str("path", s.cfg.Path).Msg("Installing default configuration")
		return s.installTemplate()
	}
	return nil
}

func (s *Store) ensureDir() error {
	dir := filepath.Dir(s.cfg.Path)
	if err := s.cfg.FS.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", dir).WithDetail("path", dir)
	}
	return nil
}

func (s *Store) installTemplate() error {
	if err := s.ensureDir(); err != nil {
		return err
	}
	if err := filesystem.WriteFileAtomic(s.cfg.FS, s.cfg.Path, s.cfg.DefaultTemplate, document.FileMode); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot install default configuration at %s", s.cfg.Path).
			WithDetail("path", s.cfg.Path)
	}
	return nil
}

// Load reads the file into a new model. A file that does not parse is
// replaced with the template once and read again; a second failure is
// returned. On error the previously loaded model is kept.
func (s *Store) Load() (*Model, error) {
	logger := logging.GetLogger("prefs")

	doc, err := document.Load(s.cfg.FS, s.cfg.Path)
	if errors.IsErrorCode(err, errors.ErrDocumentParse) {
		logger.Warn().Err(err).Str("path", s.cfg.Path).Msg("Configuration is corrupt, restoring default")
		if ierr := s.installTemplate(); ierr != nil {
			return nil, ierr
		}
		doc, err = document.Load(s.cfg.FS, s.cfg.Path)
	}
	if err != nil {
		return nil, err
	}

	s.model = FromDocument(doc, s.modelConfig())
	return s.model, nil
}

// Save writes m to the file atomically. On error the file is left as it was.
func (s *Store) Save(m *Model) error {
	if m == nil {
		m = s.model
	}
	if m == nil {
		return errors.New(errors.ErrInvalidInput, "nothing to save")
	}
	if err := s.ensureDir(); err != nil {
		return err
	}
	if err := document.Save(s.cfg.FS, m.Document(), s.cfg.Path); err != nil {
		return err
	}
	s.model = m
	return nil
}

// Reset replaces the file with the template and reloads it
func (s *Store) Reset() (*Model, error) {
	if err := s.installTemplate(); err != nil {
		return nil, err
	}
	return s.Load()
}

// Path returns the location of the managed file
func (s *Store) Path() string {
	return s.cfg.Path
}

// Resolver returns the binding resolver used when saving
func (s *Store) Resolver() *binding.Resolver {
	return s.cfg.Resolver
}

// Model returns the most recently loaded or saved model
func (s *Store) Model() *Model {
	return s.model
}

func (s *Store) modelConfig() ModelConfig {
	return ModelConfig{Resolver: s.cfg.Resolver, KeepUnrecognized: s.cfg.KeepUnrecognized}
}
