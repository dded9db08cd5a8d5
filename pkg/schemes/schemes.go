// Package schemes keeps named copies of fonts.conf. A scheme is a complete
// fontconfig document stored as <dir>/<name>.xml; applying one copies it over
// the live file and records it as the current selection in a small TOML
// state file.
package schemes

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/fontweak/pkg/document"
	"github.com/arthur-debert/fontweak/pkg/errors"
	"github.com/arthur-debert/fontweak/pkg/filesystem"
	"github.com/arthur-debert/fontweak/pkg/logging"
	"github.com/arthur-debert/fontweak/pkg/paths"
)

// State is the persisted scheme selection
type State struct {
	CurrentScheme string `toml:"current_scheme"`
}

// Manager lists, stores and applies schemes
type Manager struct {
	fs        filesystem.FS
	dir       string
	stateFile string
}

// New returns a manager storing schemes in dir and the selection in stateFile
func New(fsys filesystem.FS, dir, stateFile string) *Manager {
	return &Manager{fs: fsys, dir: dir, stateFile: stateFile}
}

// FromPaths returns a manager for the standard locations
func FromPaths(fsys filesystem.FS, p paths.Paths) *Manager {
	return New(fsys, p.SchemeDir(), p.StateFile())
}

// Path returns the file backing a scheme
func (m *Manager) Path(name string) string {
	return filepath.Join(m.dir, name+paths.SchemeExt)
}

// List returns the saved scheme names, sorted
func (m *Manager) List() ([]string, error) {
	entries, err := m.fs.ReadDir(m.dir)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", m.dir)
	}
	names := []string{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), paths.SchemeExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), paths.SchemeExt))
	}
	sort.Strings(names)
	return names, nil
}

// Exists reports whether a scheme is saved under name
func (m *Manager) Exists(name string) bool {
	return filesystem.Exists(m.fs, m.Path(name))
}

// Current returns the selected scheme name, empty when none is selected
func (m *Manager) Current() (string, error) {
	state, err := m.readState()
	if err != nil {
		return "", err
	}
	return state.CurrentScheme, nil
}

// SetCurrent records name as the selected scheme. An empty name clears the
// selection.
func (m *Manager) SetCurrent(name string) error {
	return m.writeState(State{CurrentScheme: name})
}

// Save stores the document at source as scheme name. An existing scheme is
// only replaced when overwrite is set.
func (m *Manager) Save(name, source string, overwrite bool) error {
	if err := paths.ValidateSchemeName(name); err != nil {
		return err
	}
	if !overwrite && m.Exists(name) {
		return errors.Newf(errors.ErrSchemeExists, "scheme %q already exists", name).WithDetail("scheme", name)
	}

	doc, err := document.Load(m.fs, source)
	if err != nil {
		return err
	}
	if err := m.ensureDir(); err != nil {
		return err
	}
	if err := document.Save(m.fs, doc, m.Path(name)); err != nil {
		return err
	}
	logger := logging.GetLogger("schemes")
	logger.Info().Str("scheme", name).Str("source", source).Msg("Saved scheme")
	return nil
}

// Apply copies scheme name over target and selects it. The scheme must parse
// as a fontconfig document; target is replaced atomically.
func (m *Manager) Apply(name, target string) error {
	if err := m.requireScheme(name); err != nil {
		return err
	}
	doc, err := document.Load(m.fs, m.Path(name))
	if err != nil {
		return errors.Wrapf(err, errors.ErrSchemeInvalid, "scheme %q cannot be loaded", name).
			WithDetail("scheme", name)
	}
	if err := m.fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", filepath.Dir(target))
	}
	if err := document.Save(m.fs, doc, target); err != nil {
		return err
	}
	if err := m.SetCurrent(name); err != nil {
		return err
	}
	logger := logging.GetLogger("schemes")
	logger.Info().Str("scheme", name).Str("target", target).Msg("Applied scheme")
	return nil
}

// Rename moves scheme from to to, carrying the selection along
func (m *Manager) Rename(from, to string) error {
	if err := m.requireScheme(from); err != nil {
		return err
	}
	if err := paths.ValidateSchemeName(to); err != nil {
		return err
	}
	if m.Exists(to) {
		return errors.Newf(errors.ErrSchemeExists, "scheme %q already exists", to).WithDetail("scheme", to)
	}
	if err := m.fs.Rename(m.Path(from), m.Path(to)); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot rename scheme %q", from)
	}

	current, err := m.Current()
	if err == nil && current == from {
		return m.SetCurrent(to)
	}
	return nil
}

// Delete removes a scheme, clearing the selection if it pointed at it
func (m *Manager) Delete(name string) error {
	if err := m.requireScheme(name); err != nil {
		return err
	}
	if err := m.fs.Remove(m.Path(name)); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot delete scheme %q", name)
	}

	current, err := m.Current()
	if err == nil && current == name {
		return m.SetCurrent("")
	}
	return nil
}

func (m *Manager) requireScheme(name string) error {
	if err := paths.ValidateSchemeName(name); err != nil {
		return err
	}
	if !m.Exists(name) {
		return errors.Newf(errors.ErrSchemeNotFound, "no scheme named %q", name).WithDetail("scheme", name)
	}
	return nil
}

func (m *Manager) ensureDir() error {
	if err := m.fs.MkdirAll(m.dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", m.dir)
	}
	return nil
}

func (m *Manager) readState() (State, error) {
	var state State
	data, err := m.fs.ReadFile(m.stateFile)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return state, nil
		}
		return state, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", m.stateFile)
	}
	if err := toml.Unmarshal(data, &state); err != nil {
		return state, errors.Wrapf(err, errors.ErrConfigParse, "cannot parse %s", m.stateFile).
			WithDetail("path", m.stateFile)
	}
	return state, nil
}

func (m *Manager) writeState(state State) error {
	data, err := toml.Marshal(state)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "cannot encode scheme state")
	}
	if err := m.fs.MkdirAll(filepath.Dir(m.stateFile), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", filepath.Dir(m.stateFile))
	}
	if err := filesystem.WriteFileAtomic(m.fs, m.stateFile, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", m.stateFile)
	}
	logger := logging.GetLogger("schemes")
	logger.Debug().Str("current", state.CurrentScheme).Msg("Scheme selection updated")
	return nil
}
