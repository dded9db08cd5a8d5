package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/fontweak/pkg/binding"
	"github.com/arthur-debert/fontweak/pkg/filesystem"
	"github.com/arthur-debert/fontweak/pkg/paths"
	"github.com/arthur-debert/fontweak/pkg/prefs"
	"github.com/arthur-debert/fontweak/pkg/schemes"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment provides the locations and filesystem a test works in
type TestEnvironment struct {
	Root       string
	ConfigHome string
	FontsConf  string
	LegacyConf string
	AppDir     string
	StateDir   string

	FS   filesystem.FS
	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}
	switch envType {
	case EnvIsolated:
		env.Root = t.TempDir()
		env.FS = filesystem.NewOS()
	default:
		env.Root = "/test"
		env.FS = filesystem.NewMemory()
	}

	env.ConfigHome = filepath.Join(env.Root, "config")
	env.FontsConf = filepath.Join(env.ConfigHome, paths.FontconfigDirName, paths.FontsConfName)
	env.LegacyConf = filepath.Join(env.Root, "home", paths.LegacyFileName)
	env.AppDir = filepath.Join(env.ConfigHome, paths.AppDirName)
	env.StateDir = filepath.Join(env.Root, "state", paths.AppDirName)

	if envType == EnvIsolated {
		env.setEnv()
	}
	return env
}

// setEnv points every variable fontweak reads at the environment
func (env *TestEnvironment) setEnv() {
	t := env.t
	home := filepath.Dir(env.LegacyConf)
	require.NoError(t, os.MkdirAll(home, 0755))

	t.Setenv(paths.EnvHome, home)
	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_STATE_HOME", filepath.Dir(env.StateDir))
	t.Setenv(paths.EnvConfigFile, env.FontsConf)
	t.Setenv(paths.EnvLegacyFile, env.LegacyConf)
	t.Setenv(paths.EnvAppDir, env.AppDir)
	t.Setenv(paths.EnvStateDir, env.StateDir)
	t.Setenv("LC_ALL", "en_US.UTF-8")
}

// WriteConf writes content as the managed fonts.conf
func (env *TestEnvironment) WriteConf(content string) {
	env.WriteFile(env.FontsConf, content)
}

// WriteFile writes content to path, creating parent directories
func (env *TestEnvironment) WriteFile(path, content string) {
	env.t.Helper()
	require.NoError(env.t, env.FS.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(env.t, env.FS.WriteFile(path, []byte(content), 0644))
}

// ReadFile returns the content of path
func (env *TestEnvironment) ReadFile(path string) string {
	env.t.Helper()
	data, err := env.FS.ReadFile(path)
	require.NoError(env.t, err)
	return string(data)
}

// Store opens the managed fonts.conf with bindings resolved for locale
func (env *TestEnvironment) Store(locale string) *prefs.Store {
	env.t.Helper()
	store, err := prefs.Open(prefs.StoreConfig{
		FS:         env.FS,
		Path:       env.FontsConf,
		LegacyPath: env.LegacyConf,
		Resolver:   binding.Parse(locale),
	})
	require.NoError(env.t, err)
	return store
}

// SchemeManager returns a scheme manager over the environment's app directory
func (env *TestEnvironment) SchemeManager() *schemes.Manager {
	return schemes.New(env.FS,
		filepath.Join(env.AppDir, paths.SchemeDirName),
		filepath.Join(env.AppDir, paths.StateFileName))
}
