package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigFile overrides the fonts.conf location
	EnvConfigFile = "FONTWEAK_CONFIG_FILE"

	// EnvLegacyFile overrides the legacy ~/.fonts.conf location
	EnvLegacyFile = "FONTWEAK_LEGACY_FILE"

	// EnvAppDir overrides the XDG config directory for fontweak
	EnvAppDir = "FONTWEAK_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for fontweak
	EnvStateDir = "FONTWEAK_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// File and directory names
const (
	AppDirName        = "fontweak"
	FontconfigDirName = "fontconfig"
	FontsConfName     = "fonts.conf"
	LegacyFileName    = ".fonts.conf"
	SchemeDirName     = "scheme"
	SchemeExt         = ".xml"
	StateFileName     = "state.toml"
	ConfigFileName    = "config.toml"
	LogFileName       = "fontweak.log"
)

// Paths answers where fontweak's files live
type Paths interface {
	FontsConf() string
	LegacyFontsConf() string
	AppDir() string
	ConfigFile() string
	StateFile() string
	SchemeDir() string
	SchemePath(name string) string
	StateDir() string
	LogFilePath() string
	FontDirs() []string
}

type paths struct {
	fontsConf string
	legacy    string
	appDir    string
	stateDir  string
	fontDirs  []string
}

// New resolves all locations from the environment
func New() Paths {
	p := &paths{}
	configHome := envOr("XDG_CONFIG_HOME", xdg.ConfigHome)

	if v := os.Getenv(EnvConfigFile); v != "" {
		p.fontsConf = expandHome(v)
	} else {
		p.fontsConf = filepath.Join(configHome, FontconfigDirName, FontsConfName)
	}

	if v := os.Getenv(EnvLegacyFile); v != "" {
		p.legacy = expandHome(v)
	} else {
		p.legacy = filepath.Join(homeDir(), LegacyFileName)
	}

	if v := os.Getenv(EnvAppDir); v != "" {
		p.appDir = expandHome(v)
	} else {
		p.appDir = filepath.Join(configHome, AppDirName)
	}

	if v := os.Getenv(EnvStateDir); v != "" {
		p.stateDir = expandHome(v)
	} else {
		p.stateDir = filepath.Join(envOr("XDG_STATE_HOME", xdg.StateHome), AppDirName)
	}

	p.fontDirs = append([]string(nil), xdg.FontDirs...)
	return p
}

// WithFontsConf returns a copy of p that manages another fonts.conf. Empty
// paths leave the corresponding location unchanged.
func WithFontsConf(p Paths, fontsConf, legacy string) Paths {
	out := &paths{
		fontsConf: p.FontsConf(),
		legacy:    p.LegacyFontsConf(),
		appDir:    p.AppDir(),
		stateDir:  p.StateDir(),
		fontDirs:  p.FontDirs(),
	}
	if fontsConf != "" {
		out.fontsConf = expandHome(fontsConf)
	}
	if legacy != "" {
		out.legacy = expandHome(legacy)
	}
	return out
}

// FontsConf returns the current per-user fontconfig file
func (p *paths) FontsConf() string { return p.fontsConf }

// LegacyFontsConf returns the pre-XDG per-user fontconfig file
func (p *paths) LegacyFontsConf() string { return p.legacy }

// AppDir returns fontweak's configuration directory
func (p *paths) AppDir() string { return p.appDir }

// ConfigFile returns the user settings file
func (p *paths) ConfigFile() string { return filepath.Join(p.appDir, ConfigFileName) }

// StateFile returns the file holding the current scheme selection
func (p *paths) StateFile() string { return filepath.Join(p.appDir, StateFileName) }

// SchemeDir returns the directory of saved schemes
func (p *paths) SchemeDir() string { return filepath.Join(p.appDir, SchemeDirName) }

// SchemePath returns the file for a scheme name. The name is not validated.
func (p *paths) SchemePath(name string) string {
	return filepath.Join(p.SchemeDir(), name+SchemeExt)
}

// StateDir returns fontweak's state directory
func (p *paths) StateDir() string { return p.stateDir }

// LogFilePath returns the path to the log file
func (p *paths) LogFilePath() string { return filepath.Join(p.stateDir, LogFileName) }

// FontDirs returns the system and user font directories
func (p *paths) FontDirs() []string { return append([]string(nil), p.fontDirs...) }

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func homeDir() string {
	if h, err := os.UserHomeDir(); err == nil {
		return h
	}
	if h := os.Getenv(EnvHome); h != "" {
		return h
	}
	return xdg.Home
}

// expandHome replaces a leading ~ with the user's home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	if len(path) == 1 {
		return homeDir()
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir(), path[2:])
	}
	// ~something (not the user's home)
	return path
}

// ExpandHome is expandHome for callers outside the package
func ExpandHome(path string) string {
	return expandHome(strings.TrimSpace(path))
}
