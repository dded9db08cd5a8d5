package config

import (
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/fontweak/pkg/errors"
	"github.com/arthur-debert/fontweak/pkg/logging"
)

// EnvPrefix marks environment variables read as settings. Sections are
// separated by a double underscore: FONTWEAK_SAVE__KEEP_UNRECOGNIZED.
const EnvPrefix = "FONTWEAK_"

// Config is the merged application configuration
type Config struct {
	Locale string      `koanf:"locale"`
	Paths  PathsConfig `koanf:"paths"`
	Save   SaveConfig  `koanf:"save"`
	Fonts  FontsConfig `koanf:"fonts"`
}

// PathsConfig relocates the managed files
type PathsConfig struct {
	ConfigFile string `koanf:"config_file"`
	LegacyFile string `koanf:"legacy_file"`
}

// SaveConfig controls how fonts.conf is rewritten
type SaveConfig struct {
	KeepUnrecognized bool `koanf:"keep_unrecognized"`
}

// FontsConfig controls installed-font discovery
type FontsConfig struct {
	Dirs []string `koanf:"dirs"`
}

// Load merges the embedded defaults, the file at userFile when it exists,
// the environment and overrides. overrides uses dotted keys such as
// "save.keep_unrecognized".
func Load(userFile string, overrides map[string]interface{}) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User file
	if userFile != "" {
		if _, err := os.Stat(userFile); err == nil {
			if err := k.Load(file.Provider(userFile), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load %s", userFile).
					WithDetail("path", userFile)
			}
			logger.Debug().Str("path", userFile).Msg("Loaded user configuration")
		}
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Command-line overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	cfg.Fonts.Dirs = compact(cfg.Fonts.Dirs)
	return &cfg, nil
}

// envKey maps FONTWEAK_SAVE__KEEP_UNRECOGNIZED to save.keep_unrecognized
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

func compact(list []string) []string {
	out := list[:0:0]
	for _, s := range list {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
