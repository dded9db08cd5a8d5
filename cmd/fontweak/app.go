package fontweak

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/fontweak/pkg/binding"
	"github.com/arthur-debert/fontweak/pkg/config"
	"github.com/arthur-debert/fontweak/pkg/filesystem"
	"github.com/arthur-debert/fontweak/pkg/fonts"
	"github.com/arthur-debert/fontweak/pkg/logging"
	"github.com/arthur-debert/fontweak/pkg/output"
	"github.com/arthur-debert/fontweak/pkg/paths"
	"github.com/arthur-debert/fontweak/pkg/prefs"
	"github.com/arthur-debert/fontweak/pkg/schemes"
	"github.com/arthur-debert/fontweak/pkg/style"
)

// Output formats accepted by --format
const (
	FormatText = "text"
	FormatYAML = output.FormatYAML
	FormatJSON = output.FormatJSON
)

// globalOptions holds the persistent flags shared by every command
type globalOptions struct {
	verbosity        int
	configFile       string
	locale           string
	plain            bool
	format           string
	keepUnrecognized bool
}

// overrides turns the flags the user set into dotted settings keys
func (g *globalOptions) overrides(cmd *cobra.Command) map[string]interface{} {
	out := map[string]interface{}{}
	flags := cmd.Flags()
	if flags.Changed("config-file") {
		out["paths.config_file"] = g.configFile
	}
	if flags.Changed("locale") {
		out["locale"] = g.locale
	}
	if flags.Changed("keep-unrecognized") {
		out["save.keep_unrecognized"] = g.keepUnrecognized
	}
	return out
}

// app is everything a command needs, resolved from the environment, the
// settings file and the flags
type app struct {
	fs       filesystem.FS
	paths    paths.Paths
	cfg      *config.Config
	resolver *binding.Resolver
	out      io.Writer
	format   string
	renderer style.Renderer
}

func newApp(cmd *cobra.Command, g *globalOptions) (*app, error) {
	format := strings.ToLower(g.format)
	switch format {
	case FormatText, FormatYAML, FormatJSON:
	default:
		return nil, fmt.Errorf(MsgErrUnknownFormat, g.format)
	}

	p := paths.New()
	cfg, err := config.Load(p.ConfigFile(), g.overrides(cmd))
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadSettings, err)
	}
	p = paths.WithFontsConf(p, cfg.Paths.ConfigFile, cfg.Paths.LegacyFile)

	resolver := binding.FromEnvironment()
	if cfg.Locale != "" {
		resolver = binding.Parse(cfg.Locale)
	}

	logger := logging.GetLogger("cmd")
	logger.Debug().
		Str("fontsConf", p.FontsConf()).
		Str("locale", resolver.Locale.String()).
		Str("format", format).
		Msg("Resolved application context")

	return &app{
		fs:       filesystem.NewOS(),
		paths:    p,
		cfg:      cfg,
		resolver: resolver,
		out:      cmd.OutOrStdout(),
		format:   format,
		renderer: style.Setup(cmd.OutOrStdout(), g.plain),
	}, nil
}

// store opens the managed fonts.conf, migrating or creating it as needed
func (a *app) store() (*prefs.Store, error) {
	s, err := prefs.Open(prefs.StoreConfig{
		FS:               a.fs,
		Path:             a.paths.FontsConf(),
		LegacyPath:       a.paths.LegacyFontsConf(),
		Resolver:         a.resolver,
		KeepUnrecognized: a.cfg.Save.KeepUnrecognized,
	})
	if err != nil {
		return nil, fmt.Errorf(MsgErrOpenConfig, a.paths.FontsConf(), err)
	}
	return s, nil
}

func (a *app) schemes() *schemes.Manager {
	return schemes.FromPaths(a.fs, a.paths)
}

func (a *app) scanner() *fonts.Scanner {
	dirs := a.paths.FontDirs()
	for _, d := range a.cfg.Fonts.Dirs {
		dirs = append(dirs, paths.ExpandHome(d))
	}
	return fonts.NewScanner(a.fs, dirs)
}

// emit writes result in the selected format, using text to render it for
// the terminal
func (a *app) emit(result interface{}, text func(style.Renderer) string) error {
	if a.format != FormatText {
		r, err := output.New(a.out, a.format)
		if err != nil {
			return err
		}
		return r.RenderResult(result)
	}
	out := text(a.renderer)
	if out == "" {
		return nil
	}
	_, err := fmt.Fprintln(a.out, out)
	return err
}
