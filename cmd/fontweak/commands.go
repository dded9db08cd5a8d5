package fontweak

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/fontweak/internal/version"
	"github.com/arthur-debert/fontweak/pkg/logging"
	"github.com/arthur-debert/fontweak/pkg/topics"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	g := &globalOptions{format: FormatText}

	rootCmd := &cobra.Command{
		Use:     "fontweak",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Short(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(g.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help but report incorrect usage
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&g.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVarP(&g.configFile, "config-file", "c", "", MsgFlagConfigFile)
	flags.StringVar(&g.locale, "locale", "", MsgFlagLocale)
	flags.BoolVar(&g.plain, "plain", false, MsgFlagPlain)
	flags.StringVarP(&g.format, "format", "o", FormatText, MsgFlagFormat)
	flags.BoolVar(&g.keepUnrecognized, "keep-unrecognized", false, MsgFlagKeepUnrecognized)
	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{FormatText, FormatYAML, FormatJSON}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.MarkPersistentFlagFilename("config-file", "conf")

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{ID: "prefs", Title: "PREFERENCES:"})
	rootCmd.AddGroup(&cobra.Group{ID: "fonts", Title: "FONTS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "config", Title: "CONFIGURATION:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Add all commands
	rootCmd.AddCommand(newShowCmd(g))
	rootCmd.AddCommand(newOptionCmd(g))
	rootCmd.AddCommand(newFamilyCmd(g))
	rootCmd.AddCommand(newAliasCmd(g))
	rootCmd.AddCommand(newSuggestCmd(g))
	rootCmd.AddCommand(newFontsCmd(g))
	rootCmd.AddCommand(newSchemeCmd(g))
	rootCmd.AddCommand(newResetCmd(g))
	rootCmd.AddCommand(newGenConfigCmd(g))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// Topic-based help, embedded in the binary
	tm, err := topics.InitializeWithOptions(rootCmd, topics.Content(), topics.Options{
		Renderer: topics.NewGlamourRenderer(),
	})
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	} else {
		rootCmd.AddCommand(newTopicsCmd(tm))
	}

	return rootCmd
}

// run resolves the application context before handing over to the command
// body
func run(g *globalOptions, name string, body func(cmd *cobra.Command, a *app, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		logger := logging.GetLogger("cmd." + name)
		a, err := newApp(cmd, g)
		if err != nil {
			return err
		}
		logger.Debug().Strs("args", args).Msg("Running command")
		return body(cmd, a, args)
	}
}
