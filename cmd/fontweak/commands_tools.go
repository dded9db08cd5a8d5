package fontweak

import (
	"fmt"

	"github.com/spf13/cobra"

	completionmsg "github.com/arthur-debert/fontweak/cmd/fontweak/commands/completion"
	fontsmsg "github.com/arthur-debert/fontweak/cmd/fontweak/commands/fonts"
	genconfigmsg "github.com/arthur-debert/fontweak/cmd/fontweak/commands/genconfig"
	schememsg "github.com/arthur-debert/fontweak/cmd/fontweak/commands/scheme"
	suggestmsg "github.com/arthur-debert/fontweak/cmd/fontweak/commands/suggest"
	topicsmsg "github.com/arthur-debert/fontweak/cmd/fontweak/commands/topics"
	"github.com/arthur-debert/fontweak/internal/version"
	"github.com/arthur-debert/fontweak/pkg/commands/fonts"
	"github.com/arthur-debert/fontweak/pkg/commands/genconfig"
	"github.com/arthur-debert/fontweak/pkg/commands/scheme"
	"github.com/arthur-debert/fontweak/pkg/commands/suggest"
	"github.com/arthur-debert/fontweak/pkg/style"
	"github.com/arthur-debert/fontweak/pkg/topics"
)

func newSuggestCmd(g *globalOptions) *cobra.Command {
	var (
		apply bool
		langs []string
	)

	cmd := &cobra.Command{
		Use:     "suggest",
		Short:   suggestmsg.MsgShort,
		Long:    suggestmsg.MsgLong,
		Example: suggestmsg.MsgExample,
		GroupID: "fonts",
		Args:    cobra.NoArgs,
		RunE: run(g, "suggest", func(cmd *cobra.Command, a *app, args []string) error {
			store, err := a.store()
			if err != nil {
				return err
			}
			result, err := suggest.Suggest(suggest.SuggestOptions{
				Store:     store,
				Installed: a.scanner().Families(),
				Languages: langs,
				Apply:     apply,
			})
			if err != nil {
				return fmt.Errorf(suggestmsg.MsgErrSuggest, err)
			}
			return a.emit(result, func(r style.Renderer) string { return r.RenderSuggestions(result) })
		}),
	}
	cmd.Flags().BoolVar(&apply, "apply", false, suggestmsg.MsgFlagApply)
	cmd.Flags().StringSliceVarP(&langs, "lang", "l", nil, suggestmsg.MsgFlagLang)
	return cmd
}

func newFontsCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "fonts",
		Short:   fontsmsg.MsgShort,
		Long:    fontsmsg.MsgLong,
		GroupID: "fonts",
		Args:    cobra.NoArgs,
		RunE: run(g, "fonts", func(cmd *cobra.Command, a *app, args []string) error {
			result, err := fonts.ListFonts(fonts.ListFontsOptions{Scanner: a.scanner()})
			if err != nil {
				return fmt.Errorf(fontsmsg.MsgErrFonts, err)
			}
			return a.emit(result, func(r style.Renderer) string { return r.RenderFonts(result) })
		}),
	}
}

func newSchemeCmd(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "scheme",
		Short:   schememsg.MsgShort,
		Long:    schememsg.MsgLong,
		Example: schememsg.MsgExample,
		GroupID: "config",
	}

	// schemeNamesCompletion offers the saved scheme names
	schemeNamesCompletion := func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		a, err := newApp(cmd, g)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		names, err := a.schemes().List()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: schememsg.MsgListShort,
		Args:  cobra.NoArgs,
		RunE: run(g, "scheme.list", func(cmd *cobra.Command, a *app, args []string) error {
			result, err := scheme.List(scheme.ListOptions{Manager: a.schemes()})
			if err != nil {
				return fmt.Errorf(schememsg.MsgErrScheme, err)
			}
			return a.emit(result, func(r style.Renderer) string { return r.RenderSchemes(result) })
		}),
	})

	var overwrite bool
	saveCmd := &cobra.Command{
		Use:   "save <name>",
		Short: schememsg.MsgSaveShort,
		Args:  cobra.ExactArgs(1),
		RunE: run(g, "scheme.save", func(cmd *cobra.Command, a *app, args []string) error {
			store, err := a.store()
			if err != nil {
				return err
			}
			result, err := scheme.Save(scheme.SaveOptions{
				Manager:   a.schemes(),
				Store:     store,
				Name:      args[0],
				Overwrite: overwrite,
			})
			if err != nil {
				return fmt.Errorf(schememsg.MsgErrScheme, err)
			}
			return a.emitChange(result)
		}),
	}
	saveCmd.Flags().BoolVarP(&overwrite, "force", "f", false, schememsg.MsgFlagOverwrite)
	cmd.AddCommand(saveCmd)

	cmd.AddCommand(&cobra.Command{
		Use:               "apply <name>",
		Short:             schememsg.MsgApplyShort,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: schemeNamesCompletion,
		RunE: run(g, "scheme.apply", func(cmd *cobra.Command, a *app, args []string) error {
			store, err := a.store()
			if err != nil {
				return err
			}
			result, err := scheme.Apply(scheme.ApplyOptions{Manager: a.schemes(), Store: store, Name: args[0]})
			if err != nil {
				return fmt.Errorf(schememsg.MsgErrScheme, err)
			}
			return a.emitChange(result)
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:               "rename <from> <to>",
		Short:             schememsg.MsgRenameShort,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: schemeNamesCompletion,
		RunE: run(g, "scheme.rename", func(cmd *cobra.Command, a *app, args []string) error {
			result, err := scheme.Rename(scheme.RenameOptions{Manager: a.schemes(), From: args[0], To: args[1]})
			if err != nil {
				return fmt.Errorf(schememsg.MsgErrScheme, err)
			}
			return a.emitChange(result)
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:               "delete <name>",
		Short:             schememsg.MsgDeleteShort,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: schemeNamesCompletion,
		RunE: run(g, "scheme.delete", func(cmd *cobra.Command, a *app, args []string) error {
			result, err := scheme.Delete(scheme.DeleteOptions{Manager: a.schemes(), Name: args[0]})
			if err != nil {
				return fmt.Errorf(schememsg.MsgErrScheme, err)
			}
			return a.emitChange(result)
		}),
	})

	return cmd
}

func newGenConfigCmd(g *globalOptions) *cobra.Command {
	var write, force bool

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   genconfigmsg.MsgShort,
		Long:    genconfigmsg.MsgLong,
		Example: genconfigmsg.MsgExample,
		GroupID: "config",
		Args:    cobra.NoArgs,
		RunE: run(g, "genconfig", func(cmd *cobra.Command, a *app, args []string) error {
			result, err := genconfig.GenConfig(genconfig.GenConfigOptions{
				FS:    a.fs,
				Path:  a.paths.ConfigFile(),
				Write: write,
				Force: force,
			})
			if err != nil {
				return fmt.Errorf(genconfigmsg.MsgErrGenConfig, err)
			}
			if !write {
				_, err = fmt.Fprintln(a.out, result.ConfigContent)
				return err
			}
			return a.emit(result, func(r style.Renderer) string {
				if len(result.FilesWritten) == 0 {
					return fmt.Sprintf("%s already exists, use --force to replace it", a.paths.ConfigFile())
				}
				return fmt.Sprintf("Wrote %s", result.FilesWritten[0])
			})
		}),
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, genconfigmsg.MsgFlagWrite)
	cmd.Flags().BoolVar(&force, "force", false, genconfigmsg.MsgFlagForce)
	return cmd
}

func newTopicsCmd(tm *topics.TopicManager) *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   topicsmsg.MsgShort,
		Long:    topicsmsg.MsgLong,
		GroupID: "misc",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				tm.WriteList(cmd.OutOrStdout(), cmd.Root().Name())
				return nil
			}
			topic, ok := tm.GetTopic(args[0])
			if !ok {
				return fmt.Errorf("no help topic named %q", args[0])
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), tm.Render(topic))
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionLine, version.Version, version.Commit, version.Date)
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 completionmsg.MsgShort,
		Long:                  completionmsg.MsgLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
