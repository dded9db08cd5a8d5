package fontweak

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	aliasmsg "github.com/arthur-debert/fontweak/cmd/fontweak/commands/alias"
	familymsg "github.com/arthur-debert/fontweak/cmd/fontweak/commands/family"
	optionmsg "github.com/arthur-debert/fontweak/cmd/fontweak/commands/option"
	resetmsg "github.com/arthur-debert/fontweak/cmd/fontweak/commands/reset"
	showmsg "github.com/arthur-debert/fontweak/cmd/fontweak/commands/show"
	"github.com/arthur-debert/fontweak/pkg/commands/alias"
	"github.com/arthur-debert/fontweak/pkg/commands/family"
	"github.com/arthur-debert/fontweak/pkg/commands/option"
	"github.com/arthur-debert/fontweak/pkg/commands/reset"
	"github.com/arthur-debert/fontweak/pkg/commands/show"
	"github.com/arthur-debert/fontweak/pkg/rules"
	"github.com/arthur-debert/fontweak/pkg/style"
	"github.com/arthur-debert/fontweak/pkg/types"
)

func newShowCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "show",
		Short:   showmsg.MsgShort,
		Long:    showmsg.MsgLong,
		Example: showmsg.MsgExample,
		GroupID: "prefs",
		Args:    cobra.NoArgs,
		RunE: run(g, "show", func(cmd *cobra.Command, a *app, args []string) error {
			store, err := a.store()
			if err != nil {
				return err
			}
			result, err := show.Show(show.ShowOptions{Store: store})
			if err != nil {
				return fmt.Errorf(showmsg.MsgErrShow, err)
			}
			return a.emit(result, func(r style.Renderer) string { return r.RenderShow(result) })
		}),
	}
}

func newOptionCmd(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "option",
		Short:   optionmsg.MsgShort,
		Long:    optionmsg.MsgLong,
		Example: optionmsg.MsgExample,
		GroupID: "prefs",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: optionmsg.MsgListShort,
		Args:  cobra.NoArgs,
		RunE: run(g, "option.list", func(cmd *cobra.Command, a *app, args []string) error {
			store, err := a.store()
			if err != nil {
				return err
			}
			result, err := option.List(option.ListOptions{Store: store})
			if err != nil {
				return err
			}
			return a.emit(result, func(r style.Renderer) string { return r.RenderOptions(result) })
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:               "set <name> <value>",
		Short:             optionmsg.MsgSetShort,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: optionCompletion,
		RunE: run(g, "option.set", func(cmd *cobra.Command, a *app, args []string) error {
			store, err := a.store()
			if err != nil {
				return err
			}
			result, err := option.Set(option.SetOptions{Store: store, Name: args[0], Value: args[1]})
			if err != nil {
				return fmt.Errorf(optionmsg.MsgErrOption, err)
			}
			return a.emitChange(result)
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:               "reset [name...]",
		Short:             optionmsg.MsgResetShort,
		ValidArgsFunction: optionNamesCompletion,
		RunE: run(g, "option.reset", func(cmd *cobra.Command, a *app, args []string) error {
			store, err := a.store()
			if err != nil {
				return err
			}
			result, err := option.Reset(option.ResetOptions{Store: store, Names: args})
			if err != nil {
				return fmt.Errorf(optionmsg.MsgErrOption, err)
			}
			return a.emitChange(result)
		}),
	})

	return cmd
}

// optionCompletion completes option names, then the choices of the named
// option
func optionCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		return rules.OptionNames(), cobra.ShellCompDirectiveNoFileComp
	case 1:
		choices, _ := rules.OptionChoices(args[0])
		return choices, cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

func optionNamesCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return rules.OptionNames(), cobra.ShellCompDirectiveNoFileComp
}

// genericCompletion completes the first argument with a generic family name
func genericCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	names := make([]string, len(types.GenericFamilies))
	for i, f := range types.GenericFamilies {
		names[i] = f.String()
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func newFamilyCmd(g *globalOptions) *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:     "family",
		Short:   familymsg.MsgShort,
		Long:    familymsg.MsgLong,
		Example: familymsg.MsgExample,
		GroupID: "prefs",
	}
	cmd.PersistentFlags().StringVarP(&lang, "lang", "l", "", familymsg.MsgFlagLang)

	slot := func(a *app, generic string) (family.SlotOptions, error) {
		store, err := a.store()
		if err != nil {
			return family.SlotOptions{}, err
		}
		return family.SlotOptions{Store: store, Generic: generic, Lang: lang}, nil
	}
	// change runs one slot edit and reports it
	change := func(name string, args cobra.PositionalArgs, short string, edit func(family.SlotOptions, []string) (*types.ChangeResult, error)) *cobra.Command {
		return &cobra.Command{
			Use:               name,
			Short:             short,
			Args:              args,
			ValidArgsFunction: genericCompletion,
			RunE: run(g, "family", func(cmd *cobra.Command, a *app, args []string) error {
				opts, err := slot(a, args[0])
				if err != nil {
					return err
				}
				result, err := edit(opts, args[1:])
				if err != nil {
					return fmt.Errorf(familymsg.MsgErrFamily, err)
				}
				return a.emitChange(result)
			}),
		}
	}

	cmd.AddCommand(change("set <generic> <family...>", cobra.MinimumNArgs(2), familymsg.MsgSetShort,
		func(o family.SlotOptions, rest []string) (*types.ChangeResult, error) {
			return family.Set(family.SetOptions{SlotOptions: o, Families: rest})
		}))
	cmd.AddCommand(change("clear <generic>", cobra.ExactArgs(1), familymsg.MsgClearShort,
		func(o family.SlotOptions, rest []string) (*types.ChangeResult, error) {
			return family.Clear(o)
		}))
	cmd.AddCommand(change("add <generic> <family>", cobra.ExactArgs(2), familymsg.MsgAddShort,
		func(o family.SlotOptions, rest []string) (*types.ChangeResult, error) {
			return family.Append(family.AppendOptions{SlotOptions: o, Family: rest[0]})
		}))
	cmd.AddCommand(change("remove <generic> <family>", cobra.ExactArgs(2), familymsg.MsgRemoveShort,
		func(o family.SlotOptions, rest []string) (*types.ChangeResult, error) {
			return family.Remove(family.AppendOptions{SlotOptions: o, Family: rest[0]})
		}))
	cmd.AddCommand(change("move <generic> <from> <to>", cobra.ExactArgs(3), familymsg.MsgMoveShort,
		func(o family.SlotOptions, rest []string) (*types.ChangeResult, error) {
			from, err := position(rest[0])
			if err != nil {
				return nil, err
			}
			to, err := position(rest[1])
			if err != nil {
				return nil, err
			}
			return family.Move(family.MoveOptions{SlotOptions: o, From: from, To: to})
		}))
	cmd.AddCommand(change("add-slot <generic>", cobra.ExactArgs(1), familymsg.MsgAddSlotShort,
		func(o family.SlotOptions, rest []string) (*types.ChangeResult, error) {
			return family.AddSlot(o)
		}))
	cmd.AddCommand(change("remove-slot <generic>", cobra.ExactArgs(1), familymsg.MsgRemoveSlotShort,
		func(o family.SlotOptions, rest []string) (*types.ChangeResult, error) {
			return family.RemoveSlot(o)
		}))

	return cmd
}

func position(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf(familymsg.MsgErrPosition, s)
	}
	return n, nil
}

func newAliasCmd(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "alias",
		Short:   aliasmsg.MsgShort,
		Long:    aliasmsg.MsgLong,
		Example: aliasmsg.MsgExample,
		GroupID: "prefs",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <family> <preferred>",
		Short: aliasmsg.MsgAddShort,
		Args:  cobra.ExactArgs(2),
		RunE: run(g, "alias.add", func(cmd *cobra.Command, a *app, args []string) error {
			store, err := a.store()
			if err != nil {
				return err
			}
			result, err := alias.Add(alias.AddOptions{Store: store, Family: args[0], Prefer: args[1]})
			if err != nil {
				return fmt.Errorf(aliasmsg.MsgErrAlias, err)
			}
			return a.emitChange(result)
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <family>",
		Short: aliasmsg.MsgRemoveShort,
		Args:  cobra.ExactArgs(1),
		RunE: run(g, "alias.remove", func(cmd *cobra.Command, a *app, args []string) error {
			store, err := a.store()
			if err != nil {
				return err
			}
			result, err := alias.Remove(alias.RemoveOptions{Store: store, Family: args[0]})
			if err != nil {
				return fmt.Errorf(aliasmsg.MsgErrAlias, err)
			}
			return a.emitChange(result)
		}),
	})

	return cmd
}

func newResetCmd(g *globalOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "reset",
		Short:   resetmsg.MsgShort,
		Long:    resetmsg.MsgLong,
		GroupID: "prefs",
		Args:    cobra.NoArgs,
		RunE: run(g, "reset", func(cmd *cobra.Command, a *app, args []string) error {
			if !yes {
				_, err := fmt.Fprintf(a.out, resetmsg.MsgConfirm+"\n", a.paths.FontsConf())
				return err
			}
			store, err := a.store()
			if err != nil {
				return err
			}
			result, err := reset.Reset(reset.ResetOptions{Store: store})
			if err != nil {
				return fmt.Errorf(resetmsg.MsgErrReset, err)
			}
			return a.emitChange(result)
		}),
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, resetmsg.MsgFlagYes)
	return cmd
}

func (a *app) emitChange(result *types.ChangeResult) error {
	return a.emit(result, func(r style.Renderer) string { return r.RenderChange(result) })
}
