package style

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/arthur-debert/fontweak/pkg/errors"
	"github.com/arthur-debert/fontweak/pkg/types"
)

// Renderer formats command results for the terminal
type Renderer interface {
	RenderShow(r *types.ShowResult) string
	RenderOptions(r *types.OptionsResult) string
	RenderFonts(r *types.FontsResult) string
	RenderSuggestions(r *types.SuggestResult) string
	RenderSchemes(r *types.SchemeListResult) string
	RenderChange(r *types.ChangeResult) string
	RenderError(err error) string
}

// TerminalRenderer renders with lipgloss styles
type TerminalRenderer struct {
	width int
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{width: 80}
}

// SetWidth updates the terminal width for rendering
func (r *TerminalRenderer) SetWidth(width int) {
	r.width = width
}

func (r *TerminalRenderer) RenderShow(res *types.ShowResult) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n", MutedStyle.Render("file  "), PathStyle.Render(res.Path)))
	if res.Locale != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", MutedStyle.Render("locale"), res.Locale))
	}

	b.WriteString("\n" + SubtitleStyle.Render("Rendering") + "\n")
	for _, line := range optionLines(res.Options) {
		name, value, _ := strings.Cut(line, "=")
		b.WriteString(Indent(fmt.Sprintf("%-16s%s", name, OptionStyle.Render(value)), 1) + "\n")
	}

	b.WriteString("\n" + SubtitleStyle.Render("Fonts") + "\n")
	for _, view := range res.Slots {
		b.WriteString(Indent(RenderSlotHeader(view), 1) + "\n")
		if view.Slot.IsEmpty() {
			b.WriteString(Indent(MutedStyle.Render("(empty)"), 2) + "\n")
			continue
		}
		for i, family := range view.Slot.Families {
			b.WriteString(Indent(fmt.Sprintf("%d. %s", i+1, FamilyStyle.Render(family)), 2) + "\n")
		}
	}

	if len(res.Aliases) > 0 {
		b.WriteString("\n" + SubtitleStyle.Render("Aliases") + "\n")
		for _, a := range res.Aliases {
			b.WriteString(Indent(fmt.Sprintf("%s → %s", a.Family, AliasStyle.Render(a.Prefer)), 1) + "\n")
		}
	}

	if res.Unrecognized > 0 {
		b.WriteString("\n" + WarningIndicator + " " +
			MutedStyle.Render(fmt.Sprintf("%d unrecognized rule(s) in file", res.Unrecognized)) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *TerminalRenderer) RenderOptions(res *types.OptionsResult) string {
	var b strings.Builder
	for _, row := range res.Options {
		value := OptionStyle.Render(row.Value)
		if row.Value == row.Default {
			value += " " + MutedStyle.Render("(default)")
		}
		b.WriteString(fmt.Sprintf("%-16s%s\n", row.Name, value))
		b.WriteString(Indent(MutedStyle.Render(strings.Join(row.Choices, " | ")), 1) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *TerminalRenderer) RenderFonts(res *types.FontsResult) string {
	if len(res.Families) == 0 {
		return MutedStyle.Render("No fonts found")
	}
	var b strings.Builder
	b.WriteString(TitleStyle.Render(fmt.Sprintf("Installed families (%d)", len(res.Families))) + "\n")
	for _, family := range res.Families {
		b.WriteString(InfoIndicator + " " + FamilyStyle.Render(family) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *TerminalRenderer) RenderSuggestions(res *types.SuggestResult) string {
	if len(res.Suggestions) == 0 {
		return MutedStyle.Render("Nothing to suggest")
	}
	var b strings.Builder
	for _, s := range res.Suggestions {
		indicator := PendingIndicator
		if res.Applied {
			indicator = SuccessIndicator
		}
		b.WriteString(fmt.Sprintf("%s %-22s %s\n", indicator, SlotStyle.Render(s.Slot), FamilyStyle.Render(s.Family)))
	}
	if res.Applied {
		b.WriteString(MutedStyle.Render("saved to ") + PathStyle.Render(res.Path) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *TerminalRenderer) RenderSchemes(res *types.SchemeListResult) string {
	if len(res.Schemes) == 0 {
		return MutedStyle.Render("No schemes saved")
	}
	var b strings.Builder
	for _, s := range res.Schemes {
		indicator := " "
		if s.Current {
			indicator = CurrentIndicator
		}
		b.WriteString(fmt.Sprintf("%s %s\n", indicator, Bold(s.Name)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *TerminalRenderer) RenderChange(res *types.ChangeResult) string {
	return fmt.Sprintf("%s %s %s", SuccessIndicator, res.Message, MutedStyle.Render("("+res.Path+")"))
}

// RenderError renders an error, with its code when it carries one
func (r *TerminalRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	var fe *errors.FontweakError
	if stderrors.As(err, &fe) {
		msg := fe.Message
		if fe.Wrapped != nil {
			msg = fmt.Sprintf("%s: %v", msg, fe.Wrapped)
		}
		return fmt.Sprintf("%s Error [%s]: %s", ErrorIndicator, ErrorStyle.Render(string(fe.Code)), msg)
	}
	return fmt.Sprintf("%s %s", ErrorIndicator, ErrorStyle.Render(err.Error()))
}

// PlainRenderer renders without any styling
type PlainRenderer struct{}

// NewPlainRenderer creates a new plain text renderer
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

func (r *PlainRenderer) RenderShow(res *types.ShowResult) string {
	var b strings.Builder
	b.WriteString("file: " + res.Path + "\n")
	if res.Locale != "" {
		b.WriteString("locale: " + res.Locale + "\n")
	}
	b.WriteString("\n[options]\n")
	for _, line := range optionLines(res.Options) {
		b.WriteString(line + "\n")
	}
	b.WriteString("\n[fonts]\n")
	for _, view := range res.Slots {
		line := fmt.Sprintf("%s (%s):", view.Slot.Key(), view.Binding)
		if !view.Slot.IsEmpty() {
			line += " " + strings.Join(view.Slot.Families, ", ")
		}
		b.WriteString(line + "\n")
	}
	if len(res.Aliases) > 0 {
		b.WriteString("\n[aliases]\n")
		for _, a := range res.Aliases {
			b.WriteString(fmt.Sprintf("%s -> %s\n", a.Family, a.Prefer))
		}
	}
	if res.Unrecognized > 0 {
		b.WriteString(fmt.Sprintf("\nunrecognized: %d\n", res.Unrecognized))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *PlainRenderer) RenderOptions(res *types.OptionsResult) string {
	lines := make([]string, len(res.Options))
	for i, row := range res.Options {
		lines[i] = fmt.Sprintf("%s=%s", row.Name, row.Value)
	}
	return strings.Join(lines, "\n")
}

func (r *PlainRenderer) RenderFonts(res *types.FontsResult) string {
	return strings.Join(res.Families, "\n")
}

func (r *PlainRenderer) RenderSuggestions(res *types.SuggestResult) string {
	lines := make([]string, len(res.Suggestions))
	for i, s := range res.Suggestions {
		lines[i] = fmt.Sprintf("%s: %s", s.Slot, s.Family)
	}
	return strings.Join(lines, "\n")
}

func (r *PlainRenderer) RenderSchemes(res *types.SchemeListResult) string {
	lines := make([]string, len(res.Schemes))
	for i, s := range res.Schemes {
		if s.Current {
			lines[i] = "* " + s.Name
		} else {
			lines[i] = "  " + s.Name
		}
	}
	return strings.Join(lines, "\n")
}

func (r *PlainRenderer) RenderChange(res *types.ChangeResult) string {
	return res.Message
}

// RenderError renders a plain error message
func (r *PlainRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %s", err.Error())
}
