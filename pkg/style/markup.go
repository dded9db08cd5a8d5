package style

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type markupTag struct {
	pattern *regexp.Regexp
	style   lipgloss.Style
}

// MarkupParser renders [tag]text[/tag] markup with lipgloss styles
type MarkupParser struct {
	tags map[string]markupTag
}

// NewMarkupParser creates a parser with the default tags
func NewMarkupParser() *MarkupParser {
	p := &MarkupParser{tags: make(map[string]markupTag)}
	for tag, st := range map[string]lipgloss.Style{
		"title":     TitleStyle,
		"subtitle":  SubtitleStyle,
		"success":   SuccessStyle,
		"error":     ErrorStyle,
		"warning":   WarningStyle,
		"info":      InfoStyle,
		"code":      CodeStyle,
		"path":      PathStyle,
		"muted":     MutedStyle,
		"bold":      lipgloss.NewStyle().Bold(true),
		"italic":    lipgloss.NewStyle().Italic(true),
		"underline": lipgloss.NewStyle().Underline(true),

		"slot":    SlotStyle,
		"family":  FamilyStyle,
		"strong":  StrongStyle,
		"default": DefaultBindingStyle,
		"option":  OptionStyle,
		"alias":   AliasStyle,
	} {
		p.AddStyle(tag, st)
	}
	return p
}

// AddStyle registers or replaces a tag
func (p *MarkupParser) AddStyle(tag string, st lipgloss.Style) {
	quoted := regexp.QuoteMeta(tag)
	p.tags[tag] = markupTag{
		pattern: regexp.MustCompile(`\[` + quoted + `\](.*?)\[/` + quoted + `\]`),
		style:   st,
	}
}

// Render replaces tags until none are left, so nested tags resolve from the
// inside out.
func (p *MarkupParser) Render(text string) string {
	for {
		before := text
		for _, tag := range p.tags {
			text = tag.pattern.ReplaceAllStringFunc(text, func(match string) string {
				sub := tag.pattern.FindStringSubmatch(match)
				if len(sub) != 2 {
					return match
				}
				return tag.style.Render(sub[1])
			})
		}
		if text == before {
			return text
		}
	}
}

// RenderTemplate substitutes {{name}} placeholders, then renders markup
func (p *MarkupParser) RenderTemplate(template string, vars map[string]string) string {
	for key, value := range vars {
		template = strings.ReplaceAll(template, "{{"+key+"}}", value)
	}
	return p.Render(template)
}

var defaultParser = NewMarkupParser()

// Render uses the default parser
func Render(text string) string {
	return defaultParser.Render(text)
}

// RenderTemplate uses the default parser
func RenderTemplate(template string, vars map[string]string) string {
	return defaultParser.RenderTemplate(template, vars)
}
