package style

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/fontweak/pkg/rules"
	"github.com/arthur-debert/fontweak/pkg/types"
)

// BindingStyle returns the style for a binding label ("strong" or "default")
func BindingStyle(binding string) lipgloss.Style {
	if binding == "strong" {
		return StrongStyle
	}
	return DefaultBindingStyle
}

// RenderSlotHeader renders a slot key padded to a column, followed by its
// binding
func RenderSlotHeader(view types.SlotView) string {
	key := fmt.Sprintf("%-22s", view.Slot.Key().String())
	return SlotStyle.Render(key) + " " + BindingStyle(view.Binding).Render(view.Binding)
}

func optionLines(set types.OptionSet) []string {
	return rules.FormatOptions(set)
}
