package tui

import (
	"strings"

	"github.com/aretw0/inkwell/pkg/domain"
	"github.com/charmbracelet/lipgloss"
)

// Button is one toolbar entry, lit when its region holds Value.
type Button struct {
	Label  string
	Region domain.Region
	Value  domain.StateValue
}

// Buttons lists the toolbar in display order.
var Buttons = []Button{
	{Label: "B", Region: domain.RegionBold, Value: domain.StateActive},
	{Label: "I", Region: domain.RegionItalic, Value: domain.StateActive},
	{Label: "U", Region: domain.RegionUnderline, Value: domain.StateActive},
	{Label: "</>", Region: domain.RegionCode, Value: domain.StateActive},
	{Label: "H1", Region: domain.RegionHeading, Value: domain.StateHeading1},
	{Label: "H2", Region: domain.RegionHeading, Value: domain.StateHeading2},
	{Label: "❝", Region: domain.RegionQuote, Value: domain.StateActive},
	{Label: "1.", Region: domain.RegionLayout, Value: domain.StateNumbered},
	{Label: "•", Region: domain.RegionLayout, Value: domain.StateBulleted},
}

var (
	activeButton = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true).
			Padding(0, 1)
	inactiveButton = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Padding(0, 1)
)

// Active reports whether b is lit in snap.
func (b Button) Active(snap domain.Snapshot) bool {
	return snap.Matches(b.Region, b.Value)
}

// Toolbar renders one styled button per format.
func Toolbar(snap domain.Snapshot) string {
	parts := make([]string, 0, len(Buttons))
	for _, b := range Buttons {
		style := inactiveButton
		if b.Active(snap) {
			style = activeButton
		}
		parts = append(parts, style.Render(b.Label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// PlainToolbar renders the toolbar without styling, bracketing lit buttons.
func PlainToolbar(snap domain.Snapshot) string {
	parts := make([]string, 0, len(Buttons))
	for _, b := range Buttons {
		if b.Active(snap) {
			parts = append(parts, "["+b.Label+"]")
		} else {
			parts = append(parts, " "+b.Label+" ")
		}
	}
	return strings.Join(parts, "")
}
