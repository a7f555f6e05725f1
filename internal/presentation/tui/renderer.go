package tui

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// theme is a glamour standard style name ("dark", "light", "notty", ...);
// an empty theme detects the terminal background.
func NewRenderer(theme string) (func(string) (string, error), error) {
	style := glamour.WithAutoStyle()
	if theme != "" {
		style = glamour.WithStandardStyle(theme)
	}

	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(80))
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}
