package cli

import (
	"fmt"

	"github.com/aretw0/inkwell/internal/presentation/graph"
	"github.com/aretw0/inkwell/internal/presentation/markup"
	"github.com/aretw0/inkwell/internal/presentation/tui"
)

// Formats accepted by Render.
const (
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
	FormatTerminal = "terminal"
)

// Render prints the seed document in the given format.
func Render(opts RunOptions, format string) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	s, err := createSession(cfg, false)
	if err != nil {
		return err
	}

	out := opts.out()
	value := s.editor.Value()
	switch format {
	case FormatHTML:
		fmt.Fprintln(out, markup.HTML(value))
	case FormatMarkdown:
		fmt.Fprint(out, markup.Markdown(value))
	case FormatTerminal, "":
		if !isTerminal(out) {
			fmt.Fprint(out, markup.Markdown(value))
			return nil
		}
		render, err := tui.NewRenderer(cfg.Theme)
		if err != nil {
			return err
		}
		rendered, err := render(markup.Markdown(value))
		if err != nil {
			return fmt.Errorf("failed to render document: %w", err)
		}
		fmt.Fprint(out, rendered)
	default:
		return fmt.Errorf("unknown format %q (want markdown, html or terminal)", format)
	}
	return nil
}

// Graph prints the format machine as a Mermaid state diagram, highlighting
// the values derived from the seed document.
func Graph(opts RunOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	s, err := createSession(cfg, false)
	if err != nil {
		return err
	}

	overlay := &graph.GraphOverlay{Current: s.editor.Snapshot()}
	fmt.Fprint(opts.out(), graph.GenerateMermaid(s.editor.Definition(), overlay))
	return nil
}

// States prints the transition table and the current region values.
func States(opts RunOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	s, err := createSession(cfg, false)
	if err != nil {
		return err
	}

	out := opts.out()
	def, snap := s.editor.Definition(), s.editor.Snapshot()
	WriteTransitions(out, def, snap)
	fmt.Fprintln(out)
	WriteSnapshot(out, def, snap)
	return nil
}
