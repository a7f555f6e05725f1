package inkwell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aretw0/inkwell/internal/keymap"
	"github.com/aretw0/inkwell/internal/presentation/markup"
	"github.com/aretw0/inkwell/pkg/document"
	"github.com/aretw0/inkwell/pkg/domain"
)

// Runner drives an Editor from line-oriented input: an interactive prompt or a script.
//
// Each line is one of:
//
//	TOGGLE_BOLD            dispatch a command (any upper-case word)
//	mod+b                  dispatch the command bound to a hotkey
//	select all             select the whole document
//	select 0.1:3 [0.2:4]   caret or range between points (path:offset)
//	select block 2         select every run of the block at path
//	find <text>            select the first run-local match of text
//	insert <text>          type text at the selection (quotes optional)
//	show | html            print the document as rendered Markdown or HTML
//	state                  print the region snapshot
//	commands | hotkeys     list what can be dispatched
//	exit | quit            stop
//
// Blank lines and lines starting with '#' are ignored.
type Runner struct {
	Input    io.Reader
	Output   io.Writer
	Headless bool
	Renderer ContentRenderer
	Keymap   *keymap.Keymap
}

// ContentRenderer is a function that transforms the content before outputting it.
// This allows for TUI rendering (markdown to ANSI) without coupling the core package.
type ContentRenderer func(string) (string, error)

// NewRunner creates a Runner. Input and Output must be set before Run.
func NewRunner() *Runner {
	return &Runner{}
}

// Run reads lines until EOF, exit, or ctx is done.
func (r *Runner) Run(ctx context.Context, ed *Editor) error {
	if r.Input == nil {
		return fmt.Errorf("input reader must be set (use os.Stdin)")
	}
	if r.Output == nil {
		return fmt.Errorf("output writer must be set (use os.Stdout)")
	}
	keys := r.Keymap
	if keys == nil {
		keys = keymap.Default()
	}

	scanner := bufio.NewScanner(r.Input)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !r.Headless {
			fmt.Fprint(r.Output, "> ")
		}
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == "exit" || line == "quit" {
			if !r.Headless {
				fmt.Fprintln(r.Output, "Bye!")
			}
			return nil
		}

		if err := r.step(ctx, ed, keys, line); err != nil {
			fmt.Fprintf(r.Output, "error: %v\n", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("input error: %w", err)
	}
	return nil
}

func (r *Runner) step(ctx context.Context, ed *Editor, keys *keymap.Keymap, line string) error {
	verb, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch verb {
	case "select":
		sel, err := parseSelection(ed.Document(), rest)
		if err != nil {
			return err
		}
		r.report(ed.Snapshot(), ed.Select(ctx, sel))
		return nil
	case "find":
		before := ed.Snapshot()
		after, err := ed.SelectText(ctx, unquote(rest))
		if err != nil {
			return err
		}
		r.report(before, after)
		return nil
	case "insert":
		r.report(ed.Snapshot(), ed.InsertText(ctx, unquote(rest)))
		return nil
	case "show":
		return r.print(markup.Markdown(ed.Value()), r.Renderer)
	case "html":
		return r.print(markup.HTML(ed.Value()), nil)
	case "state":
		fmt.Fprintln(r.Output, ed.Snapshot())
		return nil
	case "commands":
		for _, c := range domain.Commands {
			fmt.Fprintln(r.Output, c)
		}
		return nil
	case "hotkeys":
		for _, b := range keys.Bindings() {
			fmt.Fprintf(r.Output, "%-12s %s\n", b.Key, b.Command)
		}
		return nil
	}

	if strings.Contains(line, "+") {
		cmd, ok := keys.Lookup(line)
		if !ok {
			return fmt.Errorf("hotkey %q is not bound", line)
		}
		r.report(ed.Snapshot(), ed.Dispatch(ctx, cmd))
		return nil
	}
	if strings.ToUpper(line) == line {
		r.report(ed.Snapshot(), ed.Dispatch(ctx, domain.Command(line)))
		return nil
	}
	return fmt.Errorf("unknown input %q", line)
}

func (r *Runner) report(before, after domain.Snapshot) {
	for _, c := range domain.Diff(before, after) {
		fmt.Fprintf(r.Output, "  %s: %s -> %s\n", c.Region, c.From, c.To)
	}
}

func (r *Runner) print(content string, render ContentRenderer) error {
	if render != nil {
		rendered, err := render(content)
		if err != nil {
			return err
		}
		content = rendered
	}
	fmt.Fprintln(r.Output, strings.TrimRight(content, "\n"))
	return nil
}

func parseSelection(doc *document.Document, arg string) (domain.Selection, error) {
	fields := strings.Fields(arg)
	switch {
	case len(fields) == 1 && fields[0] == "all":
		return doc.SelectAll(), nil
	case len(fields) == 2 && fields[0] == "block":
		path, err := document.ParsePath(fields[1])
		if err != nil {
			return domain.Selection{}, err
		}
		return doc.SelectNode(path)
	case len(fields) == 1 || len(fields) == 2:
		anchor, err := doc.ParsePoint(fields[0])
		if err != nil {
			return domain.Selection{}, err
		}
		focus := anchor
		if len(fields) == 2 {
			if focus, err = doc.ParsePoint(fields[1]); err != nil {
				return domain.Selection{}, err
			}
		}
		return domain.Selection{Anchor: anchor, Focus: focus}, nil
	}
	return domain.Selection{}, fmt.Errorf("usage: select all | select block <path> | select <point> [<point>]")
}

func unquote(s string) string {
	if u, err := strconv.Unquote(s); err == nil {
		return u
	}
	return s
}
