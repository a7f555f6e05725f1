package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/inkwell"
	"github.com/aretw0/inkwell/internal/keymap"
	"github.com/aretw0/inkwell/internal/presentation/tui"
	"github.com/aretw0/inkwell/pkg/document"
	"github.com/aretw0/inkwell/pkg/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	codeStyle   = lipgloss.NewStyle().Background(lipgloss.Color("236"))
	prefixStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
)

// editModel is the interactive editor: arrow keys move the selection, hotkeys
// dispatch commands and printable keys insert text.
type editModel struct {
	ctx    context.Context
	ed     *inkwell.Editor
	keys   *keymap.Keymap
	anchor int
	focus  int
	status string
}

func newEditModel(ctx context.Context, ed *inkwell.Editor, keys *keymap.Keymap) editModel {
	m := editModel{ctx: ctx, ed: ed, keys: keys}
	m.follow()
	return m
}

func (m editModel) Init() tea.Cmd {
	return nil
}

func (m editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	slots := caretSlots(m.ed.Document())
	last := len(slots) - 1

	switch key.String() {
	case "ctrl+c", "ctrl+q", "esc":
		return m, tea.Quit
	case "left":
		m.focus = clamp(m.focus-1, last)
		m.anchor = m.focus
	case "right":
		m.focus = clamp(m.focus+1, last)
		m.anchor = m.focus
	case "shift+left":
		m.focus = clamp(m.focus-1, last)
	case "shift+right":
		m.focus = clamp(m.focus+1, last)
	case "home":
		m.anchor, m.focus = 0, 0
	case "end":
		m.anchor, m.focus = last, last
	case "ctrl+a":
		m.anchor, m.focus = 0, last
	default:
		return m.handleInput(key), nil
	}

	before := m.ed.Snapshot()
	if last >= 0 {
		m.ed.Select(m.ctx, domain.Selection{Anchor: slots[m.anchor], Focus: slots[m.focus]})
	}
	m.status = describe(before, m.ed.Snapshot())
	return m, nil
}

func (m editModel) handleInput(key tea.KeyMsg) editModel {
	before := m.ed.Snapshot()

	if cmd, ok := m.keys.Lookup(key.String()); ok {
		m.ed.Dispatch(m.ctx, cmd)
		m.status = fmt.Sprintf("%s %s", cmd, describe(before, m.ed.Snapshot()))
		m.follow()
		return m
	}

	switch key.Type {
	case tea.KeyRunes:
		m.ed.InsertText(m.ctx, string(key.Runes))
	case tea.KeySpace:
		m.ed.InsertText(m.ctx, " ")
	default:
		m.status = fmt.Sprintf("%s is not bound", key.String())
		return m
	}
	m.status = describe(before, m.ed.Snapshot())
	m.follow()
	return m
}

// follow re-reads the selection from the editor after a mutation moved it.
func (m *editModel) follow() {
	slots := caretSlots(m.ed.Document())
	sel := m.ed.Selection()
	m.anchor = slotIndex(slots, sel.Anchor)
	m.focus = slotIndex(slots, sel.Focus)
}

func (m editModel) View() string {
	var sb strings.Builder
	sb.WriteString(tui.Toolbar(m.ed.Snapshot()))
	sb.WriteString("\n\n")
	for _, n := range m.ed.Value() {
		sb.WriteString(renderBlock(n, ""))
		sb.WriteString("\n")
	}

	doc := m.ed.Document()
	sel := m.ed.Selection()
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("selection %s - %s %q\n",
		doc.FormatPoint(sel.Anchor), doc.FormatPoint(sel.Focus), doc.SelectedText(sel)))
	if m.status != "" {
		sb.WriteString(statusStyle.Render(m.status))
		sb.WriteString("\n")
	}

	var bindings []string
	for _, b := range m.keys.Bindings() {
		bindings = append(bindings, fmt.Sprintf("%s %s", b.Key, b.Command))
	}
	sb.WriteString(helpStyle.Render("arrows move · shift extends · " + strings.Join(bindings, " · ") + " · esc quits"))
	sb.WriteString("\n")
	return sb.String()
}

func renderBlock(n domain.Node, indent string) string {
	switch n.Kind {
	case domain.KindNumberedList, domain.KindBulletedList:
		lines := make([]string, 0, len(n.Children))
		i := 0
		for _, item := range n.Children {
			if item.Kind.IsList() {
				lines = append(lines, renderBlock(item, indent+"   "))
				continue
			}
			i++
			bullet := "• "
			if n.Kind == domain.KindNumberedList {
				bullet = strconv.Itoa(i) + ". "
			}
			lines = append(lines, indent+prefixStyle.Render(bullet)+renderRuns(item))
		}
		return strings.Join(lines, "\n")
	case domain.KindHeading1:
		return indent + prefixStyle.Render("# ") + lipgloss.NewStyle().Bold(true).Render(renderRuns(n))
	case domain.KindHeading2:
		return indent + prefixStyle.Render("## ") + renderRuns(n)
	case domain.KindQuote:
		return indent + prefixStyle.Render("│ ") + renderRuns(n)
	}
	return indent + renderRuns(n)
}

func renderRuns(n domain.Node) string {
	var sb strings.Builder
	for _, c := range n.Children {
		if !c.IsText() {
			continue
		}
		style := lipgloss.NewStyle().
			Bold(c.Marks.Has(domain.MarkBold)).
			Italic(c.Marks.Has(domain.MarkItalic)).
			Underline(c.Marks.Has(domain.MarkUnderline))
		if c.Marks.Has(domain.MarkCode) {
			style = style.Inherit(codeStyle)
		}
		sb.WriteString(style.Render(c.Text))
	}
	return sb.String()
}

func describe(before, after domain.Snapshot) string {
	var parts []string
	for _, c := range domain.Diff(before, after) {
		parts = append(parts, fmt.Sprintf("%s→%s", c.Region, c.To))
	}
	return strings.Join(parts, " ")
}

// caretSlots lists every caret position in reading order. Adjacent runs of
// one block share a boundary, so only the last run of a block contributes its
// end offset.
func caretSlots(doc *document.Document) []domain.Point {
	leaves := doc.Leaves()
	var slots []domain.Point
	for i, id := range leaves {
		n := doc.LeafLen(id)
		for off := 0; off < n; off++ {
			slots = append(slots, domain.Point{Leaf: id, Offset: off})
		}
		blockEnd := i == len(leaves)-1 || doc.Parent(leaves[i+1]) != doc.Parent(id)
		if blockEnd || n == 0 {
			slots = append(slots, domain.Point{Leaf: id, Offset: n})
		}
	}
	return slots
}

func slotIndex(slots []domain.Point, p domain.Point) int {
	last := -1
	for i, s := range slots {
		if s.Leaf != p.Leaf {
			continue
		}
		if s.Offset == p.Offset {
			return i
		}
		last = i
	}
	if last >= 0 && last+1 < len(slots) {
		return last + 1
	}
	return max(last, 0)
}

func clamp(i, last int) int {
	return max(0, min(i, last))
}

// RunEdit starts the interactive full-screen editor.
func RunEdit(opts RunOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	s, err := createSession(cfg, opts.Metrics)
	if err != nil {
		return err
	}

	in, out := opts.in(), opts.out()
	if !isTerminal(in) || !isTerminal(out) {
		return fmt.Errorf("edit needs a terminal; use 'inkwell run' for scripts")
	}

	p := tea.NewProgram(newEditModel(context.Background(), s.editor, s.keys),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("editor failed: %w", err)
	}

	if s.collector != nil {
		return WriteMetrics(out, s.collector.Registry())
	}
	return nil
}
