package cli

import (
	"context"
	"testing"

	"github.com/aretw0/inkwell"
	"github.com/aretw0/inkwell/internal/keymap"
	"github.com/aretw0/inkwell/pkg/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) editModel {
	t.Helper()
	ed, err := inkwell.New(inkwell.WithValue([]domain.Node{
		domain.Block(domain.KindParagraph, domain.Text("ab"), domain.Text("cd", domain.MarkItalic)),
		domain.Block(domain.KindParagraph, domain.Text("ef")),
	}))
	require.NoError(t, err)
	return newEditModel(context.Background(), ed, keymap.Default())
}

func press(m editModel, keys ...tea.KeyMsg) editModel {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(editModel)
	}
	return m
}

func TestCaretSlots(t *testing.T) {
	m := newTestModel(t)
	slots := caretSlots(m.ed.Document())

	// "ab" contributes 0,1; "cd" 0,1,2 (block end); "ef" 0,1,2.
	require.Len(t, slots, 8)

	leaves := m.ed.Document().Leaves()
	assert.Equal(t, domain.Point{Leaf: leaves[1], Offset: 0}, slots[2])
	assert.Equal(t, domain.Point{Leaf: leaves[1], Offset: 2}, slots[4])
	assert.Equal(t, 2, slotIndex(slots, domain.Point{Leaf: leaves[0], Offset: 2}), "end of a run maps to the next run")
}

func TestEditModel_ExtendSelectionAndToggle(t *testing.T) {
	m := newTestModel(t)
	right := tea.KeyMsg{Type: tea.KeyShiftRight}

	m = press(m, right, right, right)
	assert.Equal(t, "abc", m.ed.Document().SelectedText(m.ed.Selection()))

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlB})
	assert.Equal(t, domain.StateActive, m.ed.Snapshot()[domain.RegionBold])
	assert.Equal(t, []domain.Node{
		domain.Block(domain.KindParagraph,
			domain.Text("ab", domain.MarkBold),
			domain.Text("c", domain.MarkBold, domain.MarkItalic),
			domain.Text("d", domain.MarkItalic),
		),
		domain.Block(domain.KindParagraph, domain.Text("ef")),
	}, m.ed.Value())
	assert.Equal(t, "abc", m.ed.Document().SelectedText(m.ed.Selection()), "selection survives the split")
	assert.Contains(t, m.status, "TOGGLE_BOLD")
}

func TestEditModel_TypeWithPendingMark(t *testing.T) {
	m := newTestModel(t)

	m = press(m,
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyCtrlU},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("X")},
	)

	assert.Equal(t, domain.Block(domain.KindParagraph,
		domain.Text("a"),
		domain.Text("X", domain.MarkUnderline),
		domain.Text("b"),
		domain.Text("cd", domain.MarkItalic),
	), m.ed.Value()[0])
	assert.Equal(t, domain.StateActive, m.ed.Snapshot()[domain.RegionUnderline])
}

func TestEditModel_UnboundKeyAndQuit(t *testing.T) {
	m := newTestModel(t)

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlG})
	assert.Contains(t, m.status, "not bound")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestEditModel_View(t *testing.T) {
	m := newTestModel(t)
	view := m.View()

	assert.Contains(t, view, "ef")
	assert.Contains(t, view, "selection 0.0:0 - 0.0:0")
	assert.Contains(t, view, "mod+b TOGGLE_BOLD")
}
