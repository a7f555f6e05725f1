package format_test

import (
	"testing"

	"github.com/aretw0/inkwell/pkg/document"
	"github.com/aretw0/inkwell/pkg/domain"
	"github.com/aretw0/inkwell/pkg/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func find(t *testing.T, doc *document.Document, needle string) domain.Selection {
	t.Helper()
	sel, ok := doc.FindText(needle)
	require.True(t, ok, "text %q not found", needle)
	return sel
}

func TestIsMarkActive(t *testing.T) {
	doc := document.MustNew(document.DemoValue())

	assert.True(t, format.IsMarkActive(doc, find(t, doc, "rich"), domain.MarkBold))
	assert.False(t, format.IsMarkActive(doc, find(t, doc, "editable"), domain.MarkBold))
	assert.False(t, format.IsMarkActive(doc, domain.Caret(domain.Point{Leaf: 999}), domain.MarkBold))
}

func TestToggleMark_Identity(t *testing.T) {
	for _, m := range domain.Marks {
		t.Run(m.String(), func(t *testing.T) {
			doc := document.MustNew(document.DemoValue())
			before := doc.Value()

			sel := format.ToggleMark(doc, find(t, doc, "editable"), m)
			assert.True(t, format.IsMarkActive(doc, sel, m))
			sel = format.ToggleMark(doc, sel, m)
			assert.False(t, format.IsMarkActive(doc, sel, m))
			assert.Equal(t, before, doc.Value())
		})
	}
}

func TestToggleMark_MixedSelectionSetsEverywhere(t *testing.T) {
	doc := document.MustNew([]domain.Node{
		domain.Block(domain.KindParagraph, domain.Text("ab", domain.MarkBold), domain.Text("cd")),
	})
	all := doc.SelectAll()

	all = format.ToggleMark(doc, all, domain.MarkBold)
	assert.Equal(t, []domain.Node{
		domain.Block(domain.KindParagraph, domain.Text("abcd", domain.MarkBold)),
	}, doc.Value())

	format.ToggleMark(doc, all, domain.MarkBold)
	assert.Equal(t, []domain.Node{
		domain.Block(domain.KindParagraph, domain.Text("abcd")),
	}, doc.Value())
}

func TestToggleBlock_Quote(t *testing.T) {
	doc := document.MustNew(document.DemoValue())
	sel := find(t, doc, "Try it out")

	sel = format.ToggleBlock(doc, sel, domain.KindQuote)
	assert.True(t, format.IsBlockActive(doc, sel, domain.KindQuote))
	assert.Equal(t, domain.KindQuote, doc.Value()[3].Kind)

	sel = format.ToggleBlock(doc, sel, domain.KindQuote)
	assert.False(t, format.IsBlockActive(doc, sel, domain.KindQuote))
	assert.Equal(t, domain.KindParagraph, doc.Value()[3].Kind)
}

func TestToggleBlock_Lists(t *testing.T) {
	doc := document.MustNew([]domain.Node{domain.Block(domain.KindParagraph, domain.Text("item"))})
	sel := find(t, doc, "item")

	sel = format.ToggleBlock(doc, sel, domain.KindNumberedList)
	assert.Equal(t, []domain.Node{
		domain.Block(domain.KindNumberedList, domain.Block(domain.KindListItem, domain.Text("item"))),
	}, doc.Value())

	sel = format.ToggleBlock(doc, sel, domain.KindBulletedList)
	assert.Equal(t, []domain.Node{
		domain.Block(domain.KindBulletedList, domain.Block(domain.KindListItem, domain.Text("item"))),
	}, doc.Value())
	require.NoError(t, doc.Check())

	format.ToggleBlock(doc, sel, domain.KindBulletedList)
	assert.Equal(t, []domain.Node{
		domain.Block(domain.KindParagraph, domain.Text("item")),
	}, doc.Value())
}

func TestToggleBlock_HeadingInsideListLeavesList(t *testing.T) {
	doc := document.MustNew([]domain.Node{
		domain.Block(domain.KindBulletedList, domain.Block(domain.KindListItem, domain.Text("title"))),
	})
	format.ToggleBlock(doc, find(t, doc, "title"), domain.KindHeading1)
	assert.Equal(t, []domain.Node{
		domain.Block(domain.KindHeading1, domain.Text("title")),
	}, doc.Value())
}

func TestProject(t *testing.T) {
	doc := document.MustNew([]domain.Node{
		domain.Block(domain.KindHeading2, domain.Text("head", domain.MarkItalic, domain.MarkCode)),
		domain.Block(domain.KindNumberedList, domain.Block(domain.KindListItem, domain.Text("one"))),
		domain.Block(domain.KindQuote, domain.Text("quoted", domain.MarkUnderline)),
	})

	assert.Equal(t, domain.Snapshot{
		domain.RegionBold:      domain.StateInactive,
		domain.RegionItalic:    domain.StateActive,
		domain.RegionUnderline: domain.StateInactive,
		domain.RegionCode:      domain.StateActive,
		domain.RegionQuote:     domain.StateInactive,
		domain.RegionLayout:    domain.StateParagraph,
		domain.RegionHeading:   domain.StateHeading2,
	}, format.Project(doc, find(t, doc, "head")))

	snap := format.Project(doc, find(t, doc, "one"))
	assert.Equal(t, domain.StateNumbered, snap[domain.RegionLayout])
	assert.Equal(t, domain.StateNone, snap[domain.RegionHeading])

	snap = format.Project(doc, find(t, doc, "quoted"))
	assert.Equal(t, domain.StateActive, snap[domain.RegionQuote])
	assert.Equal(t, domain.StateActive, snap[domain.RegionUnderline])
}

func TestTargetOf(t *testing.T) {
	target, ok := format.TargetOf(domain.CmdToggleCode)
	require.True(t, ok)
	assert.False(t, target.IsBlock)
	assert.Equal(t, "code", target.String())

	target, ok = format.TargetOf(domain.CmdSetBulleted)
	require.True(t, ok)
	assert.True(t, target.IsBlock)
	assert.Equal(t, "bulleted-list", target.String())

	_, ok = format.TargetOf(domain.CmdSetParagraph)
	assert.False(t, ok)
	_, ok = format.TargetOf(domain.CmdClearHeading)
	assert.False(t, ok)
}
