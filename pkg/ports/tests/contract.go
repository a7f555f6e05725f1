// Package tests provides reusable contract suites for ports implementations.
package tests

import (
	"strings"
	"testing"

	"github.com/aretw0/inkwell/pkg/domain"
	"github.com/aretw0/inkwell/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Surface is what the contract needs from a substrate under test.
type Surface interface {
	ports.Substrate
	ports.Inspector
}

// Factory builds a fresh substrate seeded with value.
type Factory func(t *testing.T, value []domain.Node) Surface

// SubstrateContractTest verifies that an implementation honours the query and
// mutation contracts of ports.Substrate. Fixtures use ASCII text only, so
// byte and grapheme offsets agree.
func SubstrateContractTest(t *testing.T, factory Factory) {
	t.Helper()

	t.Run("ActiveMarks_SingleRun", func(t *testing.T) {
		s := factory(t, []domain.Node{
			domain.Block(domain.KindParagraph, domain.Text("plain "), domain.Text("strong", domain.MarkBold)),
		})
		marks, ok := s.ActiveMarks(find(t, s, "tro"))
		require.True(t, ok)
		assert.True(t, marks.Has(domain.MarkBold))
	})

	t.Run("ActiveMarks_Intersection", func(t *testing.T) {
		s := factory(t, []domain.Node{
			domain.Block(domain.KindParagraph,
				domain.Text("ab", domain.MarkBold, domain.MarkItalic),
				domain.Text("cd", domain.MarkBold),
			),
		})
		sel := span(t, s, "ab", 0, "cd", 2)
		marks, ok := s.ActiveMarks(sel)
		require.True(t, ok)
		assert.Equal(t, domain.NewMarkSet(domain.MarkBold), marks)
	})

	t.Run("UnresolvableSelection", func(t *testing.T) {
		s := factory(t, []domain.Node{domain.Block(domain.KindParagraph, domain.Text("x"))})
		bad := domain.Caret(domain.Point{Leaf: 1 << 20})

		_, ok := s.ActiveMarks(bad)
		assert.False(t, ok)
		assert.Empty(t, s.EnclosingBlockKinds(bad))

		before := s.Value()
		assert.Equal(t, bad, s.ApplyMarkDelta(bad, domain.MarkBold, true))
		assert.Equal(t, bad, s.ApplyBlockStructureChange(bad, domain.BlockChange{SetKind: domain.KindQuote}))
		assert.Equal(t, before, s.Value())
	})

	t.Run("MarkDelta_SplitsAndMerges", func(t *testing.T) {
		s := factory(t, []domain.Node{domain.Block(domain.KindParagraph, domain.Text("hello world"))})

		sel := s.ApplyMarkDelta(find(t, s, "lo wo"), domain.MarkBold, true)
		runs := s.Value()[0].Children
		require.Len(t, runs, 3)
		assert.Equal(t, "lo wo", runs[1].Text)
		assert.True(t, runs[1].Marks.Has(domain.MarkBold))

		marks, ok := s.ActiveMarks(sel)
		require.True(t, ok, "returned selection must stay resolvable")
		assert.True(t, marks.Has(domain.MarkBold))

		s.ApplyMarkDelta(sel, domain.MarkBold, false)
		assert.Equal(t, []domain.Node{
			domain.Block(domain.KindParagraph, domain.Text("hello world")),
		}, s.Value())
	})

	t.Run("EnclosingBlockKinds_OuterFirst", func(t *testing.T) {
		s := factory(t, []domain.Node{
			domain.Block(domain.KindBulletedList, domain.Block(domain.KindListItem, domain.Text("item"))),
		})
		assert.Equal(t,
			[]domain.BlockKind{domain.KindBulletedList, domain.KindListItem},
			s.EnclosingBlockKinds(find(t, s, "item")))
	})

	t.Run("BlockChange_Wrap", func(t *testing.T) {
		s := factory(t, []domain.Node{domain.Block(domain.KindParagraph, domain.Text("one"))})

		sel := s.ApplyBlockStructureChange(find(t, s, "one"), domain.BlockChange{
			Unwrap:  domain.ListKinds,
			SetKind: domain.KindListItem,
			WrapAs:  domain.KindNumberedList,
		})
		assert.Equal(t, []domain.Node{
			domain.Block(domain.KindNumberedList, domain.Block(domain.KindListItem, domain.Text("one"))),
		}, s.Value())
		assert.Equal(t,
			[]domain.BlockKind{domain.KindNumberedList, domain.KindListItem},
			s.EnclosingBlockKinds(sel))
	})

	t.Run("BlockChange_SwitchListStyle", func(t *testing.T) {
		s := factory(t, []domain.Node{
			domain.Block(domain.KindNumberedList, domain.Block(domain.KindListItem, domain.Text("one"))),
		})
		s.ApplyBlockStructureChange(find(t, s, "one"), domain.BlockChange{
			Unwrap:  domain.ListKinds,
			SetKind: domain.KindListItem,
			WrapAs:  domain.KindBulletedList,
		})
		assert.Equal(t, []domain.Node{
			domain.Block(domain.KindBulletedList, domain.Block(domain.KindListItem, domain.Text("one"))),
		}, s.Value())
	})

	t.Run("BlockChange_LiftSplitsContainer", func(t *testing.T) {
		s := factory(t, []domain.Node{
			domain.Block(domain.KindNumberedList,
				domain.Block(domain.KindListItem, domain.Text("a")),
				domain.Block(domain.KindListItem, domain.Text("b")),
				domain.Block(domain.KindListItem, domain.Text("c")),
			),
		})
		s.ApplyBlockStructureChange(find(t, s, "b"), domain.BlockChange{
			Unwrap:  domain.ListKinds,
			SetKind: domain.KindParagraph,
		})
		assert.Equal(t, []domain.Node{
			domain.Block(domain.KindNumberedList, domain.Block(domain.KindListItem, domain.Text("a"))),
			domain.Block(domain.KindParagraph, domain.Text("b")),
			domain.Block(domain.KindNumberedList, domain.Block(domain.KindListItem, domain.Text("c"))),
		}, s.Value())
	})

	t.Run("BlockChange_SetKindOnly", func(t *testing.T) {
		s := factory(t, []domain.Node{
			domain.Block(domain.KindParagraph, domain.Text("title")),
			domain.Block(domain.KindParagraph, domain.Text("body")),
		})
		s.ApplyBlockStructureChange(find(t, s, "title"), domain.BlockChange{SetKind: domain.KindHeading1})
		v := s.Value()
		assert.Equal(t, domain.KindHeading1, v[0].Kind)
		assert.Equal(t, domain.KindParagraph, v[1].Kind)
	})
}

// find selects the first occurrence of needle inside a single run.
func find(t *testing.T, s Surface, needle string) domain.Selection {
	t.Helper()
	for _, id := range s.Leaves() {
		if i := strings.Index(s.LeafText(id), needle); i >= 0 {
			return domain.Selection{
				Anchor: domain.Point{Leaf: id, Offset: i},
				Focus:  domain.Point{Leaf: id, Offset: i + len(needle)},
			}
		}
	}
	t.Fatalf("text %q not found", needle)
	return domain.Selection{}
}

// span selects from an offset in the run holding from to an offset in the run holding to.
func span(t *testing.T, s Surface, from string, fromOff int, to string, toOff int) domain.Selection {
	t.Helper()
	return domain.Selection{
		Anchor: domain.Point{Leaf: find(t, s, from).Anchor.Leaf, Offset: fromOff},
		Focus:  domain.Point{Leaf: find(t, s, to).Anchor.Leaf, Offset: toOff},
	}
}
