package ports

import "github.com/aretw0/inkwell/pkg/domain"

// Querier derives format state from document truth.
type Querier interface {
	// ActiveMarks returns the marks shared by every text run contributing to sel.
	// ok is false when no run contributes (empty or unresolvable selection).
	ActiveMarks(sel domain.Selection) (marks domain.MarkSet, ok bool)

	// EnclosingBlockKinds returns the kinds of every block that contains, or lies
	// inside, the selection. Outer blocks come first; duplicates are removed.
	EnclosingBlockKinds(sel domain.Selection) []domain.BlockKind
}

// Mutator applies format edits at a selection.
// Both methods return sel re-anchored to the nodes that exist after the edit.
// Selections that resolve to no nodes are returned unchanged and nothing is mutated.
type Mutator interface {
	ApplyMarkDelta(sel domain.Selection, mark domain.Mark, value bool) domain.Selection
	ApplyBlockStructureChange(sel domain.Selection, change domain.BlockChange) domain.Selection
}

// Substrate is the editing surface the formatting core operates on.
type Substrate interface {
	Querier
	Mutator
}

// Inspector exposes a read-only view of a document.
type Inspector interface {
	// Value returns the document as a plain value tree.
	Value() []domain.Node

	// Leaves returns every text run handle in document order.
	Leaves() []domain.NodeID

	// LeafText returns the text of a run, or "" for unknown handles.
	LeafText(id domain.NodeID) string
}
