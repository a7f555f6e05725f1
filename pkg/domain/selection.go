package domain

// NodeID is a handle into a document arena.
type NodeID int32

// NoNode is the invalid handle.
const NoNode NodeID = -1

// Point addresses a character offset inside a text run.
type Point struct {
	Leaf   NodeID `json:"leaf"`
	Offset int    `json:"offset"`
}

// Selection is a range between two points. Anchor may come after Focus.
// It is owned by the substrate; the formatting core only passes it along.
type Selection struct {
	Anchor Point `json:"anchor"`
	Focus  Point `json:"focus"`
}

// Caret returns a collapsed selection at p.
func Caret(p Point) Selection {
	return Selection{Anchor: p, Focus: p}
}

// IsCollapsed reports whether the selection covers no characters.
func (s Selection) IsCollapsed() bool {
	return s.Anchor == s.Focus
}

// IsZero reports whether the selection was never set.
func (s Selection) IsZero() bool {
	return s == Selection{}
}
