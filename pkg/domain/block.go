package domain

import "slices"

// BlockKind tags a structural document node.
type BlockKind string

const (
	KindParagraph    BlockKind = "paragraph"
	KindHeading1     BlockKind = "heading-one"
	KindHeading2     BlockKind = "heading-two"
	KindQuote        BlockKind = "block-quote"
	KindNumberedList BlockKind = "numbered-list"
	KindBulletedList BlockKind = "bulleted-list"
	KindListItem     BlockKind = "list-item"
)

// ListKinds are the container kinds that toggling a block always unwraps first.
var ListKinds = []BlockKind{KindNumberedList, KindBulletedList}

// BlockKinds lists every known kind.
var BlockKinds = []BlockKind{
	KindParagraph, KindHeading1, KindHeading2, KindQuote,
	KindNumberedList, KindBulletedList, KindListItem,
}

// IsList reports whether k is a list container kind.
func (k BlockKind) IsList() bool {
	return slices.Contains(ListKinds, k)
}

// Valid reports whether k is a known kind.
func (k BlockKind) Valid() bool {
	return slices.Contains(BlockKinds, k)
}

// Node is the plain value form of a document node.
// A Node with an empty Kind is a text run; otherwise it is a block.
type Node struct {
	Kind     BlockKind `json:"type,omitempty" yaml:"type,omitempty"`
	Text     string    `json:"text,omitempty" yaml:"text,omitempty"`
	Marks    MarkSet   `json:"marks,omitempty" yaml:"marks,omitempty"`
	Children []Node    `json:"children,omitempty" yaml:"children,omitempty"`
}

// IsText reports whether the node is a text run.
func (n Node) IsText() bool { return n.Kind == "" }

// Block builds a block value.
func Block(kind BlockKind, children ...Node) Node {
	return Node{Kind: kind, Children: children}
}

// Text builds a text run value.
func Text(text string, marks ...Mark) Node {
	return Node{Text: text, Marks: NewMarkSet(marks...)}
}

// PlainText concatenates the text of every run below n.
func (n Node) PlainText() string {
	if n.IsText() {
		return n.Text
	}
	var out string
	for _, c := range n.Children {
		out += c.PlainText()
	}
	return out
}

// BlockChange describes a structural edit applied to the blocks covered by a selection.
// The substrate applies it in order: unwrap, set, wrap.
type BlockChange struct {
	// Unwrap lists the container kinds whose ancestors are lifted away from the selection.
	Unwrap []BlockKind
	// SetKind is the new kind of every lowest block in the selection.
	SetKind BlockKind
	// WrapAs, when non-empty, wraps the selected blocks into a new container of this kind.
	WrapAs BlockKind
}
