package document

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/inkwell/pkg/domain"
	"github.com/aretw0/inkwell/pkg/ports"
)

var (
	_ ports.Substrate = (*Document)(nil)
	_ ports.Inspector = (*Document)(nil)
)

// node is one arena slot. A node with an empty kind is a text run.
type node struct {
	kind     domain.BlockKind
	text     string
	marks    domain.MarkSet
	parent   domain.NodeID
	children []domain.NodeID
	live     bool
}

func (n *node) isText() bool { return n.kind == "" }

// Document is an arena-backed block tree.
type Document struct {
	nodes []node
	root  domain.NodeID

	// pending holds marks toggled on a caret, consumed by the next InsertText.
	pending   domain.MarkSet
	pendingAt *domain.Point

	// refs are points re-anchored by splits and merges during a mutation.
	refs []*domain.Point

	strict bool
	logger *slog.Logger
}

// Option configures a Document.
type Option func(*Document)

// WithStrict controls whether a structural invariant violation panics (default true).
func WithStrict(strict bool) Option {
	return func(d *Document) {
		d.strict = strict
	}
}

// WithLogger configures a logger for structural edits.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Document) {
		d.logger = logger
	}
}

// New builds a document from a value tree.
// Top-level nodes must be blocks; lowest blocks without runs get an empty run.
func New(value []domain.Node, opts ...Option) (*Document, error) {
	d := &Document{
		strict: true,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(d)
	}

	d.root = d.alloc(node{kind: "editor", parent: domain.NoNode})
	for i, v := range value {
		if v.IsText() {
			return nil, fmt.Errorf("top-level node %d is a text run", i)
		}
		id, err := d.build(v, d.root)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		d.nodes[d.root].children = append(d.nodes[d.root].children, id)
	}

	d.normalize()
	if err := d.Check(); err != nil {
		return nil, fmt.Errorf("invalid document: %w", err)
	}
	return d, nil
}

// MustNew is like New but panics on error. Intended for fixtures.
func MustNew(value []domain.Node, opts ...Option) *Document {
	d, err := New(value, opts...)
	if err != nil {
		panic(err)
	}
	return d
}

func (d *Document) build(v domain.Node, parent domain.NodeID) (domain.NodeID, error) {
	if v.IsText() {
		return d.alloc(node{text: v.Text, marks: v.Marks, parent: parent}), nil
	}
	if !v.Kind.Valid() {
		return domain.NoNode, fmt.Errorf("%w: %q", domain.ErrUnknownBlockKind, v.Kind)
	}

	id := d.alloc(node{kind: v.Kind, parent: parent})
	for _, c := range v.Children {
		cid, err := d.build(c, id)
		if err != nil {
			return domain.NoNode, err
		}
		d.nodes[id].children = append(d.nodes[id].children, cid)
	}
	if len(v.Children) == 0 && !v.Kind.IsList() {
		cid := d.alloc(node{parent: id})
		d.nodes[id].children = append(d.nodes[id].children, cid)
	}
	return id, nil
}

// alloc appends a node to the arena. Handles are never reused, so a stale
// handle resolves to a dead node instead of an unrelated one.
func (d *Document) alloc(n node) domain.NodeID {
	n.live = true
	d.nodes = append(d.nodes, n)
	return domain.NodeID(len(d.nodes) - 1)
}

func (d *Document) get(id domain.NodeID) *node {
	if id < 0 || int(id) >= len(d.nodes) || !d.nodes[id].live {
		return nil
	}
	return &d.nodes[id]
}

func (d *Document) kill(id domain.NodeID) {
	if n := d.get(id); n != nil {
		n.live = false
		n.children = nil
	}
}

// Value returns the document as a plain value tree.
func (d *Document) Value() []domain.Node {
	root := d.nodes[d.root]
	out := make([]domain.Node, 0, len(root.children))
	for _, c := range root.children {
		out = append(out, d.value(c))
	}
	return out
}

func (d *Document) value(id domain.NodeID) domain.Node {
	n := d.nodes[id]
	if n.isText() {
		return domain.Node{Text: n.text, Marks: n.marks}
	}
	v := domain.Node{Kind: n.kind, Children: make([]domain.Node, 0, len(n.children))}
	for _, c := range n.children {
		v.Children = append(v.Children, d.value(c))
	}
	return v
}

// Leaves returns every text run handle in document order.
func (d *Document) Leaves() []domain.NodeID {
	var out []domain.NodeID
	var walk func(id domain.NodeID)
	walk = func(id domain.NodeID) {
		n := &d.nodes[id]
		if n.isText() {
			out = append(out, id)
			return
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(d.root)
	return out
}

// LeafText returns the text of a run, or "" for unknown handles.
func (d *Document) LeafText(id domain.NodeID) string {
	if n := d.get(id); n != nil && n.isText() {
		return n.text
	}
	return ""
}

// LeafLen returns the length of a run in grapheme clusters, the unit of Point offsets.
func (d *Document) LeafLen(id domain.NodeID) int {
	return textLen(d.LeafText(id))
}

// LeafMarks returns the marks of a run.
func (d *Document) LeafMarks(id domain.NodeID) domain.MarkSet {
	if n := d.get(id); n != nil && n.isText() {
		return n.marks
	}
	return 0
}

// Kind returns the kind of a block handle, or "" for text runs and unknown handles.
func (d *Document) Kind(id domain.NodeID) domain.BlockKind {
	if n := d.get(id); n != nil && id != d.root {
		return n.kind
	}
	return ""
}

// Blocks returns the top-level block handles.
func (d *Document) Blocks() []domain.NodeID {
	return append([]domain.NodeID(nil), d.nodes[d.root].children...)
}

// Parent returns the parent handle, or NoNode for top-level blocks and unknown handles.
func (d *Document) Parent(id domain.NodeID) domain.NodeID {
	n := d.get(id)
	if n == nil || n.parent == d.root {
		return domain.NoNode
	}
	return n.parent
}

func (d *Document) indexOf(parent, child domain.NodeID) int {
	for i, c := range d.nodes[parent].children {
		if c == child {
			return i
		}
	}
	return -1
}

// ancestors returns the block ancestors of id from the outermost down, excluding the root.
func (d *Document) ancestors(id domain.NodeID) []domain.NodeID {
	var chain []domain.NodeID
	for p := d.nodes[id].parent; p != domain.NoNode && p != d.root; p = d.nodes[p].parent {
		chain = append(chain, p)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

func (d *Document) contains(ancestor, id domain.NodeID) bool {
	for p := id; p != domain.NoNode; p = d.nodes[p].parent {
		if p == ancestor {
			return true
		}
	}
	return false
}
