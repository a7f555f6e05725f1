package document

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/inkwell/pkg/domain"
	"github.com/rivo/uniseg"
)

// textLen counts grapheme clusters.
func textLen(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// splitText cuts s after k grapheme clusters.
func splitText(s string, k int) (string, string) {
	rest := s
	state := -1
	for i := 0; i < k && rest != ""; i++ {
		_, rest, _, state = uniseg.StepString(rest, state)
	}
	return s[:len(s)-len(rest)], rest
}

// clusterOffset converts a byte offset in s into a grapheme offset.
func clusterOffset(s string, b int) int {
	return textLen(s[:b])
}

// span is a resolved, ordered selection.
type span struct {
	start, end domain.Point
	leaves     []domain.NodeID // leaves from start.Leaf to end.Leaf inclusive
}

func (d *Document) validPoint(p domain.Point) bool {
	n := d.get(p.Leaf)
	return n != nil && n.isText() && p.Offset >= 0 && p.Offset <= textLen(n.text)
}

// resolve orders the selection in document order. ok is false when either point
// does not address a live text run.
func (d *Document) resolve(sel domain.Selection) (span, bool) {
	if !d.validPoint(sel.Anchor) || !d.validPoint(sel.Focus) {
		return span{}, false
	}

	leaves := d.Leaves()
	ai, fi := -1, -1
	for i, id := range leaves {
		if id == sel.Anchor.Leaf {
			ai = i
		}
		if id == sel.Focus.Leaf {
			fi = i
		}
	}
	if ai < 0 || fi < 0 {
		return span{}, false
	}

	start, end := sel.Anchor, sel.Focus
	if fi < ai || (fi == ai && sel.Focus.Offset < sel.Anchor.Offset) {
		start, end = end, start
		ai, fi = fi, ai
	}
	return span{start: start, end: end, leaves: leaves[ai : fi+1]}, true
}

// covered returns the runs that contribute at least one character to the span.
func (d *Document) covered(s span) []domain.NodeID {
	var out []domain.NodeID
	for _, id := range s.leaves {
		lo, hi := 0, textLen(d.nodes[id].text)
		if id == s.start.Leaf {
			lo = s.start.Offset
		}
		if id == s.end.Leaf {
			hi = s.end.Offset
		}
		if hi > lo {
			out = append(out, id)
		}
	}
	return out
}

// lowest returns the blocks directly holding the span's runs, in document order.
func (d *Document) lowest(s span) []domain.NodeID {
	var out []domain.NodeID
	seen := make(map[domain.NodeID]bool)
	for _, id := range s.leaves {
		p := d.nodes[id].parent
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

// PathOf returns the child-index path from the root to id.
func (d *Document) PathOf(id domain.NodeID) []int {
	if d.get(id) == nil {
		return nil
	}
	var path []int
	for c := id; c != d.root; c = d.nodes[c].parent {
		path = append(path, d.indexOf(d.nodes[c].parent, c))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// NodeAt resolves a child-index path.
func (d *Document) NodeAt(path []int) (domain.NodeID, error) {
	if len(path) == 0 {
		return domain.NoNode, fmt.Errorf("%w: empty path", domain.ErrInvalidPath)
	}
	cur := d.root
	for depth, i := range path {
		children := d.nodes[cur].children
		if i < 0 || i >= len(children) {
			return domain.NoNode, fmt.Errorf("%w: index %d out of range at depth %d", domain.ErrInvalidPath, i, depth)
		}
		cur = children[i]
	}
	return cur, nil
}

// PointAt resolves a path to a text run plus an offset.
func (d *Document) PointAt(path []int, offset int) (domain.Point, error) {
	id, err := d.NodeAt(path)
	if err != nil {
		return domain.Point{}, err
	}
	if !d.nodes[id].isText() {
		return domain.Point{}, fmt.Errorf("%w: %v is a block, not a text run", domain.ErrInvalidPath, path)
	}
	p := domain.Point{Leaf: id, Offset: offset}
	if !d.validPoint(p) {
		return domain.Point{}, fmt.Errorf("%w: offset %d out of range", domain.ErrInvalidPath, offset)
	}
	return p, nil
}

// ParsePath parses a dotted path such as "0.1".
func ParsePath(s string) ([]int, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty path", domain.ErrInvalidPath)
	}
	parts := strings.Split(s, ".")
	path := make([]int, 0, len(parts))
	for _, p := range parts {
		i, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPath, s)
		}
		path = append(path, i)
	}
	return path, nil
}

// ParsePoint resolves an address of the form "<path>:<offset>", e.g. "0.1:3".
func (d *Document) ParsePoint(s string) (domain.Point, error) {
	pathPart, offPart, ok := strings.Cut(s, ":")
	if !ok {
		return domain.Point{}, fmt.Errorf("%w: %q (want path:offset)", domain.ErrInvalidPath, s)
	}
	path, err := ParsePath(pathPart)
	if err != nil {
		return domain.Point{}, err
	}
	off, err := strconv.Atoi(offPart)
	if err != nil {
		return domain.Point{}, fmt.Errorf("%w: offset %q", domain.ErrInvalidPath, offPart)
	}
	return d.PointAt(path, off)
}

// FormatPoint renders p in the form accepted by ParsePoint.
func (d *Document) FormatPoint(p domain.Point) string {
	path := d.PathOf(p.Leaf)
	parts := make([]string, len(path))
	for i, v := range path {
		parts[i] = strconv.Itoa(v)
	}
	return fmt.Sprintf("%s:%d", strings.Join(parts, "."), p.Offset)
}

// SelectNode returns a selection spanning every run below the node at path.
func (d *Document) SelectNode(path []int) (domain.Selection, error) {
	id, err := d.NodeAt(path)
	if err != nil {
		return domain.Selection{}, err
	}
	return d.selectSubtree(id), nil
}

// SelectAll returns a selection spanning the whole document.
func (d *Document) SelectAll() domain.Selection {
	return d.selectSubtree(d.root)
}

func (d *Document) selectSubtree(id domain.NodeID) domain.Selection {
	var first, last domain.NodeID = domain.NoNode, domain.NoNode
	for _, leaf := range d.Leaves() {
		if d.contains(id, leaf) {
			if first == domain.NoNode {
				first = leaf
			}
			last = leaf
		}
	}
	if first == domain.NoNode {
		return domain.Selection{}
	}
	return domain.Selection{
		Anchor: domain.Point{Leaf: first},
		Focus:  domain.Point{Leaf: last, Offset: textLen(d.nodes[last].text)},
	}
}

// FindText selects the first occurrence of needle that lies inside a single run.
func (d *Document) FindText(needle string) (domain.Selection, bool) {
	if needle == "" {
		return domain.Selection{}, false
	}
	for _, id := range d.Leaves() {
		text := d.nodes[id].text
		if i := strings.Index(text, needle); i >= 0 {
			start := clusterOffset(text, i)
			return domain.Selection{
				Anchor: domain.Point{Leaf: id, Offset: start},
				Focus:  domain.Point{Leaf: id, Offset: start + textLen(needle)},
			}, true
		}
	}
	return domain.Selection{}, false
}

// SelectedText returns the characters covered by sel.
func (d *Document) SelectedText(sel domain.Selection) string {
	s, ok := d.resolve(sel)
	if !ok {
		return ""
	}
	var b strings.Builder
	for _, id := range s.leaves {
		text := d.nodes[id].text
		if id == s.end.Leaf {
			text, _ = splitText(text, s.end.Offset)
		}
		if id == s.start.Leaf {
			_, text = splitText(text, s.start.Offset)
		}
		b.WriteString(text)
	}
	return b.String()
}
