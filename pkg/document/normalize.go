package document

import "github.com/aretw0/inkwell/pkg/domain"

// track registers the points of sel to be re-anchored by splits and merges
// until the returned release func is called.
func (d *Document) track(sel *domain.Selection) (release func()) {
	n := len(d.refs)
	d.refs = append(d.refs, &sel.Anchor, &sel.Focus)
	return func() { d.refs = d.refs[:n] }
}

// splitLeaf cuts a run after off clusters. Points past the cut move to the new
// right-hand run; a point exactly at the cut stays at the end of the left run.
// It returns the right-hand run, or NoNode when off is at either edge.
func (d *Document) splitLeaf(id domain.NodeID, off int) domain.NodeID {
	n := d.nodes[id]
	if off <= 0 || off >= textLen(n.text) {
		return domain.NoNode
	}

	left, right := splitText(n.text, off)
	rid := d.alloc(node{text: right, marks: n.marks, parent: n.parent})
	d.nodes[id].text = left

	parent := n.parent
	i := d.indexOf(parent, id)
	d.insertChildren(parent, i+1, rid)

	for _, p := range d.refs {
		if p.Leaf == id && p.Offset > off {
			p.Leaf = rid
			p.Offset -= off
		}
	}
	return rid
}

// insertChildren places ids into parent's children at index i and reparents them.
func (d *Document) insertChildren(parent domain.NodeID, i int, ids ...domain.NodeID) {
	old := d.nodes[parent].children
	children := make([]domain.NodeID, 0, len(old)+len(ids))
	children = append(children, old[:i]...)
	children = append(children, ids...)
	children = append(children, old[i:]...)
	d.nodes[parent].children = children
	for _, c := range ids {
		d.nodes[c].parent = parent
	}
}

func (d *Document) removeChild(parent, child domain.NodeID) {
	i := d.indexOf(parent, child)
	if i < 0 {
		return
	}
	children := d.nodes[parent].children
	d.nodes[parent].children = append(children[:i:i], children[i+1:]...)
}

// normalize restores the canonical shape after an edit:
// adjacent runs with equal marks are merged, empty runs are dropped when the
// block has others, childless lowest blocks get an empty run, and empty
// containers are removed.
func (d *Document) normalize() {
	d.normalizeNode(d.root)
}

func (d *Document) normalizeNode(id domain.NodeID) {
	kind := d.nodes[id].kind
	children := append([]domain.NodeID(nil), d.nodes[id].children...)

	if len(children) > 0 && d.nodes[children[0]].isText() {
		d.normalizeRuns(id)
		return
	}

	for _, c := range children {
		d.normalizeNode(c)
	}

	if id == d.root {
		return
	}
	if len(d.nodes[id].children) == 0 {
		if kind.IsList() {
			d.removeChild(d.nodes[id].parent, id)
			d.kill(id)
			return
		}
		leaf := d.alloc(node{parent: id})
		d.nodes[id].children = []domain.NodeID{leaf}
	}
}

func (d *Document) normalizeRuns(block domain.NodeID) {
	children := d.nodes[block].children
	merged := make([]domain.NodeID, 0, len(children))

	for _, c := range children {
		if len(merged) == 0 {
			merged = append(merged, c)
			continue
		}
		prev := merged[len(merged)-1]
		switch {
		case d.nodes[c].text == "":
			d.moveRefs(c, prev, textLen(d.nodes[prev].text))
			d.kill(c)
		case d.nodes[prev].text == "":
			d.moveRefs(prev, c, 0)
			d.kill(prev)
			merged[len(merged)-1] = c
		case d.nodes[prev].marks == d.nodes[c].marks:
			d.moveRefs(c, prev, textLen(d.nodes[prev].text))
			d.nodes[prev].text += d.nodes[c].text
			d.kill(c)
		default:
			merged = append(merged, c)
		}
	}
	d.nodes[block].children = merged
}

// moveRefs re-anchors every tracked point in from onto to, shifted by delta.
func (d *Document) moveRefs(from, to domain.NodeID, delta int) {
	for _, p := range d.refs {
		if p.Leaf == from {
			p.Leaf = to
			p.Offset += delta
		}
	}
	if d.pendingAt != nil && d.pendingAt.Leaf == from {
		d.pendingAt.Leaf = to
		d.pendingAt.Offset += delta
	}
}
