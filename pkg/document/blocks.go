package document

import (
	"fmt"
	"slices"

	"github.com/aretw0/inkwell/pkg/domain"
)

// EnclosingBlockKinds returns the kinds of every block containing or inside sel,
// outer blocks first, without duplicates.
func (d *Document) EnclosingBlockKinds(sel domain.Selection) []domain.BlockKind {
	s, ok := d.resolve(sel)
	if !ok {
		return nil
	}

	var kinds []domain.BlockKind
	add := func(k domain.BlockKind) {
		if !slices.Contains(kinds, k) {
			kinds = append(kinds, k)
		}
	}
	for _, b := range d.lowest(s) {
		for _, a := range d.ancestors(b) {
			add(d.nodes[a].kind)
		}
		add(d.nodes[b].kind)
	}
	return kinds
}

// ApplyBlockStructureChange rewrites the blocks covered by sel in three steps:
// lift them out of every ancestor whose kind is in change.Unwrap (splitting
// that ancestor at the selection edges), set their kind, then wrap them in a
// new change.WrapAs container.
func (d *Document) ApplyBlockStructureChange(sel domain.Selection, change domain.BlockChange) domain.Selection {
	s, ok := d.resolve(sel)
	if !ok {
		return sel
	}

	d.clearPending()
	release := d.track(&sel)
	defer release()

	blocks := d.lowest(s)

	if len(change.Unwrap) > 0 {
		for d.unwrapOnce(blocks, change.Unwrap) {
		}
	}

	if change.SetKind != "" {
		for _, b := range blocks {
			d.nodes[b].kind = change.SetKind
		}
	}

	if change.WrapAs != "" {
		d.wrap(blocks, change.WrapAs)
	}

	d.normalize()
	d.logger.Debug("block structure changed",
		"blocks", len(blocks),
		"unwrap", change.Unwrap,
		"set", change.SetKind,
		"wrap", change.WrapAs,
	)
	d.assert()
	return sel
}

// unwrapOnce lifts the selected blocks out of the deepest matching ancestor of
// the first block that still has one. It reports whether anything was lifted.
func (d *Document) unwrapOnce(blocks []domain.NodeID, kinds []domain.BlockKind) bool {
	for _, b := range blocks {
		chain := d.ancestors(b)
		for i := len(chain) - 1; i >= 0; i-- {
			if slices.Contains(kinds, d.nodes[chain[i]].kind) {
				d.lift(chain[i], blocks)
				return true
			}
		}
	}
	return false
}

// lift moves the children of container that hold any of blocks up into the
// container's parent, splitting the container into a before and an after part.
func (d *Document) lift(container domain.NodeID, blocks []domain.NodeID) {
	children := slices.Clone(d.nodes[container].children)
	first, last := -1, -1
	for i, c := range children {
		for _, b := range blocks {
			if d.contains(c, b) {
				if first < 0 {
					first = i
				}
				last = i
				break
			}
		}
	}
	if first < 0 {
		return
	}

	before := slices.Clone(children[:first])
	mid := children[first : last+1]
	after := slices.Clone(children[last+1:])

	parent := d.nodes[container].parent
	at := d.indexOf(parent, container)

	var replacement []domain.NodeID
	if len(before) > 0 {
		d.nodes[container].children = before
		replacement = append(replacement, container)
	}
	replacement = append(replacement, mid...)
	if len(after) > 0 {
		tail := d.alloc(node{kind: d.nodes[container].kind, parent: parent})
		d.nodes[tail].children = after
		for _, c := range after {
			d.nodes[c].parent = tail
		}
		replacement = append(replacement, tail)
	}

	d.removeChild(parent, container)
	d.insertChildren(parent, at, replacement...)
	if len(before) == 0 {
		d.kill(container)
	}
}

// wrap groups blocks by parent and wraps each group's sibling range in a new
// container of the given kind.
func (d *Document) wrap(blocks []domain.NodeID, kind domain.BlockKind) {
	type group struct {
		parent      domain.NodeID
		first, last int
	}
	var groups []group
	for _, b := range blocks {
		p := d.nodes[b].parent
		i := d.indexOf(p, b)
		if n := len(groups); n > 0 && groups[n-1].parent == p {
			groups[n-1].first = min(groups[n-1].first, i)
			groups[n-1].last = max(groups[n-1].last, i)
			continue
		}
		groups = append(groups, group{parent: p, first: i, last: i})
	}

	// Wrap from the back so earlier indexes stay valid when groups share a parent.
	for gi := len(groups) - 1; gi >= 0; gi-- {
		g := groups[gi]
		old := d.nodes[g.parent].children
		wrapped := append([]domain.NodeID(nil), old[g.first:g.last+1]...)

		w := d.alloc(node{kind: kind, parent: g.parent})
		d.nodes[w].children = wrapped
		for _, c := range wrapped {
			d.nodes[c].parent = w
		}

		children := make([]domain.NodeID, 0, len(old)-len(wrapped)+1)
		children = append(children, old[:g.first]...)
		children = append(children, w)
		children = append(children, old[g.last+1:]...)
		d.nodes[g.parent].children = children
	}
}

// assert panics in strict mode when an edit broke a structural invariant.
// Reaching it means the unwrap/set/wrap ordering was not honoured.
func (d *Document) assert() {
	err := d.Check()
	if err == nil {
		return
	}
	d.logger.Error("document invariant violated", "err", err)
	if d.strict {
		panic(fmt.Sprintf("document: invariant violated: %v", err))
	}
}
