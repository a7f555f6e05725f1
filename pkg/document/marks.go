package document

import "github.com/aretw0/inkwell/pkg/domain"

// ActiveMarks returns the marks shared by every run contributing to sel.
// On a caret, pending marks win over the marks of the run under the caret.
func (d *Document) ActiveMarks(sel domain.Selection) (domain.MarkSet, bool) {
	s, ok := d.resolve(sel)
	if !ok {
		return 0, false
	}

	if sel.IsCollapsed() {
		if d.pendingAt != nil && *d.pendingAt == sel.Anchor {
			return d.pending, true
		}
		return d.nodes[sel.Anchor.Leaf].marks, true
	}

	runs := d.covered(s)
	if len(runs) == 0 {
		return 0, false
	}
	marks := d.nodes[runs[0]].marks
	for _, id := range runs[1:] {
		marks = marks.Intersect(d.nodes[id].marks)
	}
	return marks, true
}

// ApplyMarkDelta sets or clears mark on every run covered by sel, splitting runs
// at the selection edges. On a caret it updates the pending marks instead.
func (d *Document) ApplyMarkDelta(sel domain.Selection, mark domain.Mark, value bool) domain.Selection {
	s, ok := d.resolve(sel)
	if !ok {
		return sel
	}

	if sel.IsCollapsed() {
		base := d.nodes[sel.Anchor.Leaf].marks
		if d.pendingAt != nil && *d.pendingAt == sel.Anchor {
			base = d.pending
		}
		at := sel.Anchor
		d.pending = base.Set(mark, value)
		d.pendingAt = &at
		return sel
	}

	d.clearPending()
	release := d.track(&sel)
	defer release()

	d.splitLeaf(s.end.Leaf, s.end.Offset)
	if s, ok = d.resolve(sel); !ok {
		return sel
	}
	d.splitLeaf(s.start.Leaf, s.start.Offset)
	if s, ok = d.resolve(sel); !ok {
		return sel
	}

	runs := d.covered(s)
	for _, id := range runs {
		d.nodes[id].marks = d.nodes[id].marks.Set(mark, value)
	}
	d.normalize()

	d.logger.Debug("mark delta applied", "mark", mark, "value", value, "runs", len(runs))
	return sel
}

// InsertText inserts text at the start of sel using the pending marks, if any,
// and returns a caret after the inserted text. Deleting selected content is not
// supported; an expanded selection inserts at its start.
func (d *Document) InsertText(sel domain.Selection, text string) domain.Selection {
	s, ok := d.resolve(sel)
	if !ok || text == "" {
		return sel
	}

	at := s.start
	marks := d.nodes[at.Leaf].marks
	if d.pendingAt != nil && *d.pendingAt == at {
		marks = d.pending
	}
	d.clearPending()

	caret := domain.Caret(at)
	release := d.track(&caret)
	defer release()

	if marks == d.nodes[at.Leaf].marks {
		left, right := splitText(d.nodes[at.Leaf].text, at.Offset)
		d.nodes[at.Leaf].text = left + text + right
		caret = domain.Caret(domain.Point{Leaf: at.Leaf, Offset: at.Offset + textLen(text)})
	} else {
		leaf := at.Leaf
		parent := d.nodes[leaf].parent
		idx := d.indexOf(parent, leaf)
		switch {
		case at.Offset == 0:
		case at.Offset >= textLen(d.nodes[leaf].text):
			idx++
		default:
			d.splitLeaf(leaf, at.Offset)
			idx++
		}
		id := d.alloc(node{text: text, marks: marks, parent: parent})
		d.insertChildren(parent, idx, id)
		caret = domain.Caret(domain.Point{Leaf: id, Offset: textLen(text)})
	}

	d.normalize()
	return caret
}

// PendingMarks returns the marks queued on a caret, if any.
func (d *Document) PendingMarks() (domain.Point, domain.MarkSet, bool) {
	if d.pendingAt == nil {
		return domain.Point{}, 0, false
	}
	return *d.pendingAt, d.pending, true
}

// ClearPending drops marks queued on a caret. Hosts call it when the selection moves.
func (d *Document) ClearPending() {
	d.clearPending()
}

func (d *Document) clearPending() {
	d.pending = 0
	d.pendingAt = nil
}
