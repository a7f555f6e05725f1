package document

import (
	"errors"
	"fmt"

	"github.com/aretw0/inkwell/pkg/domain"
)

// Check verifies the structural invariants of the tree and returns every
// violation joined into one error.
//
//   - text runs only sit in lowest (non-list) blocks, which hold at least one run;
//   - list containers only hold list items or lists and are never empty;
//   - a list container never sits directly inside a list of the other kind;
//   - list items only sit in list containers;
//   - parent links agree with child lists.
func (d *Document) Check() error {
	var errs []error
	for _, c := range d.nodes[d.root].children {
		if d.nodes[c].isText() {
			errs = append(errs, fmt.Errorf("text run %d at top level", c))
		}
		d.checkNode(c, d.root, &errs)
	}
	return errors.Join(errs...)
}

func (d *Document) checkNode(id, parent domain.NodeID, errs *[]error) {
	n := &d.nodes[id]
	if !n.live {
		*errs = append(*errs, fmt.Errorf("node %d is dead but still linked", id))
		return
	}
	if n.parent != parent {
		*errs = append(*errs, fmt.Errorf("node %d: parent link %d, expected %d", id, n.parent, parent))
	}
	if n.isText() {
		return
	}

	parentKind := d.nodes[parent].kind
	switch {
	case n.kind.IsList():
		if len(n.children) == 0 {
			*errs = append(*errs, fmt.Errorf("%s %d is empty", n.kind, id))
		}
		if parentKind.IsList() && parentKind != n.kind {
			*errs = append(*errs, fmt.Errorf("%s %d nested directly in %s", n.kind, id, parentKind))
		}
		for _, c := range n.children {
			ck := d.nodes[c].kind
			if ck != domain.KindListItem && !ck.IsList() {
				*errs = append(*errs, fmt.Errorf("%s %d holds %q child %d", n.kind, id, ck, c))
			}
		}
	default:
		if len(n.children) == 0 {
			*errs = append(*errs, fmt.Errorf("%s %d has no text runs", n.kind, id))
		}
		for _, c := range n.children {
			if !d.nodes[c].isText() {
				*errs = append(*errs, fmt.Errorf("%s %d holds block child %d", n.kind, id, c))
			}
		}
		if n.kind == domain.KindListItem && !parentKind.IsList() {
			*errs = append(*errs, fmt.Errorf("list-item %d outside of a list", id))
		}
	}

	for _, c := range n.children {
		d.checkNode(c, id, errs)
	}
}
