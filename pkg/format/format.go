package format

import (
	"slices"

	"github.com/aretw0/inkwell/pkg/domain"
	"github.com/aretw0/inkwell/pkg/ports"
)

// IsMarkActive reports whether every run contributing to sel carries mark.
// It is false when no run contributes.
func IsMarkActive(q ports.Querier, sel domain.Selection, mark domain.Mark) bool {
	marks, ok := q.ActiveMarks(sel)
	return ok && marks.Has(mark)
}

// IsBlockActive reports whether a block of the given kind contains or lies inside sel.
func IsBlockActive(q ports.Querier, sel domain.Selection, kind domain.BlockKind) bool {
	return slices.Contains(q.EnclosingBlockKinds(sel), kind)
}

// ToggleMark clears mark on the selection when it is active and sets it otherwise.
func ToggleMark(sub ports.Substrate, sel domain.Selection, mark domain.Mark) domain.Selection {
	active := IsMarkActive(sub, sel, mark)
	return sub.ApplyMarkDelta(sel, mark, !active)
}

// ToggleBlock switches the blocks in sel to kind, or back to a paragraph when
// kind is already active. List kinds wrap list items in a new container.
func ToggleBlock(sub ports.Substrate, sel domain.Selection, kind domain.BlockKind) domain.Selection {
	active := IsBlockActive(sub, sel, kind)
	isList := kind.IsList()

	change := domain.BlockChange{Unwrap: domain.ListKinds}
	switch {
	case active:
		change.SetKind = domain.KindParagraph
	case isList:
		change.SetKind = domain.KindListItem
	default:
		change.SetKind = kind
	}
	if !active && isList {
		change.WrapAs = kind
	}
	return sub.ApplyBlockStructureChange(sel, change)
}

// Project derives the value of every region from document truth at sel.
func Project(q ports.Querier, sel domain.Selection) domain.Snapshot {
	marks, ok := q.ActiveMarks(sel)
	kinds := q.EnclosingBlockKinds(sel)

	binary := func(on bool) domain.StateValue {
		if on {
			return domain.StateActive
		}
		return domain.StateInactive
	}

	snap := domain.Snapshot{
		domain.RegionBold:      binary(ok && marks.Has(domain.MarkBold)),
		domain.RegionItalic:    binary(ok && marks.Has(domain.MarkItalic)),
		domain.RegionUnderline: binary(ok && marks.Has(domain.MarkUnderline)),
		domain.RegionCode:      binary(ok && marks.Has(domain.MarkCode)),
		domain.RegionQuote:     binary(slices.Contains(kinds, domain.KindQuote)),
		domain.RegionLayout:    domain.StateParagraph,
		domain.RegionHeading:   domain.StateNone,
	}

	switch {
	case slices.Contains(kinds, domain.KindNumberedList):
		snap[domain.RegionLayout] = domain.StateNumbered
	case slices.Contains(kinds, domain.KindBulletedList):
		snap[domain.RegionLayout] = domain.StateBulleted
	}
	switch {
	case slices.Contains(kinds, domain.KindHeading1):
		snap[domain.RegionHeading] = domain.StateHeading1
	case slices.Contains(kinds, domain.KindHeading2):
		snap[domain.RegionHeading] = domain.StateHeading2
	}
	return snap
}
