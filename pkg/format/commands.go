package format

import (
	"github.com/aretw0/inkwell/pkg/domain"
	"github.com/aretw0/inkwell/pkg/ports"
)

// Target is what a command toggles in the document: a mark or a block kind.
type Target struct {
	Mark    domain.Mark
	Kind    domain.BlockKind
	IsBlock bool
}

func (t Target) String() string {
	if t.IsBlock {
		return string(t.Kind)
	}
	return t.Mark.String()
}

var commandTargets = map[domain.Command]Target{
	domain.CmdToggleBold:      {Mark: domain.MarkBold},
	domain.CmdToggleItalic:    {Mark: domain.MarkItalic},
	domain.CmdToggleUnderline: {Mark: domain.MarkUnderline},
	domain.CmdToggleCode:      {Mark: domain.MarkCode},
	domain.CmdToggleQuote:     {Kind: domain.KindQuote, IsBlock: true},
	domain.CmdSetNumbered:     {Kind: domain.KindNumberedList, IsBlock: true},
	domain.CmdSetBulleted:     {Kind: domain.KindBulletedList, IsBlock: true},
	domain.CmdSetHeading1:     {Kind: domain.KindHeading1, IsBlock: true},
	domain.CmdSetHeading2:     {Kind: domain.KindHeading2, IsBlock: true},
}

// TargetOf returns the fixed toggle target of cmd. SET_PARAGRAPH and
// CLEAR_HEADING have none: they toggle whichever kind is currently active.
func TargetOf(cmd domain.Command) (Target, bool) {
	t, ok := commandTargets[cmd]
	return t, ok
}

// Apply toggles the target of t at sel.
func (t Target) Apply(sub ports.Substrate, sel domain.Selection) domain.Selection {
	if t.IsBlock {
		return ToggleBlock(sub, sel, t.Kind)
	}
	return ToggleMark(sub, sel, t.Mark)
}
