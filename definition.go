package inkwell

import (
	"github.com/aretw0/inkwell/pkg/domain"
	"github.com/aretw0/inkwell/pkg/dsl"
)

// ActionLogEvent is the action that only logs the transition it is bound to.
const ActionLogEvent = "logEvent"

// MarkAction is the registered name of the action toggling m on the selection.
func MarkAction(m domain.Mark) string {
	return "toggleMark:" + m.String()
}

// BlockAction is the registered name of the action toggling kind on the selection.
func BlockAction(kind domain.BlockKind) string {
	return "toggleBlock:" + string(kind)
}

// FormatDefinition returns the format machine: five binary regions followed by
// the layout and heading choice regions.
func FormatDefinition() domain.Definition {
	b := dsl.New("format")

	b.Toggle(domain.RegionBold, domain.CmdToggleBold).
		Do(MarkAction(domain.MarkBold)).
		OnDeactivate(ActionLogEvent)
	b.Toggle(domain.RegionItalic, domain.CmdToggleItalic).Do(MarkAction(domain.MarkItalic))
	b.Toggle(domain.RegionUnderline, domain.CmdToggleUnderline).Do(MarkAction(domain.MarkUnderline))
	b.Toggle(domain.RegionQuote, domain.CmdToggleQuote).Do(BlockAction(domain.KindQuote))
	b.Toggle(domain.RegionCode, domain.CmdToggleCode).Do(MarkAction(domain.MarkCode))

	b.Choice(domain.RegionLayout, domain.StateParagraph).
		Option(domain.StateNumbered, domain.CmdSetNumbered, BlockAction(domain.KindNumberedList)).
		Option(domain.StateBulleted, domain.CmdSetBulleted, BlockAction(domain.KindBulletedList)).
		Clear(domain.CmdSetParagraph)

	b.Choice(domain.RegionHeading, domain.StateNone).
		Option(domain.StateHeading1, domain.CmdSetHeading1, BlockAction(domain.KindHeading1)).
		Option(domain.StateHeading2, domain.CmdSetHeading2, BlockAction(domain.KindHeading2)).
		Clear(domain.CmdClearHeading)

	return b.MustBuild()
}
