package domain

import "slices"

// Command is a user-facing format command.
type Command string

const (
	CmdToggleBold      Command = "TOGGLE_BOLD"
	CmdToggleItalic    Command = "TOGGLE_ITALIC"
	CmdToggleUnderline Command = "TOGGLE_UNDERLINE"
	CmdToggleQuote     Command = "TOGGLE_QUOTE"
	CmdToggleCode      Command = "TOGGLE_CODE"
	CmdSetNumbered     Command = "SET_NUMBERED"
	CmdSetBulleted     Command = "SET_BULLETED"
	CmdSetParagraph    Command = "SET_PARAGRAPH"
	CmdSetHeading1     Command = "SET_HEADING1"
	CmdSetHeading2     Command = "SET_HEADING2"
	CmdClearHeading    Command = "CLEAR_HEADING"
)

// Commands is the closed command set.
var Commands = []Command{
	CmdToggleBold, CmdToggleItalic, CmdToggleUnderline, CmdToggleQuote, CmdToggleCode,
	CmdSetNumbered, CmdSetBulleted, CmdSetParagraph,
	CmdSetHeading1, CmdSetHeading2, CmdClearHeading,
}

// Valid reports whether c belongs to the closed command set.
func (c Command) Valid() bool {
	return slices.Contains(Commands, c)
}
