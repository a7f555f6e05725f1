/*
Package dsl provides a fluent builder for parallel-region format machines.

A machine is a set of independent regions. Toggle regions flip between
"inactive" and "active" on a single command. Choice regions hold one value
out of a closed enumeration: sending the command of the active value routes
back to the default, sending another option's command jumps straight to it.

# Usage

	b := dsl.New("format")

	b.Toggle(domain.RegionBold, domain.CmdToggleBold).
		Do("toggleMark:bold")

	b.Choice(domain.RegionHeading, domain.StateNone).
		Option(domain.StateHeading1, domain.CmdSetHeading1, "toggleBlock:heading-one").
		Option(domain.StateHeading2, domain.CmdSetHeading2, "toggleBlock:heading-two").
		Clear(domain.CmdClearHeading)

	def, err := b.Build()
*/
package dsl
