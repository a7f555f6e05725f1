/*
Package inkwell is a rich-text formatting core: a parallel state machine that
keeps toolbar state (bold, italic, underline, quote, code, list layout, heading)
consistent with a block/run document.

It separates the format machine (which regions exist and how commands move
them) from the document mutation layer (how a toggle rewrites runs and blocks).
Every region value is derived from the document at the selection, so what the
toolbar shows always matches what a query of the text would answer.

# Concept

The machine is a set of orthogonal regions. Five are binary (active/inactive);
two are exclusive choices: layout (paragraph, numbered, bulleted) and heading
(none, heading1, heading2). A command is broadcast to every region, and each
region that handles it takes its transition and runs the bound actions. Those
actions are the toggles of pkg/format, applied at the editor's selection.

Toggling a block always unwraps list containers, then sets the block kind,
then wraps the result, so numbered and bulleted lists never nest.

# Usage

	ed, err := inkwell.New()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	if _, err := ed.SelectText(ctx, "rich"); err != nil {
		log.Fatal(err)
	}
	snap := ed.Dispatch(ctx, domain.CmdToggleBold)
	fmt.Println(snap[domain.RegionBold]) // inactive

For a line-oriented front-end see Runner; for the full-screen editor and the
tooling around it see cmd/inkwell.
*/
package inkwell
