/*
Package document implements an in-memory editing substrate for the formatting core.

Nodes live in an arena and refer to each other through integer handles
(domain.NodeID), so splitting and merging runs never invalidates handles held
elsewhere. Selections are pairs of (leaf, offset) points; offsets count grapheme
clusters, not bytes.

The Document satisfies ports.Substrate (query + mutation contracts) and
ports.Inspector (read-only traversal). It is owned by a single editing session and
is not safe for concurrent use.

# Usage

	doc, err := document.New(document.DemoValue())
	if err != nil {
		log.Fatal(err)
	}

	sel, _ := doc.FindText("rich")
	marks, _ := doc.ActiveMarks(sel)
	fmt.Println(marks.Has(domain.MarkBold)) // true
*/
package document
