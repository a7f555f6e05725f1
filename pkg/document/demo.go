package document

import "github.com/aretw0/inkwell/pkg/domain"

// DemoValue returns the seed shown when no seed file is configured.
func DemoValue() []domain.Node {
	return []domain.Node{
		domain.Block(domain.KindParagraph,
			domain.Text("This is editable "),
			domain.Text("rich", domain.MarkBold),
			domain.Text(" text, "),
			domain.Text("much", domain.MarkItalic),
			domain.Text(" better than a "),
			domain.Text("<textarea>", domain.MarkCode),
			domain.Text("!"),
		),
		domain.Block(domain.KindParagraph,
			domain.Text("Since it's rich text, you can do things like turn a selection of text "),
			domain.Text("bold", domain.MarkBold),
			domain.Text(", or add a semantically rendered block quote in the middle of the page, like this:"),
		),
		domain.Block(domain.KindQuote,
			domain.Text("A wise quote."),
		),
		domain.Block(domain.KindParagraph,
			domain.Text("Try it out for yourself!"),
		),
	}
}
