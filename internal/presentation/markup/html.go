// Package markup renders document values as HTML and Markdown.
package markup

import (
	"html"
	"strings"

	"github.com/aretw0/inkwell/pkg/domain"
)

var elementTags = map[domain.BlockKind]string{
	domain.KindQuote:        "blockquote",
	domain.KindBulletedList: "ul",
	domain.KindHeading1:     "h1",
	domain.KindHeading2:     "h2",
	domain.KindListItem:     "li",
	domain.KindNumberedList: "ol",
}

// ElementTag returns the HTML tag a block renders as. Unknown kinds render as paragraphs.
func ElementTag(kind domain.BlockKind) string {
	if tag, ok := elementTags[kind]; ok {
		return tag
	}
	return "p"
}

// leafWrappers are applied innermost first.
var leafWrappers = []struct {
	mark domain.Mark
	tag  string
}{
	{domain.MarkBold, "strong"},
	{domain.MarkCode, "code"},
	{domain.MarkItalic, "em"},
	{domain.MarkUnderline, "u"},
}

// HTML renders the value tree. Every run is wrapped in a span.
func HTML(value []domain.Node) string {
	var sb strings.Builder
	for _, n := range value {
		writeHTML(&sb, n)
	}
	return sb.String()
}

// Leaf renders a single text run.
func Leaf(text string, marks domain.MarkSet) string {
	s := html.EscapeString(text)
	for _, w := range leafWrappers {
		if marks.Has(w.mark) {
			s = "<" + w.tag + ">" + s + "</" + w.tag + ">"
		}
	}
	return "<span>" + s + "</span>"
}

func writeHTML(sb *strings.Builder, n domain.Node) {
	if n.IsText() {
		sb.WriteString(Leaf(n.Text, n.Marks))
		return
	}
	tag := ElementTag(n.Kind)
	sb.WriteString("<" + tag + ">")
	for _, c := range n.Children {
		writeHTML(sb, c)
	}
	sb.WriteString("</" + tag + ">")
}
