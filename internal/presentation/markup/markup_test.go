package markup_test

import (
	"testing"

	"github.com/aretw0/inkwell/internal/presentation/markup"
	"github.com/aretw0/inkwell/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestElementTag(t *testing.T) {
	tests := map[domain.BlockKind]string{
		domain.KindQuote:        "blockquote",
		domain.KindBulletedList: "ul",
		domain.KindHeading1:     "h1",
		domain.KindHeading2:     "h2",
		domain.KindListItem:     "li",
		domain.KindNumberedList: "ol",
		domain.KindParagraph:    "p",
		"mystery":               "p",
	}
	for kind, want := range tests {
		assert.Equal(t, want, markup.ElementTag(kind), "kind %s", kind)
	}
}

func TestLeaf(t *testing.T) {
	assert.Equal(t, "<span>plain</span>", markup.Leaf("plain", 0))
	assert.Equal(t, "<span><strong>b</strong></span>", markup.Leaf("b", domain.NewMarkSet(domain.MarkBold)))
	assert.Equal(t,
		"<span><u><em><code><strong>x</strong></code></em></u></span>",
		markup.Leaf("x", domain.NewMarkSet(domain.MarkUnderline, domain.MarkItalic, domain.MarkCode, domain.MarkBold)),
	)
	assert.Equal(t, "<span><code>&lt;textarea&gt;</code></span>", markup.Leaf("<textarea>", domain.NewMarkSet(domain.MarkCode)))
}

func TestHTML(t *testing.T) {
	value := []domain.Node{
		domain.Block(domain.KindHeading1, domain.Text("Title")),
		domain.Block(domain.KindBulletedList,
			domain.Block(domain.KindListItem, domain.Text("one")),
			domain.Block(domain.KindListItem, domain.Text("two", domain.MarkItalic)),
		),
	}

	assert.Equal(t,
		"<h1><span>Title</span></h1><ul><li><span>one</span></li><li><span><em>two</em></span></li></ul>",
		markup.HTML(value),
	)
}

func TestMarkdown(t *testing.T) {
	value := []domain.Node{
		domain.Block(domain.KindHeading2, domain.Text("Notes")),
		domain.Block(domain.KindParagraph,
			domain.Text("a "),
			domain.Text("bold", domain.MarkBold),
			domain.Text(" and "),
			domain.Text("<code>", domain.MarkCode),
			domain.Text(" 2*3"),
		),
		domain.Block(domain.KindQuote, domain.Text("quoted", domain.MarkUnderline)),
		domain.Block(domain.KindNumberedList,
			domain.Block(domain.KindListItem, domain.Text("first")),
			domain.Block(domain.KindListItem, domain.Text("second")),
		),
	}

	want := "## Notes\n\n" +
		"a **bold** and `<code>` 2\\*3\n\n" +
		"> <u>quoted</u>\n\n" +
		"1. first\n2. second\n"
	assert.Equal(t, want, markup.Markdown(value))
}
