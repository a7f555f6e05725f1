package markup

import (
	"strconv"
	"strings"

	"github.com/aretw0/inkwell/pkg/domain"
)

// Markdown renders the value tree as CommonMark. Underline has no Markdown
// form and is emitted as inline HTML.
func Markdown(value []domain.Node) string {
	blocks := make([]string, 0, len(value))
	for _, n := range value {
		blocks = append(blocks, markdownBlock(n, ""))
	}
	return strings.Join(blocks, "\n\n") + "\n"
}

func markdownBlock(n domain.Node, indent string) string {
	switch n.Kind {
	case domain.KindHeading1:
		return indent + "# " + inline(n)
	case domain.KindHeading2:
		return indent + "## " + inline(n)
	case domain.KindQuote:
		return indent + "> " + inline(n)
	case domain.KindNumberedList, domain.KindBulletedList:
		return markdownList(n, indent)
	default:
		return indent + inline(n)
	}
}

func markdownList(list domain.Node, indent string) string {
	lines := make([]string, 0, len(list.Children))
	i := 0
	for _, item := range list.Children {
		if item.Kind.IsList() {
			lines = append(lines, markdownList(item, indent+"   "))
			continue
		}
		i++
		bullet := "- "
		if list.Kind == domain.KindNumberedList {
			bullet = strconv.Itoa(i) + ". "
		}
		lines = append(lines, indent+bullet+inline(item))
	}
	return strings.Join(lines, "\n")
}

func inline(n domain.Node) string {
	var sb strings.Builder
	for _, c := range n.Children {
		if c.IsText() {
			sb.WriteString(markdownLeaf(c.Text, c.Marks))
		}
	}
	return sb.String()
}

func markdownLeaf(text string, marks domain.MarkSet) string {
	if text == "" {
		return ""
	}
	s := text
	if marks.Has(domain.MarkCode) {
		s = "`" + s + "`"
	} else {
		s = escapeMarkdown(s)
	}
	if marks.Has(domain.MarkBold) {
		s = "**" + s + "**"
	}
	if marks.Has(domain.MarkItalic) {
		s = "_" + s + "_"
	}
	if marks.Has(domain.MarkUnderline) {
		s = "<u>" + s + "</u>"
	}
	return s
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"<", `\<`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
