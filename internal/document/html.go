package document

import (
	"fmt"
	"html"
	"strings"
)

// RenderHTML converts the document to an HTML fragment.
func RenderHTML(doc Document) string {
	var sb strings.Builder
	for _, block := range doc {
		sb.WriteString(renderBlock(block))
	}
	return sb.String()
}

func renderBlock(b Block) string {
	content := renderLeaves(b.Children)

	switch b.Type {
	case TypeHeading1, TypeHeading2, TypeHeading3:
		return fmt.Sprintf("<%s>%s</%s>\n", b.Type, content, b.Type)
	case TypeBlockquote:
		return fmt.Sprintf("<blockquote>%s</blockquote>\n", content)
	default:
		// Unknown block types render as paragraphs
		return fmt.Sprintf("<p>%s</p>\n", content)
	}
}

func renderLeaves(leaves []Leaf) string {
	var sb strings.Builder
	for _, leaf := range leaves {
		sb.WriteString(renderLeaf(leaf))
	}
	return sb.String()
}

// renderLeaf wraps escaped text in its marks, innermost first.
func renderLeaf(leaf Leaf) string {
	if leaf.Text == "" {
		return ""
	}

	out := html.EscapeString(leaf.Text)
	if leaf.Underline {
		out = fmt.Sprintf("<u>%s</u>", out)
	}
	if leaf.Italic {
		out = fmt.Sprintf("<em>%s</em>", out)
	}
	if leaf.Bold {
		out = fmt.Sprintf("<strong>%s</strong>", out)
	}
	if leaf.Sentiment {
		out = fmt.Sprintf(`<mark class="sentiment">%s</mark>`, out)
	}
	return out
}
