package document_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/arthUFO12/CivicProject/internal/document"
)

var _ = Describe("RenderHTML", func() {
	It("renders blocks and marks", func() {
		doc := document.Document{
			{Type: document.TypeHeading1, Children: []document.Leaf{{Text: "Title"}}},
			{Type: document.TypeParagraph, Children: []document.Leaf{
				{Text: "plain "},
				{Text: "bold", Bold: true},
				{Text: " both", Bold: true, Italic: true},
			}},
			{Type: document.TypeBlockquote, Children: []document.Leaf{{Text: "happy", Sentiment: true, Underline: true}}},
		}

		Expect(document.RenderHTML(doc)).To(Equal(
			"<h1>Title</h1>\n" +
				"<p>plain <strong>bold</strong><strong><em> both</em></strong></p>\n" +
				`<blockquote><mark class="sentiment"><u>happy</u></mark></blockquote>` + "\n",
		))
	})

	It("escapes text", func() {
		doc := document.Document{{Type: "p", Children: []document.Leaf{{Text: "<script>&"}}}}
		Expect(document.RenderHTML(doc)).To(Equal("<p>&lt;script&gt;&amp;</p>\n"))
	})

	It("renders unknown block types as paragraphs", func() {
		doc := document.Document{{Type: "code", Children: []document.Leaf{{Text: "x"}}}}
		Expect(document.RenderHTML(doc)).To(Equal("<p>x</p>\n"))
	})
})
