package document_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/arthUFO12/CivicProject/internal/document"
)

var _ = Describe("MatchFont", func() {
	original := document.Block{
		ID:   "block-1",
		Type: document.TypeHeading2,
		Children: []document.Leaf{
			{Text: "Hello ", Bold: true},
			{Text: "cruel", Italic: true},
			{Text: " world", Underline: true, Sentiment: true},
		},
	}

	It("keeps each run's flags over a same-length replacement", func() {
		out := document.MatchFont(original, "Howdy kind! world")

		Expect(out.Type).To(Equal(document.TypeHeading2))
		Expect(out.ID).To(BeEmpty())
		Expect(out.Children).To(Equal([]document.Leaf{
			{Text: "Howdy ", Bold: true},
			{Text: "kind!", Italic: true},
			{Text: " world", Underline: true},
		}))
	})

	It("gives the last run everything past the earlier runs", func() {
		out := document.MatchFont(original, "Hi there, you lovely little world")
		Expect(out.Children).To(HaveLen(3))
		Expect(out.Children[0].Text).To(Equal("Hi the"))
		Expect(out.Children[1].Text).To(Equal("re, y"))
		Expect(out.Children[2].Text).To(Equal("ou lovely little world"))
	})

	It("preserves flags over the prefix of a shorter replacement", func() {
		out := document.MatchFont(original, "Good day")
		Expect(out.Children).To(Equal([]document.Leaf{
			{Text: "Good d", Bold: true},
			{Text: "ay", Italic: true},
		}))
	})

	It("emits an empty trailing run when the text ends exactly at a boundary", func() {
		out := document.MatchFont(original, "abcdefghijk")
		Expect(out.Children).To(HaveLen(3))
		Expect(out.Children[2].Text).To(BeEmpty())
		Expect(out.Children[2].Underline).To(BeTrue())
	})

	It("counts runes rather than bytes", func() {
		block := document.Block{Type: "p", Children: []document.Leaf{
			{Text: "ab", Bold: true},
			{Text: "cd"},
		}}
		out := document.MatchFont(block, "héllo")
		Expect(out.Children[0].Text).To(Equal("hé"))
		Expect(out.Children[1].Text).To(Equal("llo"))
	})

	It("puts all text in a single-run block", func() {
		block := document.Block{Type: "p", Children: []document.Leaf{{Text: "x", Italic: true}}}
		out := document.MatchFont(block, "much longer text")
		Expect(out.Children).To(Equal([]document.Leaf{{Text: "much longer text", Italic: true}}))
	})
})

var _ = Describe("MarkSentiment", func() {
	It("marks every leaf of an unmarked block", func() {
		block := para("so ", "happy")
		out, changed := document.MarkSentiment(block)
		Expect(changed).To(BeTrue())
		for _, leaf := range out.Children {
			Expect(leaf.Sentiment).To(BeTrue())
		}
		Expect(block.Children[0].Sentiment).To(BeFalse())
	})

	It("leaves an already marked block alone", func() {
		block := document.Block{Type: "p", Children: []document.Leaf{{Text: "happy", Sentiment: true}, {Text: " more"}}}
		out, changed := document.MarkSentiment(block)
		Expect(changed).To(BeFalse())
		Expect(out).To(Equal(block))
	})
})
