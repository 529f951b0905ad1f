package document_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/arthUFO12/CivicProject/internal/document"
)

var _ = Describe("Document", func() {
	Describe("JSON shape", func() {
		It("decodes an editor value and omits false flags when encoding", func() {
			raw := `[{"id":"abc","type":"p","children":[{"text":"hi ","bold":true},{"text":"there"}]}]`

			var doc document.Document
			Expect(json.Unmarshal([]byte(raw), &doc)).To(Succeed())
			Expect(doc).To(HaveLen(1))
			Expect(doc[0].ID).To(Equal("abc"))
			Expect(doc[0].Children[0].Bold).To(BeTrue())
			Expect(doc[0].Children[1].Bold).To(BeFalse())

			out, err := json.Marshal(doc.StripIDs())
			Expect(err).NotTo(HaveOccurred())
			Expect(string(out)).To(Equal(`[{"type":"p","children":[{"text":"hi ","bold":true},{"text":"there"}]}]`))
		})
	})

	Describe("Initial", func() {
		It("is a single empty paragraph", func() {
			doc := document.Initial()
			Expect(doc).To(HaveLen(1))
			Expect(doc[0].Type).To(Equal(document.TypeParagraph))
			Expect(doc[0].Children).To(Equal([]document.Leaf{{Text: ""}}))
			Expect(doc.Validate()).To(Succeed())
		})
	})

	DescribeTable("Validate",
		func(doc document.Document, valid bool) {
			err := doc.Validate()
			if valid {
				Expect(err).NotTo(HaveOccurred())
			} else {
				Expect(err).To(MatchError(document.ErrInvalidDocument))
			}
		},
		Entry("empty document", document.Document{}, false),
		Entry("block without type", document.Document{{Children: []document.Leaf{{Text: "a"}}}}, false),
		Entry("block without children", document.Document{{Type: "p"}}, false),
		Entry("well formed", document.Document{{Type: "h1", Children: []document.Leaf{{Text: "a"}}}}, true),
	)

	Describe("StripIDs", func() {
		It("does not mutate the original", func() {
			doc := document.Document{{ID: "x", Type: "p", Children: []document.Leaf{{Text: "a"}}}}
			stripped := doc.StripIDs()
			Expect(stripped[0].ID).To(BeEmpty())
			Expect(doc[0].ID).To(Equal("x"))
		})
	})

	Describe("PlainText", func() {
		It("joins every leaf", func() {
			b := document.Block{Type: "p", Children: []document.Leaf{{Text: "one "}, {Text: "two", Bold: true}}}
			Expect(b.PlainText()).To(Equal("one two"))
		})
	})
})
