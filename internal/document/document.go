// Package document models the editor's serialized value: an ordered list of
// blocks, each holding inline text leaves with boolean style flags.
package document

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDocument is returned when a value does not have a valid editor shape.
var ErrInvalidDocument = errors.New("invalid document")

// Block types produced by the editor toolbar.
const (
	TypeParagraph  = "p"
	TypeHeading1   = "h1"
	TypeHeading2   = "h2"
	TypeHeading3   = "h3"
	TypeBlockquote = "blockquote"
)

// Document is the full editor value.
type Document []Block

// Block is a top-level editor node.
type Block struct {
	ID       string `json:"id,omitempty"`
	Type     string `json:"type"`
	Children []Leaf `json:"children"`
}

// Leaf is a run of text sharing one set of marks.
type Leaf struct {
	Text      string `json:"text"`
	Bold      bool   `json:"bold,omitempty"`
	Italic    bool   `json:"italic,omitempty"`
	Underline bool   `json:"underline,omitempty"`
	Sentiment bool   `json:"sentiment,omitempty"`
}

// Initial returns the value a fresh editor starts with.
func Initial() Document {
	return Document{
		{Type: TypeParagraph, Children: []Leaf{{Text: ""}}},
	}
}

func (d Document) Validate() error {
	if len(d) == 0 {
		return fmt.Errorf("%w: no blocks", ErrInvalidDocument)
	}
	for i, b := range d {
		if b.Type == "" {
			return fmt.Errorf("%w: block %d has no type", ErrInvalidDocument, i)
		}
		if len(b.Children) == 0 {
			return fmt.Errorf("%w: block %d has no children", ErrInvalidDocument, i)
		}
	}
	return nil
}

// StripIDs returns a copy of the document without block ids.
// Restored values are re-inserted without ids so the editor assigns fresh ones.
func (d Document) StripIDs() Document {
	out := d.Clone()
	for i := range out {
		out[i].ID = ""
	}
	return out
}

func (d Document) Clone() Document {
	out := make(Document, len(d))
	for i, b := range d {
		out[i] = b.Clone()
	}
	return out
}

func (b Block) Clone() Block {
	children := make([]Leaf, len(b.Children))
	copy(children, b.Children)
	b.Children = children
	return b
}

// PlainText joins the text of every leaf in the block.
func (b Block) PlainText() string {
	var sb strings.Builder
	for _, leaf := range b.Children {
		sb.WriteString(leaf.Text)
	}
	return sb.String()
}
