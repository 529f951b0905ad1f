package document

// MatchFont lays rewritten over the leaves of original so that each original
// run's bold/italic/underline flags cover the corresponding slice of the new
// text. Every leaf but the last keeps its original length; the last takes
// whatever remains. Runs that start past the end of rewritten are dropped.
// Lengths are counted in runes.
func MatchFont(original Block, rewritten string) Block {
	out := Block{
		Type:     original.Type,
		Children: []Leaf{},
	}

	text := []rune(rewritten)
	place := 0

	for i, leaf := range original.Children {
		if place > len(text) {
			break
		}

		runLen := len([]rune(leaf.Text))
		length := runLen
		if i == len(original.Children)-1 {
			length = len(text) - place
		}

		end := min(place+length, len(text))
		out.Children = append(out.Children, Leaf{
			Text:      string(text[place:end]),
			Bold:      leaf.Bold,
			Italic:    leaf.Italic,
			Underline: leaf.Underline,
		})

		place += runLen
	}

	return out
}

// MarkSentiment applies the sentiment mark to every leaf of the block. A block
// whose first leaf is already marked is returned unchanged with false.
func MarkSentiment(b Block) (Block, bool) {
	if len(b.Children) == 0 || b.Children[0].Sentiment {
		return b, false
	}
	out := b.Clone()
	for i := range out.Children {
		out.Children[i].Sentiment = true
	}
	return out, true
}
