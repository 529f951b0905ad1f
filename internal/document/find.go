package document

import "strings"

// Match is a block whose leaf contained the searched text.
type Match struct {
	Block    Block
	Position int
}

// FindWord scans every leaf of every block for match. A block is reported once
// per matching leaf, so a block with two matching leaves appears twice.
func FindWord(doc Document, match string) []Match {
	var matches []Match
	for i, block := range doc {
		for _, leaf := range block.Children {
			if strings.Contains(leaf.Text, match) {
				matches = append(matches, Match{Block: block, Position: i})
			}
		}
	}
	return matches
}

// Find calls fn for every match in document order and stops at the first error.
func Find(doc Document, match string, fn func(block Block, position int) error) error {
	for _, m := range FindWord(doc, match) {
		if err := fn(m.Block, m.Position); err != nil {
			return err
		}
	}
	return nil
}

// Positions returns the distinct block positions of matches, in order.
func Positions(matches []Match) []int {
	seen := make(map[int]struct{}, len(matches))
	positions := make([]int, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m.Position]; ok {
			continue
		}
		seen[m.Position] = struct{}{}
		positions = append(positions, m.Position)
	}
	return positions
}
