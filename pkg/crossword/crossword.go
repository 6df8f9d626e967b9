// Package crossword pairs a set of word placements with the grid they
// produce.
package crossword

import (
	"strconv"
	"strings"

	"github.com/crossplay/crossgen/pkg/cellgrid"
	"github.com/crossplay/crossgen/pkg/layout"
)

// WordPlacements holds one optional Position per word in the fixed
// input list, indexed the same way. A nil entry means that word has
// not been placed yet.
type WordPlacements []*layout.Position

// Clone returns a copy whose backing array is independent of the
// receiver, so a search branch can extend it without mutating a
// sibling branch's placements.
func (wp WordPlacements) Clone() WordPlacements {
	out := make(WordPlacements, len(wp))
	copy(out, wp)
	return out
}

// Key returns a stable string encoding of the placements, used as the
// dedup set's map key. Two WordPlacements produce the same key iff
// every word is placed at the same position (or left unplaced) in
// both.
func (wp WordPlacements) Key() string {
	var b strings.Builder
	for _, p := range wp {
		if p == nil {
			b.WriteString("-;")
			continue
		}
		b.WriteString(strconv.Itoa(p.Row))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(p.Col))
		b.WriteByte(',')
		b.WriteString(p.Dir.String())
		b.WriteByte(';')
	}
	return b.String()
}

// PlacedCount returns how many words currently have a position.
func (wp WordPlacements) PlacedCount() int {
	n := 0
	for _, p := range wp {
		if p != nil {
			n++
		}
	}
	return n
}

// Crossword is a fully or partially imposed layout: the placements
// that produced it, the grid they impose, and the running overlap
// count spec.md §3 tracks alongside the grid.
type Crossword struct {
	Words      []string
	Placements WordPlacements
	Grid       *cellgrid.Grid
	Overlaps   int
}

// Seed constructs the initial crossword: word 0 placed horizontally at
// the origin, every other word unplaced.
func Seed(words []string) Crossword {
	placements := make(WordPlacements, len(words))
	pos := layout.Position{Row: 0, Col: 0, Dir: layout.Horizontal}
	placements[0] = &pos

	return Crossword{
		Words:      words,
		Placements: placements,
		Grid:       cellgrid.Seed(pos, []rune(words[0])),
	}
}

// Complete reports whether every word in Words has been placed.
func (cw Crossword) Complete() bool {
	return cw.Placements.PlacedCount() == len(cw.Words)
}

// Letters delegates to the grid's placed-letter list, the anchor sites
// the enumerator crosses new words through.
func (cw Crossword) Letters() []cellgrid.PlacedLetter {
	return cw.Grid.Letters
}

// BoundingBox is the tight rectangle spanning every placed letter —
// the grid's box contracted by one, per the grid's invariant that its
// box always sits exactly one ring past the outermost letter.
func (cw Crossword) BoundingBox() layout.BoundingBox {
	return cw.Grid.LetterBox()
}

// Key delegates to Placements.Key — the crossword's identity for
// dedup purposes is entirely determined by where its words landed.
func (cw Crossword) Key() string {
	return cw.Placements.Key()
}

// WithWord returns a new Crossword with wordIdx placed at pos,
// assuming the caller has already confirmed the placement is legal
// via cw.Grid.CanAddWord.
func (cw Crossword) WithWord(wordIdx int, pos layout.Position, overlaps int) Crossword {
	placements := cw.Placements.Clone()
	p := pos
	placements[wordIdx] = &p

	return Crossword{
		Words:      cw.Words,
		Placements: placements,
		Grid:       cw.Grid.AddWord(pos, []rune(cw.Words[wordIdx])),
		Overlaps:   cw.Overlaps + overlaps,
	}
}
