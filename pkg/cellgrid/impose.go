package cellgrid

import "github.com/crossplay/crossgen/pkg/layout"

// Imposed pairs a cell with the site it is written to.
type Imposed struct {
	Pos  layout.Position
	Cell Cell
}

// ImposeWord returns the full ordered sequence of cells a word of the
// given runes, placed at pos, writes onto a grid: an endpoint block
// before the first letter, each letter flanked by its two perpendicular
// side-blocks, and an endpoint block after the last letter. Endpoint
// blocks carry no direction; side-blocks carry the word's own
// direction; letters carry the word's own direction until a later
// crossing collapses it to none.
func ImposeWord(pos layout.Position, word []rune) []Imposed {
	out := make([]Imposed, 0, 3*len(word)+2)

	out = append(out, Imposed{Pos: pos.LetterPos(-1), Cell: BlockCell(0, false)})

	perp := pos.Dir.Perpendicular()
	for i, ch := range word {
		lp := pos.LetterPos(i)
		out = append(out, Imposed{Pos: lp, Cell: LetterCell(ch, pos.Dir, true)})

		side := layout.Position{Row: lp.Row, Col: lp.Col, Dir: perp}
		out = append(out, Imposed{Pos: side.LetterPos(-1), Cell: BlockCell(pos.Dir, true)})
		out = append(out, Imposed{Pos: side.LetterPos(1), Cell: BlockCell(pos.Dir, true)})
	}

	out = append(out, Imposed{Pos: pos.LetterPos(len(word)), Cell: BlockCell(0, false)})
	return out
}
