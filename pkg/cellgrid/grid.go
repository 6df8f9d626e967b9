package cellgrid

import "github.com/crossplay/crossgen/pkg/layout"

// Grid is a dense, rectangular crossword grid backed by a single slice
// sized to its BoundingBox. Grids are immutable from the caller's
// perspective: AddWord returns a new, possibly larger, Grid rather than
// mutating the receiver, so a search can hold a branch's grid and try
// several continuations from it without undo bookkeeping.
type Grid struct {
	Box     layout.BoundingBox
	Cells   []Cell
	Letters []PlacedLetter
}

// PlacedLetter is a single placed letter: its character and the site it
// was written at, carrying the direction of the word that wrote it. A
// true crossing produces two PlacedLetter entries at the same Row/Col
// with different Dir, one per crossing word — both remain valid anchors
// for further perpendicular extensions.
type PlacedLetter struct {
	Char rune
	Pos  layout.Position
}

// NewGrid allocates an all-Empty grid covering box.
func NewGrid(box layout.BoundingBox) *Grid {
	g := &Grid{Box: box, Cells: make([]Cell, box.Width()*box.Height())}
	for i := range g.Cells {
		g.Cells[i] = EmptyCell()
	}
	return g
}

// At returns the cell at (row, col), or Empty if that site falls
// outside the grid's current box.
func (g *Grid) At(row, col int) Cell {
	if g == nil || !g.Box.Contains(row, col) {
		return EmptyCell()
	}
	return g.Cells[g.Box.Index(row, col)]
}

func (g *Grid) set(row, col int, c Cell) {
	g.Cells[g.Box.Index(row, col)] = c
}

// CanAddWord reports whether word can be imposed at pos without
// producing a Collision anywhere, and how many new crossings it would
// create. Only a letter of word landing on a previously-placed letter
// (two orthogonal words sharing a character) counts as a crossing; a
// letter or side-block that collapses a cell to direction-none through
// the block rules does not add to the count.
func (g *Grid) CanAddWord(pos layout.Position, word []rune) (overlaps int, ok bool) {
	for _, ic := range ImposeWord(pos, word) {
		old := g.At(ic.Pos.Row, ic.Pos.Col)
		result := transition(old, ic.Cell)
		if result.Kind == Collision {
			return 0, false
		}
		if old.Kind == Letter && ic.Cell.Kind == Letter {
			overlaps++
		}
	}
	return overlaps, true
}

// AddWord imposes word at pos, growing the grid's box as needed, and
// returns the resulting grid. Callers are expected to have already
// confirmed CanAddWord; AddWord does not itself guard against
// collisions.
func (g *Grid) AddWord(pos layout.Position, word []rune) *Grid {
	wordBox := layout.WordBox(pos, len(word)).Expand()
	newBox := g.Box.Combine(wordBox)

	clone := NewGrid(newBox)
	for row := g.Box.Top; row <= g.Box.Bottom; row++ {
		for col := g.Box.Left; col <= g.Box.Right; col++ {
			clone.set(row, col, g.At(row, col))
		}
	}
	clone.Letters = append(clone.Letters, g.Letters...)

	imposed := ImposeWord(pos, word)
	for _, ic := range imposed {
		old := clone.At(ic.Pos.Row, ic.Pos.Col)
		clone.set(ic.Pos.Row, ic.Pos.Col, transition(old, ic.Cell))
	}
	for _, ic := range imposed {
		if ic.Cell.Kind == Letter {
			clone.Letters = append(clone.Letters, PlacedLetter{Char: ic.Cell.Char, Pos: ic.Pos})
		}
	}
	return clone
}

// Seed allocates a grid sized exactly to hold a single word placed at
// pos, the way the enumerator seeds word 0 at the origin.
func Seed(pos layout.Position, word []rune) *Grid {
	box := layout.WordBox(pos, len(word)).Expand()
	return NewGrid(box).AddWord(pos, word)
}

// LetterBox returns the tight rectangle spanning every letter cell,
// which by the grid's invariant is always its current Box contracted
// by one.
func (g *Grid) LetterBox() layout.BoundingBox {
	return g.Box.Contract()
}
