package crossword

import (
	"testing"

	"github.com/crossplay/crossgen/pkg/cellgrid"
	"github.com/crossplay/crossgen/pkg/layout"
)

func TestWordPlacements_KeyDistinguishesPositions(t *testing.T) {
	a := make(WordPlacements, 2)
	p := layout.Position{Row: 0, Col: 0, Dir: layout.Horizontal}
	a[0] = &p

	b := a.Clone()
	q := layout.Position{Row: 1, Col: 0, Dir: layout.Horizontal}
	b[0] = &q

	if a.Key() == b.Key() {
		t.Errorf("Key() collided for distinct placements: %q", a.Key())
	}
}

func TestWordPlacements_CloneIsIndependent(t *testing.T) {
	a := make(WordPlacements, 1)
	b := a.Clone()
	p := layout.Position{Row: 0, Col: 0, Dir: layout.Horizontal}
	b[0] = &p

	if a[0] != nil {
		t.Errorf("mutating a clone affected the original")
	}
}

func TestSeed(t *testing.T) {
	cw := Seed([]string{"CAT", "CAB"})

	if cw.Placements[0] == nil || *cw.Placements[0] != (layout.Position{Row: 0, Col: 0, Dir: layout.Horizontal}) {
		t.Fatalf("Seed() placements[0] = %v, want origin horizontal", cw.Placements[0])
	}
	if cw.Placements[1] != nil {
		t.Errorf("Seed() placements[1] = %v, want unplaced", cw.Placements[1])
	}
	if len(cw.Letters()) != 3 {
		t.Errorf("len(Letters()) = %d, want 3", len(cw.Letters()))
	}
	if got, want := cw.BoundingBox(), (layout.BoundingBox{Top: 0, Left: 0, Bottom: 0, Right: 2}); got != want {
		t.Errorf("BoundingBox() = %+v, want %+v", got, want)
	}
}

func TestCrossword_WithWord(t *testing.T) {
	words := []string{"CAT", "CAB"}
	box := layout.BoundingBox{Top: -5, Left: -5, Bottom: 5, Right: 5}
	cw := Crossword{
		Words:      words,
		Placements: make(WordPlacements, len(words)),
		Grid:       cellgrid.NewGrid(box),
	}

	pos := layout.Position{Row: 0, Col: 0, Dir: layout.Horizontal}
	overlaps, ok := cw.Grid.CanAddWord(pos, []rune(words[0]))
	if !ok {
		t.Fatalf("CanAddWord() ok = false")
	}
	next := cw.WithWord(0, pos, overlaps)

	if next.Placements[0] == nil || *next.Placements[0] != pos {
		t.Errorf("WithWord() did not record the placement")
	}
	if cw.Placements[0] != nil {
		t.Errorf("WithWord() mutated the original crossword's placements")
	}
	if next.Complete() {
		t.Errorf("Complete() = true, want false (CAB is unplaced)")
	}
}
