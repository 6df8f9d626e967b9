package cellgrid

import "github.com/crossplay/crossgen/pkg/layout"

// transition computes the result of writing incoming onto old. incoming
// is always a Block or a Letter cell — the imposition sequence never
// produces Empty or Collision as something to write. This is the
// load-bearing algebra described in spec.md §4.1; every row of that
// table has a direct case below and a matching test in
// transition_test.go.
func transition(old, incoming Cell) Cell {
	switch old.Kind {
	case Empty:
		return incoming

	case Collision:
		return CollisionCell

	case Block:
		return transitionOverBlock(old, incoming)

	case Letter:
		return transitionOverLetter(old, incoming)

	default:
		panic("cellgrid: old cell has unknown kind")
	}
}

func transitionOverBlock(old, incoming Cell) Cell {
	switch incoming.Kind {
	case Block:
		if old.HasDir && incoming.HasDir && incoming.Dir == old.Dir {
			return old
		}
		return BlockCell(0, false)

	case Letter:
		return letterMeetsBlock(incoming.Char, incoming.Dir, incoming.HasDir, old.Dir, old.HasDir)

	default:
		panic("cellgrid: incoming cell is not a block or letter")
	}
}

func transitionOverLetter(old, incoming Cell) Cell {
	switch incoming.Kind {
	case Block:
		return letterMeetsBlock(old.Char, old.Dir, old.HasDir, incoming.Dir, incoming.HasDir)

	case Letter:
		if incoming.Char != old.Char {
			return CollisionCell
		}
		if old.HasDir && old.Dir != incoming.Dir {
			return LetterCell(old.Char, 0, false)
		}
		// Same direction (parallel), or old already a convergence
		// cell meeting a third placement: collision either way.
		return CollisionCell

	default:
		panic("cellgrid: incoming cell is not a block or letter")
	}
}

// letterMeetsBlock resolves a letter cell meeting a block cell,
// regardless of which one is old and which is incoming — the
// original's get_next folds both orderings into one rule. A block
// that has already collapsed to direction-none is a hard cap: nothing
// may land on it. A directed block only yields to a letter crossing
// it perpendicular to the block's own direction; parallel collides. A
// letter that has already collapsed to direction-none (an existing
// convergence cell) passes through any block unchanged.
func letterMeetsBlock(letterChar rune, letterDir layout.Direction, letterHasDir bool, blockDir layout.Direction, blockHasDir bool) Cell {
	if !letterHasDir {
		return LetterCell(letterChar, 0, false)
	}
	if blockHasDir && letterDir != blockDir {
		return LetterCell(letterChar, 0, false)
	}
	return CollisionCell
}
