package cellgrid

import (
	"testing"

	"github.com/crossplay/crossgen/pkg/layout"
)

func TestTransition_OverEmpty(t *testing.T) {
	block := BlockCell(layout.Horizontal, true)
	if got := transition(EmptyCell(), block); got != block {
		t.Errorf("Empty + Block = %+v, want %+v", got, block)
	}
	letter := LetterCell('A', layout.Vertical, true)
	if got := transition(EmptyCell(), letter); got != letter {
		t.Errorf("Empty + Letter = %+v, want %+v", got, letter)
	}
}

func TestTransition_OverCollision(t *testing.T) {
	if got := transition(CollisionCell, BlockCell(layout.Horizontal, true)); got.Kind != Collision {
		t.Errorf("Collision + Block = %+v, want Collision", got)
	}
}

func TestTransition_BlockOverBlock(t *testing.T) {
	tests := []struct {
		name     string
		old      Cell
		incoming Cell
		want     Cell
	}{
		{
			name:     "same direction stays",
			old:      BlockCell(layout.Horizontal, true),
			incoming: BlockCell(layout.Horizontal, true),
			want:     BlockCell(layout.Horizontal, true),
		},
		{
			name:     "different direction collapses to none",
			old:      BlockCell(layout.Horizontal, true),
			incoming: BlockCell(layout.Vertical, true),
			want:     BlockCell(0, false),
		},
		{
			name:     "incoming endpoint block collapses known direction",
			old:      BlockCell(layout.Horizontal, true),
			incoming: BlockCell(0, false),
			want:     BlockCell(0, false),
		},
		{
			name:     "direction-none block absorbs anything",
			old:      BlockCell(0, false),
			incoming: BlockCell(layout.Vertical, true),
			want:     BlockCell(0, false),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := transition(tt.old, tt.incoming); got != tt.want {
				t.Errorf("transition() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTransition_LetterOverBlock(t *testing.T) {
	tests := []struct {
		name     string
		old      Cell
		incoming Cell
		want     Cell
	}{
		{
			name:     "perpendicular letter upgrades the side-block to a crossing",
			old:      BlockCell(layout.Horizontal, true),
			incoming: LetterCell('A', layout.Vertical, true),
			want:     LetterCell('A', 0, false),
		},
		{
			name:     "parallel letter collides with a side-block",
			old:      BlockCell(layout.Horizontal, true),
			incoming: LetterCell('A', layout.Horizontal, true),
			want:     CollisionCell,
		},
		{
			name:     "letter over a direction-none block collides",
			old:      BlockCell(0, false),
			incoming: LetterCell('A', layout.Horizontal, true),
			want:     CollisionCell,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := transition(tt.old, tt.incoming); got != tt.want {
				t.Errorf("transition() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTransition_BlockOverLetter(t *testing.T) {
	tests := []struct {
		name     string
		old      Cell
		incoming Cell
		want     Cell
	}{
		{
			name:     "perpendicular side-block upgrades the letter to a crossing",
			old:      LetterCell('A', layout.Vertical, true),
			incoming: BlockCell(layout.Horizontal, true),
			want:     LetterCell('A', 0, false),
		},
		{
			name:     "parallel side-block collides",
			old:      LetterCell('A', layout.Horizontal, true),
			incoming: BlockCell(layout.Horizontal, true),
			want:     CollisionCell,
		},
		{
			name:     "direction-none block collides with a directed letter",
			old:      LetterCell('A', layout.Horizontal, true),
			incoming: BlockCell(0, false),
			want:     CollisionCell,
		},
		{
			name:     "endpoint block leaves a crossing letter alone",
			old:      LetterCell('A', 0, false),
			incoming: BlockCell(0, false),
			want:     LetterCell('A', 0, false),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := transition(tt.old, tt.incoming); got != tt.want {
				t.Errorf("transition() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTransition_LetterOverLetter(t *testing.T) {
	tests := []struct {
		name     string
		old      Cell
		incoming Cell
		want     Cell
	}{
		{
			name:     "matching char, perpendicular direction crosses",
			old:      LetterCell('A', layout.Horizontal, true),
			incoming: LetterCell('A', layout.Vertical, true),
			want:     LetterCell('A', 0, false),
		},
		{
			name:     "mismatched char collides",
			old:      LetterCell('A', layout.Horizontal, true),
			incoming: LetterCell('B', layout.Vertical, true),
			want:     CollisionCell,
		},
		{
			name:     "a third matching letter still collides with an existing crossing",
			old:      LetterCell('A', 0, false),
			incoming: LetterCell('A', layout.Horizontal, true),
			want:     CollisionCell,
		},
		{
			name:     "a third mismatched letter collides with an existing crossing",
			old:      LetterCell('A', 0, false),
			incoming: LetterCell('B', layout.Horizontal, true),
			want:     CollisionCell,
		},
		{
			name:     "same char same direction at the same cell collides",
			old:      LetterCell('A', layout.Horizontal, true),
			incoming: LetterCell('A', layout.Horizontal, true),
			want:     CollisionCell,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := transition(tt.old, tt.incoming); got != tt.want {
				t.Errorf("transition() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
