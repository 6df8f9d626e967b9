package layout

// BoundingBox is an inclusive rectangle: cells with Top<=row<=Bottom
// and Left<=col<=Right are inside it.
type BoundingBox struct {
	Top, Left, Bottom, Right int
}

// WordBox returns the bounding box spanning every letter cell a word of
// the given length placed at pos would occupy.
func WordBox(pos Position, length int) BoundingBox {
	last := pos.LetterPos(length - 1)
	box := BoundingBox{Top: pos.Row, Left: pos.Col, Bottom: pos.Row, Right: pos.Col}
	return box.Combine(BoundingBox{Top: last.Row, Left: last.Col, Bottom: last.Row, Right: last.Col})
}

// Combine returns the union of two bounding boxes.
func (b BoundingBox) Combine(other BoundingBox) BoundingBox {
	return BoundingBox{
		Top:    min(b.Top, other.Top),
		Left:   min(b.Left, other.Left),
		Bottom: max(b.Bottom, other.Bottom),
		Right:  max(b.Right, other.Right),
	}
}

// Expand grows the box by one cell on every side.
func (b BoundingBox) Expand() BoundingBox {
	return BoundingBox{Top: b.Top - 1, Left: b.Left - 1, Bottom: b.Bottom + 1, Right: b.Right + 1}
}

// Contract shrinks the box by one cell on every side (the inverse of Expand).
func (b BoundingBox) Contract() BoundingBox {
	return BoundingBox{Top: b.Top + 1, Left: b.Left + 1, Bottom: b.Bottom - 1, Right: b.Right - 1}
}

// Width returns the number of columns the box spans.
func (b BoundingBox) Width() int {
	return b.Right - b.Left + 1
}

// Height returns the number of rows the box spans.
func (b BoundingBox) Height() int {
	return b.Bottom - b.Top + 1
}

// Area returns width times height.
func (b BoundingBox) Area() int {
	return b.Width() * b.Height()
}

// Contains reports whether the given position lies within the box.
func (b BoundingBox) Contains(row, col int) bool {
	return row >= b.Top && row <= b.Bottom && col >= b.Left && col <= b.Right
}

// Index maps a (row, col) inside the box to a linear row-major offset
// into a backing slice sized for the box, the addressing scheme
// pkg/cellgrid uses for its dense Cells slice.
func (b BoundingBox) Index(row, col int) int {
	return (row-b.Top)*b.Width() + (col - b.Left)
}
