package core

// Board is the minefield grid.
type Board struct {
	W, H int
	C    []Cell // length = W*H (row‑major)
}

func NewBoard(w, h int) *Board {
	b := &Board{W: w, H: h, C: make([]Cell, w*h)}
	for i := range b.C {
		b.C[i] = NewCell()
	}
	return b
}

func (b *Board) Idx(x, y int) int      { return y*b.W + x }
func (b *Board) XY(idx int) (int, int) { return idx % b.W, idx / b.W }
func (b *Board) Size() int             { return b.W * b.H }

// InBounds checks if coordinates are within board boundaries
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// GetCell safely returns a cell pointer if coordinates are valid, nil otherwise
func (b *Board) GetCell(x, y int) *Cell {
	if !b.InBounds(x, y) {
		return nil
	}
	return &b.C[b.Idx(x, y)]
}

// Neighbors returns the in-bounds 8-neighbourhood of (x, y).
func (b *Board) Neighbors(x, y int) []Coordinate {
	return NewCoordinate(x, y).ValidNeighbors(b.W, b.H)
}

// AdjacentMines counts mines among the up to 8 neighbours of (x, y).
func (b *Board) AdjacentMines(x, y int) int {
	n := 0
	for _, c := range b.Neighbors(x, y) {
		if b.C[c.ToIndex(b.W)].IsMine() {
			n++
		}
	}
	return n
}

// CountIf returns how many cells satisfy pred.
func (b *Board) CountIf(pred func(*Cell) bool) int {
	n := 0
	for i := range b.C {
		if pred(&b.C[i]) {
			n++
		}
	}
	return n
}

// All reports whether every cell satisfies pred.
func (b *Board) All(pred func(*Cell) bool) bool {
	for i := range b.C {
		if !pred(&b.C[i]) {
			return false
		}
	}
	return true
}

// Any reports whether at least one cell satisfies pred.
func (b *Board) Any(pred func(*Cell) bool) bool {
	for i := range b.C {
		if pred(&b.C[i]) {
			return true
		}
	}
	return false
}
