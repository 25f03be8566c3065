package core

// Position addresses a cell: X is the column, Y the row (0 = top).
type Position struct {
	X int `json:"column"`
	Y int `json:"row"`
}

// Board is the game grid.
// Cells are stored in row-major order: index = y*W + x. Row 0 is the top row,
// row H-1 the bottom row, so gravity fills from high row indexes upward.
type Board struct {
	W     int    // Width of the board (columns)
	H     int    // Height of the board (rows)
	Cells []Mark // Flat array of cells, length W*H
}

// NewBoard creates an empty board with the given dimensions.
func NewBoard(w, h int) *Board {
	return &Board{
		W:     w,
		H:     h,
		Cells: make([]Mark, w*h),
	}
}

// index converts a coordinate to a flat array index.
func (b *Board) index(x, y int) int {
	return y*b.W + x
}

// InBounds returns true if the coordinate is within the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// At returns the mark at (x, y). Out-of-bounds cells read as empty.
func (b *Board) At(x, y int) Mark {
	if !b.InBounds(x, y) {
		return MarkEmpty
	}
	return b.Cells[b.index(x, y)]
}

// Set writes a mark at (x, y). Out-of-bounds writes are ignored.
func (b *Board) Set(x, y int, m Mark) {
	if b.InBounds(x, y) {
		b.Cells[b.index(x, y)] = m
	}
}

// LandingRow returns the lowest empty row in column x, or -1 if the column is
// full or out of range.
func (b *Board) LandingRow(x int) int {
	if x < 0 || x >= b.W {
		return -1
	}
	for y := b.H - 1; y >= 0; y-- {
		if b.Cells[b.index(x, y)] == MarkEmpty {
			return y
		}
	}
	return -1
}

// ColumnHasSpace reports whether a piece can still be dropped into column x.
func (b *Board) ColumnHasSpace(x int) bool {
	return x >= 0 && x < b.W && b.Cells[b.index(x, 0)] == MarkEmpty
}

// OpenColumns returns the columns that still have space, left to right.
func (b *Board) OpenColumns() []int {
	cols := make([]int, 0, b.W)
	for x := 0; x < b.W; x++ {
		if b.ColumnHasSpace(x) {
			cols = append(cols, x)
		}
	}
	return cols
}

// Drop places m in the lowest empty cell of column x and returns the row,
// or -1 without touching the board if the column is full.
func (b *Board) Drop(x int, m Mark) int {
	y := b.LandingRow(x)
	if y < 0 {
		return -1
	}
	b.Cells[b.index(x, y)] = m
	return y
}

// Lift clears (x, y). It is the undo of Drop.
func (b *Board) Lift(x, y int) {
	b.Set(x, y, MarkEmpty)
}

// IsFull reports whether the top row has no empty cell.
// With gravity fill that means every cell below is occupied as well.
func (b *Board) IsFull() bool {
	for x := 0; x < b.W; x++ {
		if b.Cells[b.index(x, 0)] == MarkEmpty {
			return false
		}
	}
	return true
}

// IsEmpty reports whether no piece has been placed.
func (b *Board) IsEmpty() bool {
	return b.FilledCount() == 0
}

// FilledCount returns the number of non-empty cells.
func (b *Board) FilledCount() int {
	count := 0
	for _, m := range b.Cells {
		if m != MarkEmpty {
			count++
		}
	}
	return count
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Mark, len(b.Cells))
	copy(cells, b.Cells)
	return &Board{
		W:     b.W,
		H:     b.H,
		Cells: cells,
	}
}

// Equal returns true if two boards have the same dimensions and contents.
func (b *Board) Equal(other *Board) bool {
	if b.W != other.W || b.H != other.H || len(b.Cells) != len(other.Cells) {
		return false
	}
	for i, m := range b.Cells {
		if m != other.Cells[i] {
			return false
		}
	}
	return true
}

// floating returns the first occupied cell that has an empty cell below it.
func (b *Board) floating() (Position, bool) {
	for x := 0; x < b.W; x++ {
		for y := 0; y < b.H-1; y++ {
			if b.At(x, y) != MarkEmpty && b.At(x, y+1) == MarkEmpty {
				return Position{X: x, Y: y}, true
			}
		}
	}
	return Position{}, false
}
