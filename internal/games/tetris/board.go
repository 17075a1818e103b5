package tetris

// Board is the well of locked cells.
type Board struct {
	width, height int
	cells         [][]Kind
}

// NewBoard creates an empty width x height board.
func NewBoard(width, height int) *Board {
	b := &Board{width: width, height: height, cells: make([][]Kind, height)}
	for y := range b.cells {
		b.cells[y] = make([]Kind, width)
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// At returns the kind locked at x,y, or KindNone for empty or off-board cells.
func (b *Board) At(x, y int) Kind {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return KindNone
	}
	return b.cells[y][x]
}

// Set locks kind at x,y. Off-board cells are ignored.
func (b *Board) Set(x, y int, kind Kind) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.cells[y][x] = kind
}

// Valid reports whether p fits. Cells above the top row are allowed so a
// piece can enter the board partially.
func (b *Board) Valid(p Piece) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= b.width || c.Y >= b.height {
			return false
		}
		if c.Y >= 0 && b.cells[c.Y][c.X] != KindNone {
			return false
		}
	}
	return true
}

// Place locks p into the board. Cells above the top row are dropped.
func (b *Board) Place(p Piece) {
	for _, c := range p.Cells() {
		b.Set(c.X, c.Y, p.Kind)
	}
}

// ClearLines removes full rows and inserts empty rows at the top, keeping
// the height. Returns the number of rows removed.
func (b *Board) ClearLines() int {
	kept := make([][]Kind, 0, b.height)
	for _, row := range b.cells {
		if !full(row) {
			kept = append(kept, row)
		}
	}
	cleared := b.height - len(kept)
	if cleared == 0 {
		return 0
	}
	fresh := make([][]Kind, cleared, b.height)
	for i := range fresh {
		fresh[i] = make([]Kind, b.width)
	}
	b.cells = append(fresh, kept...)
	return cleared
}

func full(row []Kind) bool {
	for _, k := range row {
		if k == KindNone {
			return false
		}
	}
	return true
}

// DropDistance returns how many rows p can fall before resting.
func (b *Board) DropDistance(p Piece) int {
	n := 0
	for b.Valid(p.Moved(0, n+1)) {
		n++
	}
	return n
}
