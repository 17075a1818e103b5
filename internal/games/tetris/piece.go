package tetris

import "github.com/vovakirdan/microgames/internal/core"

// Kind identifies a tetromino. KindNone marks an empty board cell.
type Kind uint8

const (
	KindNone Kind = iota
	KindI
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// Kinds lists the seven tetrominoes in draw order.
var Kinds = []Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}

var kindNames = [...]string{"", "I", "O", "T", "S", "Z", "J", "L"}

var kindColors = [...]core.Color{
	core.ColorDefault,
	core.ColorBrightCyan,
	core.ColorBrightYellow,
	core.ColorPurple,
	core.ColorBrightGreen,
	core.ColorBrightRed,
	core.ColorBlue,
	core.ColorOrange,
}

// Spawn shapes, one string per row.
var kindShapes = [...][]string{
	KindI: {"####"},
	KindO: {"##", "##"},
	KindT: {".#.", "###"},
	KindS: {".##", "##."},
	KindZ: {"##.", ".##"},
	KindJ: {"#..", "###"},
	KindL: {"..#", "###"},
}

// String returns the letter name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "?"
}

// Color returns the cell color for the kind.
func (k Kind) Color() core.Color {
	if int(k) < len(kindColors) {
		return kindColors[k]
	}
	return core.ColorDefault
}

// Shape is a rectangular cell mask, row-major.
type Shape [][]bool

func shapeOf(k Kind) Shape {
	rows := kindShapes[k]
	s := make(Shape, len(rows))
	for y, row := range rows {
		s[y] = make([]bool, len(row))
		for x, c := range row {
			s[y][x] = c == '#'
		}
	}
	return s
}

// Width returns the number of columns.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Height returns the number of rows.
func (s Shape) Height() int { return len(s) }

// Rotated returns the shape turned clockwise: row i of the result is
// column i read from the bottom up.
func (s Shape) Rotated() Shape {
	h, w := s.Height(), s.Width()
	out := make(Shape, w)
	for i := range w {
		out[i] = make([]bool, h)
		for j := range h {
			out[i][j] = s[h-1-j][i]
		}
	}
	return out
}

// Piece is a tetromino placed on the board. X,Y is the top-left of its shape.
type Piece struct {
	Kind  Kind
	Shape Shape
	X, Y  int
}

// NewPiece returns kind at its spawn position on a board boardWidth wide.
func NewPiece(kind Kind, boardWidth int) Piece {
	s := shapeOf(kind)
	return Piece{Kind: kind, Shape: s, X: boardWidth/2 - s.Width()/2}
}

// Moved returns the piece shifted by dx,dy.
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns the piece turned clockwise in place.
func (p Piece) Rotated() Piece {
	p.Shape = p.Shape.Rotated()
	return p
}

// Cell is a board coordinate.
type Cell struct{ X, Y int }

// Cells returns the board cells the piece covers.
func (p Piece) Cells() []Cell {
	cells := make([]Cell, 0, 4)
	for y, row := range p.Shape {
		for x, filled := range row {
			if filled {
				cells = append(cells, Cell{X: p.X + x, Y: p.Y + y})
			}
		}
	}
	return cells
}
