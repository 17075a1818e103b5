package breakout

import (
	"github.com/vovakirdan/microgames/internal/config"
	"github.com/vovakirdan/microgames/internal/core"
)

// RowColors cycle down the wall.
var RowColors = []core.Color{
	core.ColorBrightRed,
	core.ColorOrange,
	core.ColorBrightYellow,
	core.ColorBrightGreen,
	core.ColorBrightBlue,
}

// Brick is one block of the wall.
type Brick struct {
	Box     core.Box
	Row     int
	Col     int
	Color   core.Color
	Visible bool
}

// buildWall lays out rows x cols bricks spanning the world width.
func buildWall(cfg config.BreakoutConfig) []Brick {
	rows, cols := cfg.Bricks.Rows, cfg.Bricks.Cols
	w := cfg.World.Width / float64(cols)
	bricks := make([]Brick, 0, rows*cols)
	for row := range rows {
		for col := range cols {
			bricks = append(bricks, Brick{
				Box: core.Box{
					X: float64(col) * w,
					Y: float64(row)*cfg.Bricks.Height + cfg.Bricks.Top,
					W: w,
					H: cfg.Bricks.Height,
				},
				Row:     row,
				Col:     col,
				Color:   RowColors[row%len(RowColors)],
				Visible: true,
			})
		}
	}
	return bricks
}

// visibleBricks counts bricks still standing.
func visibleBricks(bricks []Brick) int {
	n := 0
	for i := range bricks {
		if bricks[i].Visible {
			n++
		}
	}
	return n
}
