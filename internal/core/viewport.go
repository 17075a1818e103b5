package core

// Viewport projects world coordinates onto a rectangle of screen cells.
type Viewport struct {
	WorldW, WorldH float64
	Area           Rect
}

// NewViewport maps a worldW x worldH world onto area.
func NewViewport(worldW, worldH float64, area Rect) Viewport {
	return Viewport{WorldW: worldW, WorldH: worldH, Area: area}
}

// CellX converts a world x to a screen column.
func (v Viewport) CellX(x float64) int {
	if v.WorldW <= 0 {
		return v.Area.X
	}
	return v.Area.X + int(x*float64(v.Area.W)/v.WorldW)
}

// CellY converts a world y to a screen row.
func (v Viewport) CellY(y float64) int {
	if v.WorldH <= 0 {
		return v.Area.Y
	}
	return v.Area.Y + int(y*float64(v.Area.H)/v.WorldH)
}

// CellRect converts a world box to cells. Non-empty boxes always cover at
// least one cell so small entities stay visible.
func (v Viewport) CellRect(b Box) Rect {
	x0, y0 := v.CellX(b.X), v.CellY(b.Y)
	x1, y1 := v.CellX(b.Right()), v.CellY(b.Bottom())
	w, h := x1-x0, y1-y0
	if b.W > 0 && w < 1 {
		w = 1
	}
	if b.H > 0 && h < 1 {
		h = 1
	}
	return NewRect(x0, y0, w, h)
}

// WorldX converts a screen column to the world x at the cell center.
func (v Viewport) WorldX(col int) float64 {
	if v.Area.W <= 0 {
		return 0
	}
	return (float64(col-v.Area.X) + 0.5) * v.WorldW / float64(v.Area.W)
}

// WorldY converts a screen row to the world y at the cell center.
func (v Viewport) WorldY(row int) float64 {
	if v.Area.H <= 0 {
		return 0
	}
	return (float64(row-v.Area.Y) + 0.5) * v.WorldH / float64(v.Area.H)
}

// Contains reports whether a screen cell is inside the viewport.
func (v Viewport) Contains(col, row int) bool {
	return v.Area.Contains(col, row)
}
