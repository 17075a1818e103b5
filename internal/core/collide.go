package core

import "math"

// Sides is a bit set of box edges.
type Sides uint8

const (
	SideLeft Sides = 1 << iota
	SideRight
	SideTop
	SideBottom

	SidesNone       Sides = 0
	SidesAll              = SideLeft | SideRight | SideTop | SideBottom
	SidesHorizontal       = SideLeft | SideRight
	SidesVertical         = SideTop | SideBottom
)

// Has reports whether s contains every side in other.
func (s Sides) Has(other Sides) bool {
	return s&other == other && other != 0
}

// BounceInside keeps box inside bounds on the walls listed in walls.
// A box reaching a wall while moving into it has the perpendicular velocity
// component negated and its position clamped to the wall; the tangential
// component is left untouched. Walls not listed are open (the box may leave).
// Returns the adjusted box, velocity and the walls that were hit.
func BounceInside(b Box, v Vec, bounds Box, walls Sides) (Box, Vec, Sides) {
	var hit Sides

	if walls.Has(SideLeft) && b.X <= bounds.X {
		b.X = bounds.X
		if v.X < 0 {
			v.X = -v.X
		}
		hit |= SideLeft
	} else if walls.Has(SideRight) && b.Right() >= bounds.Right() {
		b.X = bounds.Right() - b.W
		if v.X > 0 {
			v.X = -v.X
		}
		hit |= SideRight
	}

	if walls.Has(SideTop) && b.Y <= bounds.Y {
		b.Y = bounds.Y
		if v.Y < 0 {
			v.Y = -v.Y
		}
		hit |= SideTop
	} else if walls.Has(SideBottom) && b.Bottom() >= bounds.Bottom() {
		b.Y = bounds.Bottom() - b.H
		if v.Y > 0 {
			v.Y = -v.Y
		}
		hit |= SideBottom
	}

	return b, v, hit
}

// PaddleEnglish returns the horizontal velocity after a paddle hit.
// The offset of the ball center from the paddle center, normalized to
// [-1, 1] by halfWidth, adds gain*offset; the result is clamped to ±maxVX.
func PaddleEnglish(vx, ballCenter, paddleCenter, halfWidth, gain, maxVX float64) float64 {
	if halfWidth <= 0 {
		return ClampF(vx, -maxVX, maxVX)
	}
	offset := (ballCenter - paddleCenter) / halfWidth
	return ClampF(vx+offset*gain, -maxVX, maxVX)
}

// Axis names a coordinate axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// String returns the axis name.
func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// DominantAxis picks the axis of minimum penetration for a ball hitting a
// w*h block, from the center offset (dx, dy) normalized by block size.
// Wide offsets (side hits) reflect horizontally, otherwise vertically.
func DominantAxis(dx, dy, w, h float64) Axis {
	if w <= 0 || h <= 0 {
		return AxisY
	}
	if math.Abs(dx/w) > math.Abs(dy/h) {
		return AxisX
	}
	return AxisY
}

// Reflect negates the velocity component along axis.
func (v Vec) Reflect(axis Axis) Vec {
	if axis == AxisX {
		v.X = -v.X
	} else {
		v.Y = -v.Y
	}
	return v
}

// Scale multiplies both components by f.
func (v Vec) Scale(f float64) Vec {
	return Vec{X: v.X * f, Y: v.Y * f}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Len returns the vector magnitude.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}
