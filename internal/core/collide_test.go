package core

import "testing"

func TestBounceInsideReflectionLaw(t *testing.T) {
	bounds := Box{0, 0, 1000, 400}

	tests := []struct {
		name     string
		box      Box
		vel      Vec
		walls    Sides
		expected Vec
		hit      Sides
	}{
		{
			name:     "top wall negates vy only",
			box:      Box{500, -3, 8, 8},
			vel:      Vec{0, -240},
			walls:    SidesAll,
			expected: Vec{0, 240},
			hit:      SideTop,
		},
		{
			name:     "top wall keeps tangential vx",
			box:      Box{300, -1, 8, 8},
			vel:      Vec{120, -240},
			walls:    SidesAll,
			expected: Vec{120, 240},
			hit:      SideTop,
		},
		{
			name:     "left wall negates vx only",
			box:      Box{-2, 200, 8, 8},
			vel:      Vec{-240, 90},
			walls:    SidesAll,
			expected: Vec{240, 90},
			hit:      SideLeft,
		},
		{
			name:     "right wall",
			box:      Box{995, 200, 8, 8},
			vel:      Vec{240, -90},
			walls:    SidesAll,
			expected: Vec{-240, -90},
			hit:      SideRight,
		},
		{
			name:     "open bottom does not bounce",
			box:      Box{500, 398, 8, 8},
			vel:      Vec{0, 240},
			walls:    SideLeft | SideRight | SideTop,
			expected: Vec{0, 240},
			hit:      SidesNone,
		},
		{
			name:     "moving away from wall is untouched",
			box:      Box{0, 200, 8, 8},
			vel:      Vec{240, 0},
			walls:    SidesAll,
			expected: Vec{240, 0},
			hit:      SideLeft,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			box, vel, hit := BounceInside(tc.box, tc.vel, bounds, tc.walls)
			if vel != tc.expected {
				t.Errorf("BounceInside() vel = %v, expected %v", vel, tc.expected)
			}
			if hit != tc.hit {
				t.Errorf("BounceInside() hit = %v, expected %v", hit, tc.hit)
			}
			if tc.walls == SidesAll && !inside(box, bounds) {
				t.Errorf("BounceInside() box %v escaped bounds", box)
			}
		})
	}
}

func TestPaddleEnglish(t *testing.T) {
	tests := []struct {
		name                 string
		vx, ball, paddle, hw float64
		expected             float64
	}{
		{"center hit keeps vx", 100, 540, 540, 40, 100},
		{"right edge adds full gain", 100, 580, 540, 40, 160},
		{"left edge subtracts full gain", 100, 500, 540, 40, 40},
		{"clamped to max", 340, 580, 540, 40, 360},
		{"clamped to -max", -340, 500, 540, 40, -360},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := PaddleEnglish(tc.vx, tc.ball, tc.paddle, tc.hw, 60, 360)
			if got != tc.expected {
				t.Errorf("PaddleEnglish() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestDominantAxis(t *testing.T) {
	// Bricks are 66.67 x 20: a ball level with the brick center but far to the
	// side is a side hit.
	if got := DominantAxis(30, 2, 66.67, 20); got != AxisX {
		t.Errorf("DominantAxis(side) = %v, expected x", got)
	}
	if got := DominantAxis(5, 12, 66.67, 20); got != AxisY {
		t.Errorf("DominantAxis(top) = %v, expected y", got)
	}
	if got := DominantAxis(1, 1, 0, 20); got != AxisY {
		t.Errorf("DominantAxis(zero width) = %v, expected y", got)
	}
}

func TestVecReflect(t *testing.T) {
	v := Vec{3, -4}
	if got := v.Reflect(AxisX); got != (Vec{-3, -4}) {
		t.Errorf("Reflect(x) = %v", got)
	}
	if got := v.Reflect(AxisY); got != (Vec{3, 4}) {
		t.Errorf("Reflect(y) = %v", got)
	}
	if v.Len() != 5 {
		t.Errorf("Len() = %v, expected 5", v.Len())
	}
}

func inside(b, bounds Box) bool {
	return b.X >= bounds.X && b.Right() <= bounds.Right() &&
		b.Y >= bounds.Y && b.Bottom() <= bounds.Bottom()
}
