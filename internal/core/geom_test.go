package core

import "testing"

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        BoxFromRect(0, 0, 10, 10),
			b:        BoxFromRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "separated horizontally",
			a:        BoxFromRect(0, 0, 10, 10),
			b:        BoxFromRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "separated vertically",
			a:        BoxFromRect(0, 0, 10, 10),
			b:        BoxFromRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching edge is not overlap",
			a:        BoxFromRect(0, 0, 10, 10),
			b:        BoxFromRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "circle box inside brick",
			a:        BoxAround(25, 50, 8),
			b:        BoxFromRect(0, 40, 50, 20),
			expected: true,
		},
		{
			name:     "circle box grazing from below",
			a:        BoxAround(25, 68, 8),
			b:        BoxFromRect(0, 40, 50, 20),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxSize(t *testing.T) {
	b := BoxAround(100, 100, 8)
	if b.Width() != 16 || b.Height() != 16 {
		t.Errorf("BoxAround size = %vx%v, expected 16x16", b.Width(), b.Height())
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 300.0, 5.5},
		{-5.5, 0.0, 300.0, 0.0},
		{315.5, 0.0, 300.0, 300.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}
