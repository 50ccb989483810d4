package physics

import "testing"

func TestBoxOverlaps(t *testing.T) {
	base := Box{Left: 0, Top: 0, Right: 16, Bottom: 16}
	tests := []struct {
		name  string
		other Box
		want  bool
	}{
		{"inside", Box{4, 4, 8, 8}, true},
		{"partial", Box{8, 8, 24, 24}, true},
		{"shared right edge", Box{16, 0, 32, 16}, false},
		{"shared bottom edge", Box{0, 16, 16, 32}, false},
		{"edge within rounding", Box{15.9999999, 0, 32, 16}, false},
		{"apart", Box{40, 40, 50, 50}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := base.Overlaps(tc.other); got != tc.want {
				t.Errorf("Overlaps() = %v, want %v", got, tc.want)
			}
			if got := tc.other.Overlaps(base); got != tc.want {
				t.Errorf("reverse Overlaps() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestBoxUnionAndEdges(t *testing.T) {
	u := Box{0, 0, 16, 16}.Union(Box{40, -4, 56, 12})
	if u != (Box{0, -4, 56, 16}) {
		t.Errorf("Union() = %+v", u)
	}
	if u.Width() != 56 || u.Height() != 20 {
		t.Errorf("size = %vx%v, want 56x20", u.Width(), u.Height())
	}
	if u.Edge(SideLeft) != 0 || u.Edge(SideRight) != 56 || u.Edge(SideTop) != -4 || u.Edge(SideBottom) != 16 {
		t.Errorf("edges of %+v", u)
	}
}

func TestBodyBoxOffset(t *testing.T) {
	b := NewBody(10, 20, 8, 12, Collider, WithBoxOffset(4, -2))
	if got := b.Box(); got != (Box{14, 18, 22, 30}) {
		t.Errorf("Box() = %+v", got)
	}
	b.Place(0, 0)
	if got := b.Box(); got != (Box{4, -2, 12, 10}) {
		t.Errorf("Box() after Place = %+v", got)
	}
}
