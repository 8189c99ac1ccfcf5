package geom

import (
	"slices"
	"testing"
)

func TestRectangleNormalizesCorners(t *testing.T) {
	r := NewRectangle(Pt(3, 0), Pt(0, 3))

	if r.TopLeft != Pt(0, 0) || r.BottomRight != Pt(3, 3) {
		t.Fatalf("corners = %v %v, want (0,0) (3,3)", r.TopLeft, r.BottomRight)
	}

	want := [4]Line{
		NewLine(Pt(0, 0), Pt(3, 0)),
		NewLine(Pt(0, 3), Pt(3, 3)),
		NewLine(Pt(0, 0), Pt(0, 3)),
		NewLine(Pt(3, 0), Pt(3, 3)),
	}
	if r.Sides() != want {
		t.Errorf("Sides() = %v, want %v", r.Sides(), want)
	}
}

func TestRectanglePointsOutline(t *testing.T) {
	r := NewRectangle(Pt(0, 0), Pt(3, 3))
	points := slices.Collect(r.Points())

	// four sides of four cells each, corners repeated
	if len(points) != 16 {
		t.Errorf("got %d points, want 16", len(points))
	}

	unique := make(map[Point]bool)
	for _, p := range points {
		unique[p] = true
	}
	if len(unique) != 12 {
		t.Errorf("got %d unique cells, want 12", len(unique))
	}

	for y := 0; y <= 3; y++ {
		for x := 0; x <= 3; x++ {
			edge := x == 0 || x == 3 || y == 0 || y == 3
			if unique[Pt(x, y)] != edge {
				t.Errorf("cell (%d,%d) covered = %v, want %v", x, y, unique[Pt(x, y)], edge)
			}
		}
	}
}

func TestRectanglePointsOrder(t *testing.T) {
	r := NewRectangle(Pt(1, 1), Pt(2, 2))
	got := slices.Collect(r.Points())
	want := []Point{
		{1, 1}, {2, 1}, // top
		{1, 2}, {2, 2}, // bottom
		{1, 1}, {1, 2}, // left
		{2, 1}, {2, 2}, // right
	}
	if !slices.Equal(got, want) {
		t.Errorf("Points() = %v, want %v", got, want)
	}
}

func TestRectangleDegenerate(t *testing.T) {
	unique := make(map[Point]bool)
	for p := range NewRectangle(Pt(4, 4), Pt(4, 4)).Points() {
		unique[p] = true
	}
	if len(unique) != 1 || !unique[Pt(4, 4)] {
		t.Errorf("single-cell rectangle covered %v", unique)
	}
}
