package geom

import "iter"

// Rectangle is an axis-aligned rectangle outline. It owns the four lines
// that make up its sides.
type Rectangle struct {
	TopLeft, BottomRight Point

	top, bottom, left, right Line
}

// NewRectangle creates the outline spanned by two opposite corners, given in
// any order.
func NewRectangle(p1, p2 Point) Rectangle {
	minX, maxX := min(p1.X, p2.X), max(p1.X, p2.X)
	minY, maxY := min(p1.Y, p2.Y), max(p1.Y, p2.Y)

	tl := Point{X: minX, Y: minY}
	tr := Point{X: maxX, Y: minY}
	bl := Point{X: minX, Y: maxY}
	br := Point{X: maxX, Y: maxY}

	return Rectangle{
		TopLeft:     tl,
		BottomRight: br,
		top:         NewLine(tl, tr),
		bottom:      NewLine(bl, br),
		left:        NewLine(tl, bl),
		right:       NewLine(tr, br),
	}
}

// Top returns the top side.
func (r Rectangle) Top() Line { return r.top }

// Bottom returns the bottom side.
func (r Rectangle) Bottom() Line { return r.bottom }

// Left returns the left side.
func (r Rectangle) Left() Line { return r.left }

// Right returns the right side.
func (r Rectangle) Right() Line { return r.right }

// Sides returns the sides in drawing order: top, bottom, left, right.
func (r Rectangle) Sides() [4]Line {
	return [4]Line{r.top, r.bottom, r.left, r.right}
}

// Points yields the points of each side in turn. Corners appear once per
// side that touches them.
func (r Rectangle) Points() iter.Seq[Point] {
	return r.PointsIn(Unbounded)
}

// PointsIn yields the points of each side that can reach b.
func (r Rectangle) PointsIn(b Bounds) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, side := range r.Sides() {
			for p := range side.PointsIn(b) {
				if !yield(p) {
					return
				}
			}
		}
	}
}
