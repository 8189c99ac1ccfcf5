package geom

import (
	"iter"
	"math"
)

// Line is a straight segment between two points. The endpoints may be given
// in either order.
type Line struct {
	P1, P2 Point
}

// NewLine creates a line from p1 to p2.
func NewLine(p1, p2 Point) Line {
	return Line{P1: p1, P2: p2}
}

func (l Line) deltas() (dx, dy int) {
	return l.P1.X - l.P2.X, l.P1.Y - l.P2.Y
}

// M returns the slope of the line, or +Inf for a vertical line.
func (l Line) M() float64 {
	dx, dy := l.deltas()
	if dx == 0 {
		return math.Inf(1)
	}
	return float64(dy) / float64(dx)
}

// B returns the y intercept of the line. It is not meaningful for vertical
// lines.
func (l Line) B() float64 {
	return float64(l.P1.Y) - float64(l.M()*float64(l.P1.X))
}

// IsVertical reports whether both endpoints share an x coordinate.
func (l Line) IsVertical() bool {
	dx, _ := l.deltas()
	return dx == 0
}

// IsHorizontallyCompressed reports whether the line is no steeper than 45
// degrees, i.e. -1 <= m <= 1. Such lines are rasterized by stepping along x.
func (l Line) IsHorizontallyCompressed() bool {
	dx, dy := l.deltas()
	return dx != 0 && magnitude(dy) <= magnitude(dx)
}

// Points yields one cell per step along the axis of greater extent, so the
// result has no gaps and always includes both endpoints.
//
// For a non-vertical line the off-axis coordinate is floor(m*x+b) or
// floor((y-b)/m). Both are evaluated with integer floor division, which gives
// the same cells as the real-valued formulas without float rounding as long
// as every coordinate is within MaxCoord.
func (l Line) Points() iter.Seq[Point] {
	return l.PointsIn(Unbounded)
}

// PointsIn is Points with the stepped axis limited to b, so the work done is
// bounded by the size of b rather than the length of the line.
func (l Line) PointsIn(b Bounds) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		dx, dy := l.deltas()
		minX, maxX := max(min(l.P1.X, l.P2.X), b.Min.X), min(max(l.P1.X, l.P2.X), b.Max.X)
		minY, maxY := max(min(l.P1.Y, l.P2.Y), b.Min.Y), min(max(l.P1.Y, l.P2.Y), b.Max.Y)

		switch {
		case dx == 0:
			if l.P1.X < b.Min.X || l.P1.X > b.Max.X {
				return
			}
			for y := range steps(minY, maxY) {
				if !yield(Point{X: l.P1.X, Y: y}) {
					return
				}
			}
		case magnitude(dy) <= magnitude(dx):
			for x := range steps(minX, maxX) {
				y := l.P1.Y + floorDiv((x-l.P1.X)*dy, dx)
				if !yield(Point{X: x, Y: y}) {
					return
				}
			}
		default:
			for y := range steps(minY, maxY) {
				x := l.P1.X + floorDiv((y-l.P1.Y)*dx, dy)
				if !yield(Point{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// floorDiv returns a/b rounded towards negative infinity. b must not be 0.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// magnitude returns |v| without overflowing for math.MinInt.
func magnitude(v int) uint64 {
	if v < 0 {
		return uint64(-int64(v))
	}
	return uint64(v)
}
