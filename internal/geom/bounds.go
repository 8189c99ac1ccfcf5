package geom

import (
	"iter"
	"math"
)

// MaxCoord is the largest coordinate magnitude for which the cells of a
// sloped line are exact. Beyond it the off-axis arithmetic may overflow.
const MaxCoord = 1 << 30

// Bounds is an inclusive rectangle of cells used to clip rasterization.
type Bounds struct {
	Min, Max Point
}

// Unbounded covers every representable point.
var Unbounded = Bounds{
	Min: Point{X: math.MinInt, Y: math.MinInt},
	Max: Point{X: math.MaxInt, Y: math.MaxInt},
}

// Contains reports whether p lies inside b.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// steps yields lo through hi inclusive. It does not wrap when hi is
// math.MaxInt.
func steps(lo, hi int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if lo > hi {
			return
		}
		for v := lo; ; v++ {
			if !yield(v) || v == hi {
				return
			}
		}
	}
}
