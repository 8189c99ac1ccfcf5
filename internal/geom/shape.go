package geom

import "iter"

// Shape is anything that can be rasterized into a sequence of cells.
type Shape interface {
	// Points yields every cell covered by the shape. The sequence is
	// finite and may contain points that fall outside any canvas.
	Points() iter.Seq[Point]

	// PointsIn yields the same cells as Points, in the same order, but only
	// walks the part of the shape that can reach b. Every point inside b is
	// yielded; some points outside it may be too.
	PointsIn(b Bounds) iter.Seq[Point]
}

var (
	_ Shape = Line{}
	_ Shape = Rectangle{}
)
