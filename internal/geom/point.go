// Package geom provides the shapes that can be drawn onto a canvas and the
// rasterization that turns them into grid cells.
package geom

import "math"

// Point is a cell coordinate. Points may lie off the canvas, including at
// negative coordinates.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// DistanceTo returns the Euclidean distance to q, rounded down.
func (p Point) DistanceTo(q Point) int {
	dx := float64(q.X - p.X)
	dy := float64(q.Y - p.Y)
	return int(math.Floor(math.Sqrt(dx*dx + dy*dy)))
}
