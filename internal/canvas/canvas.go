// Package canvas provides the character grid that commands draw onto.
package canvas

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samdwyer/charcanvas/internal/geom"
)

// Blank is the character every cell of a new canvas holds.
const Blank = ' '

// ErrInvalidSize is returned when a canvas would have no columns or rows.
var ErrInvalidSize = errors.New("canvas dimensions must be positive")

// Canvas is a fixed-size grid of characters addressed by column x and row y,
// with (0, 0) at the top left.
type Canvas struct {
	width  int
	height int
	cells  [][]rune
}

// New creates a width x height canvas filled with blanks.
func New(width, height int) (*Canvas, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}

	cells := make([][]rune, height)
	for y := range cells {
		cells[y] = make([]rune, width)
		for x := range cells[y] {
			cells[y][x] = Blank
		}
	}

	return &Canvas{
		width:  width,
		height: height,
		cells:  cells,
	}, nil
}

// Width returns the number of columns.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the number of rows.
func (c *Canvas) Height() int {
	return c.height
}

// InBounds returns true if (x, y) is a cell of the canvas.
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Put writes ch at (x, y). Writes outside the canvas are ignored; the return
// value reports whether the cell was written.
func (c *Canvas) Put(ch rune, x, y int) bool {
	if !c.InBounds(x, y) {
		return false
	}
	c.cells[y][x] = ch
	return true
}

// Get returns the character at (x, y). The second return value is false if
// (x, y) is off the canvas.
func (c *Canvas) Get(x, y int) (rune, bool) {
	if !c.InBounds(x, y) {
		return 0, false
	}
	return c.cells[y][x], true
}

// Bounds returns the cells of the canvas as a clip rectangle.
func (c *Canvas) Bounds() geom.Bounds {
	return geom.Bounds{Max: geom.Pt(c.width-1, c.height-1)}
}

// Plot draws every point of shape with ch and returns how many of them landed
// on the canvas. Only the part of the shape that can reach the canvas is
// walked, however far its endpoints are.
func (c *Canvas) Plot(shape geom.Shape, ch rune) int {
	written := 0
	for p := range shape.PointsIn(c.Bounds()) {
		if c.Put(ch, p.X, p.Y) {
			written++
		}
	}
	return written
}

// Row returns row y as a string. It panics if y is out of range.
func (c *Canvas) Row(y int) string {
	return string(c.cells[y])
}

// Rows returns every row as a string, top to bottom.
func (c *Canvas) Rows() []string {
	rows := make([]string, c.height)
	for y := range rows {
		rows[y] = c.Row(y)
	}
	return rows
}

// String returns the rows joined by newlines.
func (c *Canvas) String() string {
	return strings.Join(c.Rows(), "\n")
}
