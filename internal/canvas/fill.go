package canvas

import (
	"errors"

	"github.com/samdwyer/charcanvas/internal/geom"
)

// ErrOffScreen is returned when a fill starts outside the canvas.
var ErrOffScreen = errors.New("fill position is off screen")

// Fill replaces the 4-connected region of cells sharing the character at
// (x, y) with ch. It returns the number of cells written.
//
// Pending cells are kept on an explicit stack so large regions cannot exhaust
// the goroutine stack. A cell is overwritten before its neighbours are
// pushed, so it no longer matches once visited.
func (c *Canvas) Fill(x, y int, ch rune) (int, error) {
	target, ok := c.Get(x, y)
	if !ok {
		return 0, ErrOffScreen
	}

	if target == ch {
		c.Put(ch, x, y)
		return 1, nil
	}

	written := 0
	stack := []geom.Point{{X: x, Y: y}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if c.cells[p.Y][p.X] != target {
			continue
		}
		c.cells[p.Y][p.X] = ch
		written++

		if p.X+1 < c.width {
			stack = append(stack, geom.Point{X: p.X + 1, Y: p.Y})
		}
		if p.X-1 >= 0 {
			stack = append(stack, geom.Point{X: p.X - 1, Y: p.Y})
		}
		if p.Y+1 < c.height {
			stack = append(stack, geom.Point{X: p.X, Y: p.Y + 1})
		}
		if p.Y-1 >= 0 {
			stack = append(stack, geom.Point{X: p.X, Y: p.Y - 1})
		}
	}

	return written, nil
}
