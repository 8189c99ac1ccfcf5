package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samdwyer/charcanvas/internal/canvas"
	"github.com/samdwyer/charcanvas/internal/helpdata"
)

// Frame renders c as text for line mode: a column ruler, a double-line
// border with single-line separators between cells, and row numbers on the
// right.
func Frame(c *canvas.Canvas) string {
	w, h := c.Width(), c.Height()

	ruler := make([]string, w)
	for i := range ruler {
		ruler[i] = strconv.Itoa(i % 10)
	}

	var b strings.Builder
	b.WriteString("│" + strings.Join(ruler, "│") + "│\n")
	b.WriteString("╔" + repeatJoin("═", "╤", w) + "╗\n")

	cells := make([]string, w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			ch, _ := c.Get(x, y)
			cells[x] = string(cellGlyph(ch))
		}
		fmt.Fprintf(&b, "║%s║ %d\n", strings.Join(cells, "│"), y)
		if y < h-1 {
			b.WriteString("╟" + repeatJoin("─", "┼", w) + "╢\n")
		}
	}

	b.WriteString("╚" + repeatJoin("═", "╧", w) + "╝\n")
	return b.String()
}

// repeatJoin returns n copies of s separated by sep.
func repeatJoin(s, sep string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(s+sep, n-1) + s
}

// WriteHelp writes the command reference for line mode.
func WriteHelp(w io.Writer, registry *helpdata.CommandRegistry) error {
	if _, err := fmt.Fprintln(w, "=== Commands ==="); err != nil {
		return err
	}
	for _, usage := range registry.Usages() {
		if _, err := fmt.Fprintln(w, usage); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
