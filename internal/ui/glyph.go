package ui

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// placeholder stands in for characters that do not occupy exactly one
// terminal column.
const placeholder = '?'

// cellGlyph returns the rune to display for a canvas cell. Every cell is
// drawn one column wide so the grid stays aligned.
func cellGlyph(ch rune) rune {
	if runewidth.RuneWidth(ch) != 1 {
		return placeholder
	}
	return ch
}

// drawString draws s starting at (x, y) using set, stopping before maxX. If
// s does not fit it is cut short with an ellipsis. It returns the column
// after the last one drawn.
func drawString(set func(x, y int, r rune), x, y, maxX int, s string) int {
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		w := runewidth.RuneWidth(r)
		if w == 0 {
			s = s[size:]
			continue
		}
		if x+w > maxX || (x+w == maxX && len(s) > size) {
			if x < maxX {
				set(x, y, '…')
				x++
			}
			return x
		}
		set(x, y, r)
		x += w
		s = s[size:]
	}
	return x
}
