package canvas

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

var (
	// ErrEmpty is returned when reading a canvas from input with no lines.
	ErrEmpty = errors.New("canvas data is empty")
	// ErrTooLarge is returned when a canvas would exceed a size limit.
	ErrTooLarge = errors.New("canvas too large")
)

// WriteTo writes the canvas as plain text, one line per row, each row
// terminated by a newline.
func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var total int64
	for _, row := range c.cells {
		n, err := bw.WriteString(string(row) + "\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, bw.Flush()
}

// Read parses a canvas written by WriteTo. The width is the length of the
// first line and the height is the number of lines. Shorter lines leave the
// remaining cells blank and longer lines are clipped.
func Read(r io.Reader) (*Canvas, error) {
	return ReadLimit(r, 0, 0)
}

// ReadLimit is Read with a maximum size. Input wider than maxWidth or taller
// than maxHeight fails with ErrTooLarge before the canvas is allocated. A
// limit of 0 means no limit.
func ReadLimit(r io.Reader, maxWidth, maxHeight int) (*Canvas, error) {
	var lines []string
	width := 0
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if len(lines) == 0 {
			width = utf8.RuneCountInString(line)
			if maxWidth > 0 && width > maxWidth {
				return nil, fmt.Errorf("%w: width %d exceeds %d", ErrTooLarge, width, maxWidth)
			}
		}
		if maxHeight > 0 && len(lines) == maxHeight {
			return nil, fmt.Errorf("%w: more than %d rows", ErrTooLarge, maxHeight)
		}
		lines = append(lines, clip(line, width))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read canvas: %w", err)
	}

	if len(lines) == 0 {
		return nil, ErrEmpty
	}

	c, err := New(width, len(lines))
	if err != nil {
		return nil, err
	}

	for y, line := range lines {
		x := 0
		for _, ch := range line {
			c.Put(ch, x, y)
			x++
		}
	}

	return c, nil
}

// clip returns the first n runes of s.
func clip(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
