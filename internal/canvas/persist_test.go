package canvas

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/samdwyer/charcanvas/internal/geom"
)

func TestWriteToFormat(t *testing.T) {
	c := mustNew(t, 3, 2)
	c.Put('a', 0, 0)
	c.Put('b', 2, 1)

	var buf bytes.Buffer
	n, err := c.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if want := "a  \n  b\n"; buf.String() != want {
		t.Errorf("WriteTo wrote %q, want %q", buf.String(), want)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo returned %d, wrote %d bytes", n, buf.Len())
	}
}

func TestReadWhatWasWritten(t *testing.T) {
	c := mustNew(t, 7, 4)
	c.Plot(geom.NewRectangle(geom.Pt(0, 0), geom.Pt(6, 3)), '+')
	c.Put('é', 3, 1)

	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}

	loaded, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if loaded.Width() != 7 || loaded.Height() != 4 {
		t.Errorf("size = %dx%d, want 7x4", loaded.Width(), loaded.Height())
	}
	if loaded.String() != c.String() {
		t.Errorf("got:\n%s\nwant:\n%s", loaded, c)
	}
}

func TestReadInfersSizeFromFirstLine(t *testing.T) {
	c, err := Read(strings.NewReader("abcd\r\nx\nlonger line\n"))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if c.Width() != 4 || c.Height() != 3 {
		t.Fatalf("size = %dx%d, want 4x3", c.Width(), c.Height())
	}
	want := []string{"abcd", "x   ", "long"}
	for y, row := range c.Rows() {
		if row != want[y] {
			t.Errorf("row %d = %q, want %q", y, row, want[y])
		}
	}
}

func TestReadWithoutTrailingNewline(t *testing.T) {
	c, err := Read(strings.NewReader("ab\ncd"))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if c.String() != "ab\ncd" {
		t.Errorf("got %q", c.String())
	}
}

func TestReadEmpty(t *testing.T) {
	if _, err := Read(strings.NewReader("")); !errors.Is(err, ErrEmpty) {
		t.Errorf("error = %v, want ErrEmpty", err)
	}
	if _, err := Read(strings.NewReader("\nabc\n")); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("error = %v, want ErrInvalidSize", err)
	}
}

func TestReadLimit(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"within limits", "abc\nabc\n", nil},
		{"exactly at limits", "abcd\n\n\n", nil},
		{"too wide", "abcde\n", ErrTooLarge},
		{"too tall", "a\nb\nc\nd\n", ErrTooLarge},
		{"long later rows are clipped", "ab\n" + strings.Repeat("z", 1000) + "\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadLimit(strings.NewReader(tt.input), 4, 3)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestReadLimitRejectsBeforeAllocating(t *testing.T) {
	// 5000 columns by 5000 rows from a 10 KB file
	input := strings.Repeat("x", 5000) + strings.Repeat("\n", 5000)

	allocs := testing.AllocsPerRun(1, func() {
		if _, err := ReadLimit(strings.NewReader(input), 1000, 1000); !errors.Is(err, ErrTooLarge) {
			t.Errorf("error = %v, want ErrTooLarge", err)
		}
	})
	if allocs > 20 {
		t.Errorf("rejected read made %v allocations", allocs)
	}

	tall := "xx" + strings.Repeat("\n", 5000)
	if _, err := ReadLimit(strings.NewReader(tall), 1000, 1000); !errors.Is(err, ErrTooLarge) {
		t.Errorf("error = %v, want ErrTooLarge", err)
	}
}
