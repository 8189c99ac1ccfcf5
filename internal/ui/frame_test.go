package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/samdwyer/charcanvas/internal/canvas"
	"github.com/samdwyer/charcanvas/internal/helpdata"
)

func TestFrame(t *testing.T) {
	c, err := canvas.New(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	c.Put('a', 0, 0)
	c.Put('世', 1, 1)

	want := strings.Join([]string{
		"│0│1│",
		"╔═╤═╗",
		"║a│ ║ 0",
		"╟─┼─╢",
		"║ │?║ 1",
		"╚═╧═╝",
		"",
	}, "\n")
	if got := Frame(c); got != want {
		t.Errorf("Frame() =\n%s\nwant:\n%s", got, want)
	}
}

func TestFrameRulerWraps(t *testing.T) {
	c, err := canvas.New(12, 1)
	if err != nil {
		t.Fatal(err)
	}
	first := strings.SplitN(Frame(c), "\n", 2)[0]
	if want := "│0│1│2│3│4│5│6│7│8│9│0│1│"; first != want {
		t.Errorf("ruler = %q, want %q", first, want)
	}
}

func TestWriteHelp(t *testing.T) {
	registry, err := helpdata.LoadCommandRegistry()
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteHelp(&buf, registry); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "=== Commands ===\nHELP\nNEW <w> <h>\n") {
		t.Errorf("unexpected help output:\n%s", out)
	}
	if !strings.Contains(out, "FILL <x> <y>\n") {
		t.Errorf("help output is missing FILL:\n%s", out)
	}
}

func TestDrawString(t *testing.T) {
	tests := []struct {
		s    string
		maxX int
		want string
		end  int
	}{
		{"abc", 10, "abc", 3},
		{"abc", 3, "abc", 3},
		{"abcd", 3, "ab…", 3},
		{"a世b", 10, "a世b", 4},
	}
	for _, tt := range tests {
		row := make(map[int]rune)
		end := drawString(func(x, _ int, r rune) { row[x] = r }, 0, 0, tt.maxX, tt.s)

		var got strings.Builder
		for x := 0; x < end; x++ {
			if r, ok := row[x]; ok {
				got.WriteRune(r)
			}
		}
		if got.String() != tt.want || end != tt.end {
			t.Errorf("drawString(%q, %d) = %q, %d; want %q, %d", tt.s, tt.maxX, got.String(), end, tt.want, tt.end)
		}
	}
}
