package session

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/samdwyer/charcanvas/internal/canvas"
	"github.com/samdwyer/charcanvas/internal/command"
	"github.com/samdwyer/charcanvas/internal/geom"
	"github.com/samdwyer/charcanvas/internal/helpdata"
)

func newSession(t *testing.T, cfg Config, confirm Confirmer) *Session {
	t.Helper()
	s, err := New(cfg, nil, confirm)
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	return s
}

func run(t *testing.T, s *Session, lines ...string) {
	t.Helper()
	for _, line := range lines {
		if err := s.Exec(context.Background(), line); err != nil {
			t.Fatalf("%q failed: %v", line, err)
		}
	}
}

func TestNewSessionDefaults(t *testing.T) {
	s := newSession(t, DefaultConfig(), nil)

	if s.Canvas().Width() != 30 || s.Canvas().Height() != 10 {
		t.Errorf("Expected 30x10 canvas, got %dx%d", s.Canvas().Width(), s.Canvas().Height())
	}
	if s.Char() != 'x' {
		t.Errorf("Expected draw char 'x', got %q", s.Char())
	}
	if !s.Running() {
		t.Error("New session should be running")
	}
	if !s.HelpRequested() {
		t.Error("New session should show help")
	}
}

func TestNewSessionInvalidSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 0
	if _, err := New(cfg, nil, nil); !errors.Is(err, canvas.ErrInvalidSize) {
		t.Errorf("Expected ErrInvalidSize, got %v", err)
	}
}

func TestDrawCommands(t *testing.T) {
	s := newSession(t, DefaultConfig(), nil)
	run(t, s,
		"NEW 6 4",
		"CHA #",
		"REC 0 0 5 3",
		"cha .",
		"fill 2 1",
		"CHA /",
		"LIN 0 3 3 0",
	)

	want := strings.Join([]string{
		"###/##",
		"#./..#",
		"#/...#",
		"/#####",
	}, "\n")
	if got := s.Canvas().String(); got != want {
		t.Errorf("Canvas:\n%s\nwant:\n%s", got, want)
	}
}

func TestDrawTwiceIsIdempotent(t *testing.T) {
	once := newSession(t, DefaultConfig(), nil)
	twice := newSession(t, DefaultConfig(), nil)

	for _, line := range []string{"LIN 0 0 29 9", "REC 3 2 20 8"} {
		run(t, once, line)
		run(t, twice, line, line)
	}

	if once.Canvas().String() != twice.Canvas().String() {
		t.Error("Applying a command twice changed the result")
	}
}

func TestNewReplacesCanvas(t *testing.T) {
	s := newSession(t, DefaultConfig(), nil)
	run(t, s, "LIN 0 0 5 0")
	old := s.Canvas()

	run(t, s, "NEW 3 2")
	if s.Canvas() == old {
		t.Fatal("NEW should replace the canvas")
	}
	if s.Canvas().String() != "   \n   " {
		t.Errorf("New canvas should be blank, got %q", s.Canvas().String())
	}
}

func TestErrorsLeaveCanvasUntouched(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxWidth, cfg.MaxHeight = 50, 50
	s := newSession(t, cfg, nil)
	run(t, s, "REC 1 1 8 5")
	before := s.Canvas().String()

	tests := []struct {
		line string
		err  error
	}{
		{"BAD", command.ErrUnknownCommand},
		{"LIN 100", command.ErrMissingParameters},
		{"LIN a b c d", command.ErrTypeMismatch},
		{"FILL 30 0", canvas.ErrOffScreen},
		{"FILL -1 2", canvas.ErrOffScreen},
		{"NEW 0 4", canvas.ErrInvalidSize},
		{"NEW 51 4", ErrCanvasTooLarge},
	}
	for _, tt := range tests {
		err := s.Exec(context.Background(), tt.line)
		if !errors.Is(err, tt.err) {
			t.Errorf("%q: expected %v, got %v", tt.line, tt.err, err)
		}
	}

	if s.Canvas().String() != before {
		t.Error("Failed commands changed the canvas")
	}
	if !s.Running() {
		t.Error("Errors should not end the session")
	}
}

func TestHugeCoordinatesAreRejected(t *testing.T) {
	s := newSession(t, DefaultConfig(), nil)
	before := s.Canvas().String()

	for _, line := range []string{
		"LIN 0 0 20000000000 0",
		"LIN 0 0 9223372036854775807 0",
		"LIN -9223372036854775808 0 0 0",
		"REC 0 0 9223372036854775807 9223372036854775807",
		"REC -9223372036854775808 -9223372036854775808 9223372036854775807 9223372036854775807",
	} {
		if err := s.Exec(context.Background(), line); !errors.Is(err, command.ErrOutOfRange) {
			t.Errorf("%q: expected ErrOutOfRange, got %v", line, err)
		}
	}
	if s.Canvas().String() != before {
		t.Error("Rejected commands changed the canvas")
	}
}

// execWithin fails the test if cmd does not finish within a second.
func execWithin(t *testing.T, s *Session, cmd command.Command) {
	t.Helper()

	done := make(chan error, 1)
	go func() { done <- s.Execute(context.Background(), cmd) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("%#v failed: %v", cmd, err)
		}
	case <-time.After(time.Second):
		t.Fatalf("%#v still running after 1s", cmd)
	}
}

func TestFarEndpointsAreClippedToCanvas(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 6, 4
	s := newSession(t, cfg, nil)

	execWithin(t, s, command.Line{X1: 0, Y1: 0, X2: math.MaxInt, Y2: 0})
	execWithin(t, s, command.Line{X1: math.MinInt, Y1: 3, X2: math.MaxInt, Y2: 3})
	execWithin(t, s, command.Rectangle{X1: math.MinInt, Y1: math.MinInt, X2: math.MaxInt, Y2: math.MaxInt})
	execWithin(t, s, command.Rectangle{X1: 2, Y1: 1, X2: math.MaxInt, Y2: math.MaxInt})
	execWithin(t, s, command.Line{X1: 0, Y1: 0, X2: geom.MaxCoord, Y2: geom.MaxCoord})

	want := strings.Join([]string{
		"xxxxxx",
		" xxxxx",
		"  x   ",
		"xxxxxx",
	}, "\n")
	if s.Canvas().String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", s.Canvas(), want)
	}
}

func TestBlankLineIsIgnored(t *testing.T) {
	s := newSession(t, DefaultConfig(), nil)
	if err := s.Exec(context.Background(), "   "); err != nil {
		t.Errorf("Blank line returned %v", err)
	}
}

func TestHelpAndExit(t *testing.T) {
	s := newSession(t, DefaultConfig(), nil)
	s.DismissHelp()
	if s.HelpRequested() {
		t.Fatal("DismissHelp should hide help")
	}

	run(t, s, "help")
	if !s.HelpRequested() {
		t.Error("HELP should request help")
	}

	run(t, s, "EXIT")
	if s.Running() {
		t.Error("EXIT should stop the session")
	}
}

func TestEveryCommandIsDocumented(t *testing.T) {
	registry, err := helpdata.LoadCommandRegistry()
	if err != nil {
		t.Fatalf("Failed to load command reference: %v", err)
	}
	for _, k := range command.Kinds() {
		if registry.GetByName(k.String()) == nil {
			t.Errorf("%s has no help entry", k)
		}
	}
}
