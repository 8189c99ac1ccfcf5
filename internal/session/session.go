// Package session holds the state of one editing session and executes
// commands against it.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/charcanvas/internal/canvas"
	"github.com/samdwyer/charcanvas/internal/command"
	"github.com/samdwyer/charcanvas/internal/geom"
	"github.com/samdwyer/charcanvas/internal/telemetry"
)

// ErrCanvasTooLarge is returned when NEW or LOAD would exceed the configured
// maximum canvas size.
var ErrCanvasTooLarge = canvas.ErrTooLarge

// Session holds the canvas, the drawing character and the flags the front
// end renders from. It is not safe for concurrent use.
type Session struct {
	id      uuid.UUID
	cfg     Config
	logger  *log.Logger
	confirm Confirmer

	canvas   *canvas.Canvas
	char     rune
	running  bool
	showHelp bool
	notice   string
}

// New creates a session with a blank canvas. confirm is asked before SAVE
// overwrites an existing file; if it is nil, existing files are never
// overwritten unless cfg.AssumeYes is set.
func New(cfg Config, logger *log.Logger, confirm Confirmer) (*Session, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if cfg.Char == 0 {
		cfg.Char = DefaultConfig().Char
	}

	s := &Session{
		id:       uuid.New(),
		cfg:      cfg,
		logger:   logger,
		confirm:  confirm,
		char:     cfg.Char,
		running:  true,
		showHelp: true,
	}

	c, err := s.newCanvas(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	s.canvas = c

	return s, nil
}

// ID returns the identifier attached to this session's traces.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Canvas returns the current canvas. It is replaced by NEW and LOAD.
func (s *Session) Canvas() *canvas.Canvas {
	return s.canvas
}

// Char returns the current drawing character.
func (s *Session) Char() rune {
	return s.char
}

// Running returns false once EXIT has been executed.
func (s *Session) Running() bool {
	return s.running
}

// HelpRequested returns true if the command reference should be shown.
func (s *Session) HelpRequested() bool {
	return s.showHelp
}

// DismissHelp hides the command reference until HELP is run again.
func (s *Session) DismissHelp() {
	s.showHelp = false
}

// TakeNotice returns the informational message left by the last command, if
// any, and clears it.
func (s *Session) TakeNotice() string {
	n := s.notice
	s.notice = ""
	return n
}

// Exec parses and executes a line of input. Blank lines are ignored.
func (s *Session) Exec(ctx context.Context, line string) error {
	cmd, err := command.Parse(line)
	if err != nil {
		if errors.Is(err, command.ErrEmptyInput) {
			return nil
		}
		s.logger.Printf("session %s: rejected %q: %v", s.id, line, err)
		return err
	}
	return s.Execute(ctx, cmd)
}

// Execute applies cmd to the session. Errors leave the canvas unchanged.
func (s *Session) Execute(ctx context.Context, cmd command.Command) error {
	tracer := telemetry.Tracer("session")
	_, span := tracer.Start(ctx, "command."+strings.ToLower(cmd.Kind().String()))
	defer span.End()

	span.SetAttributes(
		telemetry.SessionIDKey.String(s.id.String()),
		telemetry.CommandKindKey.String(cmd.Kind().String()),
	)

	written, err := s.execute(cmd)
	span.SetAttributes(telemetry.CanvasSize(s.canvas.Width(), s.canvas.Height())...)
	span.SetAttributes(telemetry.CellsWrittenKey.Int(written))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.Printf("session %s: %s failed: %v", s.id, cmd.Kind(), err)
		return err
	}

	s.logger.Printf("session %s: %s ok, %d cells written", s.id, cmd.Kind(), written)
	return nil
}

// execute dispatches cmd and returns the number of canvas cells written.
func (s *Session) execute(cmd command.Command) (int, error) {
	switch cmd := cmd.(type) {
	case command.New:
		c, err := s.newCanvas(cmd.W, cmd.H)
		if err != nil {
			return 0, err
		}
		s.canvas = c
		return 0, nil

	case command.ChangeChar:
		s.char = cmd.Char
		return 0, nil

	case command.Line:
		line := geom.NewLine(geom.Pt(cmd.X1, cmd.Y1), geom.Pt(cmd.X2, cmd.Y2))
		return s.canvas.Plot(line, s.char), nil

	case command.Rectangle:
		rect := geom.NewRectangle(geom.Pt(cmd.X1, cmd.Y1), geom.Pt(cmd.X2, cmd.Y2))
		return s.canvas.Plot(rect, s.char), nil

	case command.Fill:
		return s.canvas.Fill(cmd.X, cmd.Y, s.char)

	case command.Help:
		s.showHelp = true
		return 0, nil

	case command.Save:
		return 0, s.save(cmd.Filename)

	case command.Load:
		return s.load(cmd.Filename)

	case command.Exit:
		s.running = false
		return 0, nil

	default:
		return 0, fmt.Errorf("unsupported command %s", cmd.Kind())
	}
}

// newCanvas creates a blank canvas within the configured limits.
func (s *Session) newCanvas(w, h int) (*canvas.Canvas, error) {
	if err := s.checkSize(w, h); err != nil {
		return nil, err
	}
	return canvas.New(w, h)
}

func (s *Session) checkSize(w, h int) error {
	if (s.cfg.MaxWidth > 0 && w > s.cfg.MaxWidth) || (s.cfg.MaxHeight > 0 && h > s.cfg.MaxHeight) {
		return fmt.Errorf("%w: %dx%d exceeds %dx%d", ErrCanvasTooLarge, w, h, s.cfg.MaxWidth, s.cfg.MaxHeight)
	}
	return nil
}
