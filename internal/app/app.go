// Package app runs an editing session in line mode or as a full-screen
// terminal editor.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/samdwyer/charcanvas/internal/command"
	"github.com/samdwyer/charcanvas/internal/config"
	"github.com/samdwyer/charcanvas/internal/helpdata"
	"github.com/samdwyer/charcanvas/internal/session"
	"github.com/samdwyer/charcanvas/internal/telemetry"
	"github.com/samdwyer/charcanvas/internal/ui"
)

// App holds what every front end shares.
type App struct {
	cfg    config.Config
	logger *log.Logger
	help   *helpdata.CommandRegistry
}

// New creates an app. A nil logger discards the session log.
func New(cfg config.Config, logger *log.Logger) (*App, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	help, err := helpdata.LoadCommandRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to load command reference: %w", err)
	}

	return &App{
		cfg:    cfg,
		logger: logger,
		help:   help,
	}, nil
}

// Run starts the front end selected by the configuration on the process's
// terminal.
func (a *App) Run(ctx context.Context) error {
	if !a.cfg.TUI {
		return a.RunLine(ctx, os.Stdin, os.Stdout)
	}

	theme, err := helpdata.LoadTheme(a.cfg.Theme)
	if err != nil {
		return err
	}
	styles, err := theme.Styles()
	if err != nil {
		return err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	defer screen.Close()

	return a.RunTUI(ctx, screen, styles)
}

// usageHint returns the usage line of the command a parameter error is
// about, or "" for any other error.
func (a *App) usageHint(err error) string {
	var pe *command.ParseError
	if !errors.As(err, &pe) {
		return ""
	}
	switch pe.Reason {
	case command.ErrMissingParameters, command.ErrTypeMismatch, command.ErrOutOfRange:
	default:
		return ""
	}

	def := a.help.GetByName(pe.Kind.String())
	if def == nil {
		return ""
	}
	return def.Usage
}

// startSession creates the session and loads the startup file, if any.
func (a *App) startSession(ctx context.Context, confirm session.Confirmer) (*session.Session, error) {
	tracer := telemetry.Tracer("app")
	ctx, span := tracer.Start(ctx, "app.init")
	defer span.End()

	s, err := session.New(a.cfg.Session(), a.logger, confirm)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(
		telemetry.SessionIDKey.String(s.ID().String()),
		telemetry.FrontendKey.String(a.cfg.Frontend()),
	)
	span.SetAttributes(telemetry.CanvasSize(s.Canvas().Width(), s.Canvas().Height())...)

	if a.cfg.File != "" {
		if err := s.Exec(ctx, "LOAD "+a.cfg.File); err != nil {
			return nil, err
		}
	}

	a.logger.Printf("session %s started", s.ID())
	return s, nil
}
