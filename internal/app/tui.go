package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/charcanvas/internal/command"
	"github.com/samdwyer/charcanvas/internal/helpdata"
	"github.com/samdwyer/charcanvas/internal/session"
	"github.com/samdwyer/charcanvas/internal/ui"
)

// errScreenClosed is returned when the screen stops delivering events while a
// question is pending.
var errScreenClosed = errors.New("screen closed")

// tui is the state of the full-screen editor.
type tui struct {
	app      *App
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *session.Session

	input   []rune
	message string
	err     error
}

// RunTUI runs a session on screen until EXIT or Ctrl-C.
func (a *App) RunTUI(ctx context.Context, screen *ui.Screen, styles helpdata.Styles) error {
	t := &tui{
		app:      a,
		screen:   screen,
		renderer: ui.NewRenderer(screen, styles),
	}

	s, err := a.startSession(ctx, session.ConfirmFunc(t.confirm))
	if err != nil {
		return err
	}
	t.session = s

	for t.session.Running() {
		if err := ctx.Err(); err != nil {
			return err
		}

		t.render()

		ev := t.screen.PollEvent()
		if ev == nil {
			return nil
		}
		t.handleEvent(ctx, ev)
	}

	return nil
}

// render draws the current state.
func (t *tui) render() {
	if notice := t.session.TakeNotice(); notice != "" {
		t.message = notice
	}

	view := ui.View{
		Canvas:  t.session.Canvas(),
		Char:    t.session.Char(),
		Message: t.message,
		Err:     t.err,
		Input:   string(t.input),
	}
	if t.session.HelpRequested() {
		view.Help = t.app.help.Usages()
	}
	t.renderer.Render(view)
}

// handleEvent processes a single input event.
func (t *tui) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		t.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		t.screen.Sync()
	}
}

// handleKeyEvent edits the input line and executes it on Enter.
func (t *tui) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		t.exec(ctx, command.Exit{})

	case tcell.KeyEscape:
		t.input = t.input[:0]
		t.message, t.err = "", nil

	case tcell.KeyEnter:
		line := string(t.input)
		t.input = t.input[:0]
		t.message, t.err = "", nil

		cmd, err := command.Parse(line)
		if errors.Is(err, command.ErrEmptyInput) {
			return
		}
		if err != nil {
			t.app.logger.Printf("session %s: rejected %q: %v", t.session.ID(), line, err)
			if usage := t.app.usageHint(err); usage != "" {
				err = fmt.Errorf("%w (usage: %s)", err, usage)
			}
			t.err = err
			return
		}
		// the help panel stays up only until the next command
		if cmd.Kind() != command.KindHelp {
			t.session.DismissHelp()
		}
		t.exec(ctx, cmd)

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(t.input) > 0 {
			t.input = t.input[:len(t.input)-1]
		}

	case tcell.KeyRune:
		t.input = append(t.input, ev.Rune())
	}
}

func (t *tui) exec(ctx context.Context, cmd command.Command) {
	if err := t.session.Execute(ctx, cmd); err != nil {
		t.err = err
	}
}

// confirm asks a yes/no question on the message line and waits for y or n.
// Esc answers no.
func (t *tui) confirm(question string) (bool, error) {
	saved := t.message
	t.message = question + " "
	defer func() { t.message = saved }()

	for {
		t.render()

		ev := t.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return false, errScreenClosed
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape:
				return false, nil
			case ev.Key() == tcell.KeyRune && (ev.Rune() == 'y' || ev.Rune() == 'Y'):
				return true, nil
			case ev.Key() == tcell.KeyRune && (ev.Rune() == 'n' || ev.Rune() == 'N'):
				return false, nil
			}
		}
	}
}
