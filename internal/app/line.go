package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/samdwyer/charcanvas/internal/session"
	"github.com/samdwyer/charcanvas/internal/ui"
)

const (
	// clearScreen moves the cursor home and clears the terminal.
	clearScreen = "\033[H\033[2J"

	// maxLineLength is the longest command line, in bytes, that line mode
	// accepts.
	maxLineLength = 64 * 1024
)

var errLineTooLong = fmt.Errorf("input line longer than %d bytes", maxLineLength)

// lineReader reads input one line at a time. Unlike bufio.Scanner it can
// skip past a line that is too long and keep going.
type lineReader struct {
	r *bufio.Reader
}

// next returns the next line without its terminator. A line longer than
// maxLineLength is consumed and reported as errLineTooLong.
func (lr lineReader) next() (string, error) {
	var buf []byte
	tooLong := false
	for {
		chunk, isPrefix, err := lr.r.ReadLine()
		if err != nil {
			return "", err
		}
		if !tooLong && len(buf)+len(chunk) <= maxLineLength {
			buf = append(buf, chunk...)
		} else {
			tooLong, buf = true, nil
		}
		if !isPrefix {
			break
		}
	}
	if tooLong {
		return "", errLineTooLong
	}
	return string(buf), nil
}

// RunLine runs a session that reads one command per line from in and writes
// the framed canvas to out after every command. It returns when EXIT is
// executed or in is exhausted.
func (a *App) RunLine(ctx context.Context, in io.Reader, out io.Writer) error {
	lines := lineReader{r: bufio.NewReader(in)}

	confirm := session.ConfirmFunc(func(question string) (bool, error) {
		fmt.Fprintf(out, "%s > ", question)
		line, err := lines.next()
		switch {
		case errors.Is(err, errLineTooLong):
			return false, nil
		case errors.Is(err, io.EOF):
			return false, nil
		case err != nil:
			return false, err
		}
		answer := strings.ToUpper(strings.TrimSpace(line))
		return answer == "Y" || answer == "YES", nil
	})

	s, err := a.startSession(ctx, confirm)
	if err != nil {
		return err
	}

	var lastErr error
	for s.Running() {
		if err := ctx.Err(); err != nil {
			return err
		}

		a.printFrame(out, s, lastErr)
		lastErr = nil

		fmt.Fprint(out, ui.Prompt)
		line, err := lines.next()
		if errors.Is(err, errLineTooLong) {
			lastErr = err
			continue
		}
		if err != nil {
			fmt.Fprintln(out)
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		lastErr = s.Exec(ctx, line)
	}

	return nil
}

// printFrame writes one tick of line mode output.
func (a *App) printFrame(out io.Writer, s *session.Session, lastErr error) {
	if !a.cfg.NoClear {
		fmt.Fprint(out, clearScreen)
	}
	fmt.Fprint(out, ui.Frame(s.Canvas()))

	if s.HelpRequested() {
		if err := ui.WriteHelp(out, a.help); err != nil {
			a.logger.Printf("failed to write help: %v", err)
		}
		s.DismissHelp()
	}
	if notice := s.TakeNotice(); notice != "" {
		fmt.Fprintln(out, notice)
	}
	if lastErr != nil {
		fmt.Fprintf(out, "error: %v\n", lastErr)
		if usage := a.usageHint(lastErr); usage != "" {
			fmt.Fprintf(out, "usage: %s\n", usage)
		}
	}
}
