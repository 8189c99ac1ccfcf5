package session

import (
	"errors"
	"fmt"
	"os"

	"github.com/samdwyer/charcanvas/internal/canvas"
)

// ErrFileExists is returned by SAVE when the target exists and there is no
// way to ask whether to overwrite it.
var ErrFileExists = errors.New("file already exists")

// save writes the canvas to filename, asking before replacing an existing
// file.
func (s *Session) save(filename string) error {
	info, err := os.Stat(filename)
	switch {
	case err == nil:
		if info.IsDir() {
			return fmt.Errorf("%s is a directory", filename)
		}
		if !s.cfg.AssumeYes {
			if s.confirm == nil {
				return fmt.Errorf("%s: %w", filename, ErrFileExists)
			}
			ok, err := s.confirm.Confirm(fmt.Sprintf("%s already exists.  Overwrite? [y, n]", filename))
			if err != nil {
				return fmt.Errorf("failed to confirm overwrite: %w", err)
			}
			if !ok {
				s.notice = "Save aborted."
				return nil
			}
		}
	case !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("failed to check %s: %w", filename, err)
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	if _, err := s.canvas.WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}

	s.notice = "Save successful."
	return nil
}

// load replaces the canvas with the contents of filename. The canvas is kept
// if anything goes wrong.
func (s *Session) load(filename string) (int, error) {
	info, err := os.Stat(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, fmt.Errorf("%s does not exist", filename)
		}
		return 0, fmt.Errorf("failed to check %s: %w", filename, err)
	}
	if !info.Mode().IsRegular() {
		return 0, fmt.Errorf("%s is not a file", filename)
	}

	f, err := os.Open(filename)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", filename, err)
	}
	defer f.Close()

	c, err := canvas.ReadLimit(f, s.cfg.MaxWidth, s.cfg.MaxHeight)
	if err != nil {
		return 0, fmt.Errorf("failed to load %s: %w", filename, err)
	}

	s.canvas = c
	s.notice = "Load successful."
	return c.Width() * c.Height(), nil
}
