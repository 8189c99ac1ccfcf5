// Package config defines the command line and config file options.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/adrg/xdg"

	"github.com/samdwyer/charcanvas/internal/session"
)

// Config holds every option accepted on the command line. The same flags may
// be placed in the config file.
type Config struct {
	// Char is the drawing character at startup.
	Char string `short:"c" default:"x" help:"Drawing character at startup."`
	// Width and Height size the canvas at startup.
	Width  int `short:"W" default:"30" help:"Canvas width at startup."`
	Height int `short:"H" default:"10" help:"Canvas height at startup."`
	// MaxWidth and MaxHeight bound the canvases NEW and LOAD may create.
	MaxWidth  int `default:"1000" help:"Largest canvas width NEW and LOAD may create."`
	MaxHeight int `default:"1000" help:"Largest canvas height NEW and LOAD may create."`

	// TUI selects the full-screen editor instead of line mode.
	TUI bool `name:"tui" short:"t" help:"Run the full-screen editor instead of line mode."`
	// Yes overwrites existing files on SAVE without asking.
	Yes bool `short:"y" help:"Overwrite existing files on SAVE without asking."`
	// NoClear keeps line mode from clearing the terminal before each frame.
	NoClear bool `help:"Do not clear the terminal before each frame in line mode."`
	// Theme is a JSON file overriding the full-screen colours.
	Theme string `type:"path" help:"JSON file overriding the full-screen editor colours."`
	// LogFile receives the session log. No log is written if it is empty.
	LogFile string `short:"l" type:"path" help:"File to append the session log to."`
	// Telemetry exports traces when an OTLP endpoint is configured.
	Telemetry bool `negatable:"" default:"true" help:"Export traces when an OTLP endpoint is configured."`

	// File is loaded into the canvas at startup.
	File string `arg:"" optional:"" type:"path" help:"Text file to load at startup."`
}

// Check checks option values kong cannot check by itself.
func (c Config) Check() error {
	if utf8.RuneCountInString(c.Char) != 1 {
		return fmt.Errorf("--char must be a single character, got %q", c.Char)
	}
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.MaxWidth < c.Width || c.MaxHeight < c.Height {
		return fmt.Errorf("canvas size %dx%d exceeds the maximum %dx%d", c.Width, c.Height, c.MaxWidth, c.MaxHeight)
	}
	return nil
}

// Session returns the session options described by c.
func (c Config) Session() session.Config {
	ch, _ := utf8.DecodeRuneInString(c.Char)
	return session.Config{
		Char:      ch,
		Width:     c.Width,
		Height:    c.Height,
		MaxWidth:  c.MaxWidth,
		MaxHeight: c.MaxHeight,
		AssumeYes: c.Yes,
	}
}

// Frontend names the selected front end: "tui" or "line".
func (c Config) Frontend() string {
	if c.TUI {
		return "tui"
	}
	return "line"
}

// ConfigFileName is the config file's path relative to the XDG config
// directories.
var ConfigFileName = filepath.Join("charcanvas", "charcanvas.conf")

// LoadFileArgs reads the config file, if there is one, and returns its
// whitespace separated contents as arguments to prepend to the command line.
func LoadFileArgs() ([]string, error) {
	path, err := xdg.SearchConfigFile(ConfigFileName)
	if err != nil {
		// SearchConfigFile fails when no config directory has the file
		return nil, nil
	}
	return ReadArgs(path)
}

// ReadArgs returns the whitespace separated contents of the file at path.
// A missing file yields no arguments.
func ReadArgs(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return strings.Fields(string(b)), nil
}
