package helpdata

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Theme holds the hex colours used by the full-screen editor.
type Theme struct {
	Border  string `json:"border"`  // Frame around the canvas
	Ruler   string `json:"ruler"`   // Column and row numbers
	Canvas  string `json:"canvas"`  // Drawn characters
	Status  string `json:"status"`  // Status line
	Message string `json:"message"` // Notices such as "Save successful."
	Error   string `json:"error"`   // Error line
	Prompt  string `json:"prompt"`  // Command input
}

// Styles are the tcell styles derived from a Theme.
type Styles struct {
	Border  tcell.Style
	Ruler   tcell.Style
	Canvas  tcell.Style
	Status  tcell.Style
	Message tcell.Style
	Error   tcell.Style
	Prompt  tcell.Style
}

// DefaultTheme returns the embedded theme.
func DefaultTheme() (Theme, error) {
	return Load[Theme]("theme.json")
}

// LoadTheme reads a theme from path. Colours missing from the file keep
// their default values. An empty path returns the default theme.
func LoadTheme(path string) (Theme, error) {
	theme, err := DefaultTheme()
	if err != nil {
		return theme, err
	}
	if path == "" {
		return theme, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return theme, fmt.Errorf("failed to read theme %s: %w", path, err)
	}
	if err := json.Unmarshal(content, &theme); err != nil {
		return theme, fmt.Errorf("failed to parse theme %s: %w", path, err)
	}

	// surface bad colours at startup rather than silently at draw time
	if _, err := theme.Styles(); err != nil {
		return theme, fmt.Errorf("invalid theme %s: %w", path, err)
	}
	return theme, nil
}

// Styles converts every colour of the theme to a foreground style.
func (t Theme) Styles() (Styles, error) {
	var s Styles
	for _, f := range []struct {
		name  string
		hex   string
		style *tcell.Style
	}{
		{"border", t.Border, &s.Border},
		{"ruler", t.Ruler, &s.Ruler},
		{"canvas", t.Canvas, &s.Canvas},
		{"status", t.Status, &s.Status},
		{"message", t.Message, &s.Message},
		{"error", t.Error, &s.Error},
		{"prompt", t.Prompt, &s.Prompt},
	} {
		color, err := ParseHexColor(f.hex)
		if err != nil {
			return s, fmt.Errorf("%s colour: %w", f.name, err)
		}
		*f.style = tcell.StyleDefault.Foreground(color)
	}
	s.Error = s.Error.Bold(true)
	return s, nil
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	return tcell.NewHexColor(int32(rgb)), nil
}
