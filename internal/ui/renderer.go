package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/charcanvas/internal/canvas"
	"github.com/samdwyer/charcanvas/internal/helpdata"
)

// Prompt is drawn before the command input.
const Prompt = "> "

// View is everything the full-screen renderer draws in one frame.
type View struct {
	Canvas *canvas.Canvas
	Char   rune
	// Help lists usage lines to show beside the canvas; nil hides the panel.
	Help []string
	// Message is a notice or question shown below the canvas.
	Message string
	// Err is shown instead of Message when set.
	Err   error
	Input string
}

// Layout offsets of the canvas within the screen.
const (
	canvasX = 1 // after the left border
	canvasY = 2 // after the ruler and the top border
)

// Renderer handles drawing the editor to the screen.
type Renderer struct {
	screen *Screen
	styles helpdata.Styles
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, styles helpdata.Styles) *Renderer {
	return &Renderer{screen: screen, styles: styles}
}

// Render draws v to the screen. Parts that do not fit the terminal are
// clipped.
func (r *Renderer) Render(v View) {
	r.screen.Clear()
	_, height := r.screen.Size()

	c := v.Canvas
	w, h := c.Width(), c.Height()

	// Column ruler
	for x := 0; x < w; x++ {
		r.screen.SetContent(canvasX+x, 0, rune('0'+x%10), r.styles.Ruler)
	}

	r.drawBorder(w, h)

	// Canvas cells and row numbers
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			ch, _ := c.Get(x, y)
			r.screen.SetContent(canvasX+x, canvasY+y, cellGlyph(ch), r.styles.Canvas)
		}
		r.text(canvasX+w+2, canvasY+y, fmt.Sprint(y), r.styles.Ruler)
	}

	// Help panel
	if v.Help != nil {
		helpX := canvasX + w + 8
		r.text(helpX, 0, "Commands", r.styles.Status.Bold(true))
		for i, usage := range v.Help {
			r.text(helpX, canvasY+i, usage, r.styles.Status)
		}
	}

	below := canvasY + h + 1
	r.text(0, below, fmt.Sprintf("char '%c'  canvas %dx%d", cellGlyph(v.Char), w, h), r.styles.Status)

	switch {
	case v.Err != nil:
		r.text(0, below+1, "error: "+v.Err.Error(), r.styles.Error)
	case v.Message != "":
		r.text(0, below+1, v.Message, r.styles.Message)
	}

	inputY := max(height-1, below+2)
	end := r.text(0, inputY, Prompt+v.Input, r.styles.Prompt)
	r.screen.ShowCursor(end, inputY)

	r.screen.Show()
}

// drawBorder draws a double-line box around a w x h canvas.
func (r *Renderer) drawBorder(w, h int) {
	style := r.styles.Border
	left, right := canvasX-1, canvasX+w
	top, bottom := canvasY-1, canvasY+h

	for x := canvasX; x < canvasX+w; x++ {
		r.screen.SetContent(x, top, '═', style)
		r.screen.SetContent(x, bottom, '═', style)
	}
	for y := canvasY; y < canvasY+h; y++ {
		r.screen.SetContent(left, y, '║', style)
		r.screen.SetContent(right, y, '║', style)
	}
	r.screen.SetContent(left, top, '╔', style)
	r.screen.SetContent(right, top, '╗', style)
	r.screen.SetContent(left, bottom, '╚', style)
	r.screen.SetContent(right, bottom, '╝', style)
}

// text draws s at (x, y), clipped to the screen width, and returns the
// column after it.
func (r *Renderer) text(x, y int, s string, style tcell.Style) int {
	width, _ := r.screen.Size()
	return drawString(func(x, y int, ch rune) {
		r.screen.SetContent(x, y, ch, style)
	}, x, y, width, s)
}
