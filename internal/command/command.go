package command

import (
	"errors"
	"strconv"
	"unicode/utf8"

	"github.com/samdwyer/charcanvas/internal/geom"
)

// Command is one of the typed commands below. The set is closed.
type Command interface {
	// Kind returns the keyword the command was parsed from.
	Kind() Kind

	command()
}

// New replaces the canvas with a blank W x H one.
type New struct {
	W, H int
}

// ChangeChar sets the drawing character.
type ChangeChar struct {
	Char rune
}

// Line draws a line between two points.
type Line struct {
	X1, Y1, X2, Y2 int
}

// Rectangle draws the outline of the rectangle spanned by two corners.
type Rectangle struct {
	X1, Y1, X2, Y2 int
}

// Fill flood-fills the region containing (X, Y).
type Fill struct {
	X, Y int
}

// Help shows the command reference.
type Help struct{}

// Save writes the canvas to Filename.
type Save struct {
	Filename string
}

// Load replaces the canvas with the contents of Filename.
type Load struct {
	Filename string
}

// Exit ends the session.
type Exit struct{}

func (New) Kind() Kind        { return KindNew }
func (ChangeChar) Kind() Kind { return KindChangeChar }
func (Line) Kind() Kind       { return KindLine }
func (Rectangle) Kind() Kind  { return KindRectangle }
func (Fill) Kind() Kind       { return KindFill }
func (Help) Kind() Kind       { return KindHelp }
func (Save) Kind() Kind       { return KindSave }
func (Load) Kind() Kind       { return KindLoad }
func (Exit) Kind() Kind       { return KindExit }

func (New) command()        {}
func (ChangeChar) command() {}
func (Line) command()       {}
func (Rectangle) command()  {}
func (Fill) command()       {}
func (Help) command()       {}
func (Save) command()       {}
func (Load) command()       {}
func (Exit) command()       {}

type converter func(Raw) (Command, error)

// converters maps each kind to the function that validates its parameters.
var converters = [numKinds]converter{
	KindNew: func(raw Raw) (Command, error) {
		v, err := ints(raw, 2)
		if err != nil {
			return nil, err
		}
		return New{W: v[0], H: v[1]}, nil
	},
	KindChangeChar: func(raw Raw) (Command, error) {
		if len(raw.Params) == 0 || raw.Params[0] == "" {
			return nil, missingParameters(raw.Kind)
		}
		// extra characters in the token are dropped
		r, _ := utf8.DecodeRuneInString(raw.Params[0])
		return ChangeChar{Char: r}, nil
	},
	KindLine: func(raw Raw) (Command, error) {
		v, err := ints(raw, 4)
		if err != nil {
			return nil, err
		}
		return Line{X1: v[0], Y1: v[1], X2: v[2], Y2: v[3]}, nil
	},
	KindRectangle: func(raw Raw) (Command, error) {
		v, err := ints(raw, 4)
		if err != nil {
			return nil, err
		}
		return Rectangle{X1: v[0], Y1: v[1], X2: v[2], Y2: v[3]}, nil
	},
	KindFill: func(raw Raw) (Command, error) {
		v, err := ints(raw, 2)
		if err != nil {
			return nil, err
		}
		return Fill{X: v[0], Y: v[1]}, nil
	},
	KindHelp: func(Raw) (Command, error) {
		return Help{}, nil
	},
	KindSave: func(raw Raw) (Command, error) {
		if len(raw.Params) == 0 {
			return nil, missingParameters(raw.Kind)
		}
		return Save{Filename: raw.Params[0]}, nil
	},
	KindLoad: func(raw Raw) (Command, error) {
		if len(raw.Params) == 0 {
			return nil, missingParameters(raw.Kind)
		}
		return Load{Filename: raw.Params[0]}, nil
	},
	KindExit: func(Raw) (Command, error) {
		return Exit{}, nil
	},
}

// ints converts exactly n parameters to integers no larger in magnitude than
// geom.MaxCoord. A wrong count is reported before any conversion is attempted.
func ints(raw Raw, n int) ([]int, error) {
	if len(raw.Params) != n {
		return nil, missingParameters(raw.Kind)
	}

	values := make([]int, n)
	for i, p := range raw.Params {
		v, err := strconv.Atoi(p)
		if errors.Is(err, strconv.ErrRange) {
			return nil, outOfRange(raw.Kind, err)
		}
		if err != nil {
			return nil, typeMismatch(raw.Kind, err)
		}
		if v < -geom.MaxCoord || v > geom.MaxCoord {
			return nil, outOfRange(raw.Kind, nil)
		}
		values[i] = v
	}
	return values, nil
}

// ToTyped validates the parameters of raw and builds the matching command.
func ToTyped(raw Raw) (Command, error) {
	if raw.Kind < 0 || raw.Kind >= numKinds {
		return nil, &ParseError{Reason: ErrUnknownCommand, Name: raw.Kind.String()}
	}
	return converters[raw.Kind](raw)
}

// Parse tokenizes and validates a line of input.
func Parse(line string) (Command, error) {
	raw, err := ParseRaw(line)
	if err != nil {
		return nil, err
	}
	return ToTyped(raw)
}
