// Package command parses lines of user input into typed editor commands.
package command

import "strings"

// Kind identifies a command by its keyword.
type Kind int

const (
	// KindNew replaces the canvas with a blank one.
	KindNew Kind = iota
	// KindChangeChar sets the character used for drawing.
	KindChangeChar
	// KindLine draws a line.
	KindLine
	// KindRectangle draws a rectangle outline.
	KindRectangle
	// KindFill flood-fills a region.
	KindFill
	// KindHelp shows the command reference.
	KindHelp
	// KindSave writes the canvas to a file.
	KindSave
	// KindLoad reads the canvas from a file.
	KindLoad
	// KindExit ends the session.
	KindExit

	numKinds
)

var kindNames = [numKinds]string{
	KindNew:        "NEW",
	KindChangeChar: "CHA",
	KindLine:       "LIN",
	KindRectangle:  "REC",
	KindFill:       "FILL",
	KindHelp:       "HELP",
	KindSave:       "SAVE",
	KindLoad:       "LOAD",
	KindExit:       "EXIT",
}

// String returns the command keyword.
func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "UNKNOWN"
	}
	return kindNames[k]
}

// Kinds returns every known kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, numKinds)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// ParseKind looks up a keyword, ignoring case.
func ParseKind(name string) (Kind, bool) {
	upper := strings.ToUpper(name)
	for k, n := range kindNames {
		if n == upper {
			return Kind(k), true
		}
	}
	return 0, false
}
