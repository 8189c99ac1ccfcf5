package command

import (
	"errors"
	"fmt"

	"github.com/samdwyer/charcanvas/internal/geom"
)

var (
	// ErrEmptyInput is returned for a line with no tokens.
	ErrEmptyInput = errors.New("empty input")
	// ErrUnknownCommand is returned when the keyword is not a known command.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrMissingParameters is returned when a command has the wrong number of
	// parameters.
	ErrMissingParameters = errors.New("missing parameters")
	// ErrTypeMismatch is returned when a parameter cannot be converted to the
	// type the command expects.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrOutOfRange is returned when an integer parameter is larger in
	// magnitude than geom.MaxCoord.
	ErrOutOfRange = errors.New("parameter out of range")
)

// ParseError describes why a line could not be turned into a command. Use
// errors.Is with one of the Err* values above to check the reason.
type ParseError struct {
	// Reason is one of the Err* values above.
	Reason error
	// Kind is the command being parsed. It is meaningless when Reason is
	// ErrEmptyInput or ErrUnknownCommand.
	Kind Kind
	// Name is the keyword as the user typed it.
	Name string
	// Suggestion is the closest known keyword for an unknown command, if any.
	Suggestion string
	// Cause is the underlying conversion error, if any.
	Cause error
}

func (e *ParseError) Error() string {
	switch e.Reason {
	case ErrEmptyInput:
		return "no command given"
	case ErrUnknownCommand:
		if e.Suggestion != "" {
			return fmt.Sprintf("invalid command name %q, did you mean %s?", e.Name, e.Suggestion)
		}
		return fmt.Sprintf("invalid command name %q", e.Name)
	case ErrMissingParameters:
		return fmt.Sprintf("missing parameters for %s command", e.Kind)
	case ErrTypeMismatch:
		return fmt.Sprintf("parameters for %s command must be integers", e.Kind)
	case ErrOutOfRange:
		return fmt.Sprintf("parameters for %s command must be between %d and %d", e.Kind, -geom.MaxCoord, geom.MaxCoord)
	default:
		return fmt.Sprintf("invalid %s command", e.Kind)
	}
}

func (e *ParseError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Reason}
	}
	return []error{e.Reason, e.Cause}
}

func missingParameters(k Kind) error {
	return &ParseError{Reason: ErrMissingParameters, Kind: k, Name: k.String()}
}

func typeMismatch(k Kind, cause error) error {
	return &ParseError{Reason: ErrTypeMismatch, Kind: k, Name: k.String(), Cause: cause}
}

func outOfRange(k Kind, cause error) error {
	return &ParseError{Reason: ErrOutOfRange, Kind: k, Name: k.String(), Cause: cause}
}
