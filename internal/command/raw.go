package command

import "strings"

// Raw is a tokenized line: a known kind and its positional parameters, not
// yet validated.
type Raw struct {
	Kind   Kind
	Params []string
}

// ParseRaw splits line on whitespace. The first token must name a known
// command; the rest become the parameters in order.
func ParseRaw(line string) (Raw, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Raw{}, &ParseError{Reason: ErrEmptyInput}
	}

	name := fields[0]
	kind, ok := ParseKind(name)
	if !ok {
		return Raw{}, &ParseError{
			Reason:     ErrUnknownCommand,
			Name:       name,
			Suggestion: Suggest(name),
		}
	}

	return Raw{Kind: kind, Params: fields[1:]}, nil
}
