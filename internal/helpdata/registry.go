package helpdata

import (
	"errors"
	"strings"
)

// CommandRegistry holds loaded command definitions in display order.
type CommandRegistry struct {
	commands []CommandDef
	byName   map[string]*CommandDef
}

// NewCommandRegistry creates a registry from loaded command definitions.
func NewCommandRegistry(commands []CommandDef) *CommandRegistry {
	registry := &CommandRegistry{
		commands: commands,
		byName:   make(map[string]*CommandDef, len(commands)),
	}
	for i := range commands {
		registry.byName[strings.ToUpper(commands[i].Name)] = &commands[i]
	}
	return registry
}

// LoadCommandRegistry loads and creates a registry from the embedded commands.json.
func LoadCommandRegistry() (*CommandRegistry, error) {
	commands, err := LoadCommands()
	if err != nil {
		return nil, err
	}
	if len(commands) == 0 {
		return nil, errors.New("no commands loaded from commands.json")
	}
	return NewCommandRegistry(commands), nil
}

// GetByName returns the definition for a keyword, ignoring case, or nil if
// not found.
func (r *CommandRegistry) GetByName(name string) *CommandDef {
	return r.byName[strings.ToUpper(name)]
}

// All returns all command definitions in display order.
func (r *CommandRegistry) All() []CommandDef {
	return r.commands
}

// Count returns the number of documented commands.
func (r *CommandRegistry) Count() int {
	return len(r.commands)
}

// Usages returns the usage line of every command in display order.
func (r *CommandRegistry) Usages() []string {
	usages := make([]string, len(r.commands))
	for i, c := range r.commands {
		usages[i] = c.Usage
	}
	return usages
}
