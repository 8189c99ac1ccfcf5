package helpdata

// CommandDef documents one editor command, loaded from JSON.
type CommandDef struct {
	Name    string `json:"name"`    // Keyword (e.g., "LIN")
	Usage   string `json:"usage"`   // Synopsis with placeholders (e.g., "LIN <x1> <y1> <x2> <y2>")
	Summary string `json:"summary"` // One sentence describing the effect
}

// LoadCommands loads all command definitions from the embedded commands.json.
func LoadCommands() ([]CommandDef, error) {
	return Load[[]CommandDef]("commands.json")
}
