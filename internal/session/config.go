package session

// Config holds session options.
type Config struct {
	// Char is the drawing character a session starts with.
	Char rune
	// Width and Height size the canvas a session starts with.
	Width, Height int
	// MaxWidth and MaxHeight bound canvases created by NEW or LOAD. Zero means
	// no limit.
	MaxWidth, MaxHeight int
	// AssumeYes overwrites existing files on SAVE without asking.
	AssumeYes bool
}

// DefaultConfig returns the options used when none are given.
func DefaultConfig() Config {
	return Config{
		Char:      'x',
		Width:     30,
		Height:    10,
		MaxWidth:  1000,
		MaxHeight: 1000,
	}
}
