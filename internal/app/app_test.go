package app

import (
	"github.com/samdwyer/charcanvas/internal/config"
)

// testConfig returns the options kong would produce with no arguments, with
// terminal clearing turned off.
func testConfig() config.Config {
	return config.Config{
		Char:      "x",
		Width:     10,
		Height:    5,
		MaxWidth:  100,
		MaxHeight: 100,
		NoClear:   true,
	}
}
