// Package helpdata provides the embedded command reference and colour theme,
// and utilities for loading them.
package helpdata

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
