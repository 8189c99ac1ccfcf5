package command

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// maxSuggestDistance is the largest edit distance for which a keyword is
// still offered as a correction.
const maxSuggestDistance = 2

// Suggest returns the known keyword closest to name, or "" if none is close
// enough. Ties go to the keyword declared first.
func Suggest(name string) string {
	upper := strings.ToUpper(name)

	best, bestDist := "", maxSuggestDistance+1
	for _, k := range Kinds() {
		kw := k.String()
		if d := fuzzy.LevenshteinDistance(upper, kw); d < bestDist {
			best, bestDist = kw, d
		}
	}

	// a long keyword typed out in full ("RECTANGLE", "LINE") is more than two
	// edits away but still clearly meant
	if best == "" {
		for _, k := range Kinds() {
			kw := k.String()
			if len(upper) > len(kw) && strings.HasPrefix(upper, kw) {
				return kw
			}
		}
	}

	return best
}
