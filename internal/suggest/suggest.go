// ABOUTME: Closest-name suggestion for runs that match nothing
// ABOUTME: Levenshtein distance normalized by length, case-insensitive
package suggest

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxDistance is the normalized edit-distance cutoff: anything further
// than this fraction of the longer string is not worth suggesting.
const maxDistance = 0.5

// Closest returns the candidate nearest to target, or false when nothing
// is close enough to be a plausible misspelling.
func Closest(target string, candidates []string) (string, bool) {
	best := ""
	bestScore := maxDistance

	upperTarget := strings.ToUpper(target)
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		upper := strings.ToUpper(candidate)
		score := normalizedDistance(upperTarget, upper)
		// Display names usually trail a version; the bare name is the
		// better comparison target for a misspelled program name.
		if fields := strings.Fields(upper); len(fields) > 1 {
			if s := normalizedDistance(upperTarget, fields[0]); s < score {
				score = s
			}
		}
		if score < bestScore {
			best = candidate
			bestScore = score
		}
	}

	return best, best != ""
}

func normalizedDistance(a, b string) float64 {
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 0
	}
	return float64(levenshtein.ComputeDistance(a, b)) / float64(maxLen)
}
