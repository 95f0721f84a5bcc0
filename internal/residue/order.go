// ABOUTME: Version-aware ordering of candidate entries for reports and plans
// ABOUTME: Semver comparison when both versions parse, lexicographic fallback
package residue

import (
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// SortNewestFirst orders candidates so higher-versioned entries come first.
// The version is taken from the last whitespace-separated field of the
// display name; entries without one keep their relative order. Semver
// comparison applies when both sides parse, lexicographic otherwise.
func SortNewestFirst(entries []CandidateEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return versionGreater(displayVersion(entries[i].DisplayName), displayVersion(entries[j].DisplayName))
	})
}

func displayVersion(display string) string {
	fields := strings.Fields(display)
	if len(fields) < 2 {
		return ""
	}
	return fields[len(fields)-1]
}

func versionGreater(a, b string) bool {
	if a == "" || b == "" {
		return false
	}

	av, aErr := semver.NewVersion(a)
	bv, bErr := semver.NewVersion(b)
	if aErr == nil && bErr == nil {
		return av.GreaterThan(bv)
	}

	return a > b
}
