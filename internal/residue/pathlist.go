// ABOUTME: Path source pair: locates matching search-path elements and rewrites
// ABOUTME: the path variable without them, preserving the order of the rest
package residue

import (
	"github.com/RomanGlegola/Purge-Python-Environment/internal/program"
)

// PathLocator finds search-path elements matching the query. The handle is
// the literal element text; there is no separate identifier.
type PathLocator struct {
	Env PathEnv
}

// Locate filters the current path list through the match policy.
func (l *PathLocator) Locate(m *program.Matcher) ([]CandidateEntry, error) {
	elements, err := l.Env.List()
	if err != nil {
		return nil, &SourceUnavailableError{Source: SourcePath, Err: err}
	}

	var entries []CandidateEntry
	for _, element := range elements {
		if m.Matches(element) {
			entries = append(entries, CandidateEntry{
				Source:      SourcePath,
				DisplayName: element,
				Handle:      element,
			})
		}
	}
	return entries, nil
}

// PathRemover rebuilds the path variable without the candidate elements.
type PathRemover struct {
	Env PathEnv
}

// Remove reads the path list once, drops every element whose literal text
// equals a candidate handle, and writes the result back once. Relative
// order of the surviving elements is preserved. All candidates share the
// outcome of the single write.
func (r *PathRemover) Remove(entries []CandidateEntry) []RemovalOutcome {
	if len(entries) == 0 {
		return nil
	}

	outcomes := make([]RemovalOutcome, 0, len(entries))
	fail := func(err error) []RemovalOutcome {
		for _, entry := range entries {
			outcomes = append(outcomes, RemovalOutcome{Entry: entry, Error: err.Error()})
		}
		return outcomes
	}

	elements, err := r.Env.List()
	if err != nil {
		return fail(err)
	}

	drop := make(map[string]bool, len(entries))
	for _, entry := range entries {
		drop[entry.Handle] = true
	}

	kept := make([]string, 0, len(elements))
	for _, element := range elements {
		if !drop[element] {
			kept = append(kept, element)
		}
	}

	if err := r.Env.SetList(kept); err != nil {
		return fail(err)
	}

	for _, entry := range entries {
		outcomes = append(outcomes, RemovalOutcome{Entry: entry, Success: true})
	}
	return outcomes
}
