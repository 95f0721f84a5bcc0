// ABOUTME: Directory source pair: walks the scan root for matching directory
// ABOUTME: names and force-deletes the trees behind them
package residue

import (
	"io/fs"

	"github.com/RomanGlegola/Purge-Python-Environment/internal/program"
)

// DirectoryLocator finds directories under Root whose name matches the
// query. Matching uses the shared match policy, version token included,
// even though leaf directory names rarely embed a version.
type DirectoryLocator struct {
	Tree FileTree
	Root string
}

// Locate walks the tree and collects matching directories. Descent stops
// at a matched directory: its children are deleted with it, so walking
// them would only produce candidates that are gone by removal time.
func (l *DirectoryLocator) Locate(m *program.Matcher) ([]CandidateEntry, error) {
	var entries []CandidateEntry
	err := l.Tree.WalkDirs(l.Root, func(path, name string) error {
		if !m.Matches(name) {
			return nil
		}
		entries = append(entries, CandidateEntry{
			Source:      SourceDirectory,
			DisplayName: name,
			Handle:      path,
		})
		return fs.SkipDir
	})
	if err != nil {
		return entries, &SourceUnavailableError{Source: SourceDirectory, Err: err}
	}
	return entries, nil
}

// DirectoryRemover recursively deletes each candidate directory.
type DirectoryRemover struct {
	Tree FileTree
}

// Remove force-deletes one tree per candidate, tolerating per-entry failure.
func (r *DirectoryRemover) Remove(entries []CandidateEntry) []RemovalOutcome {
	outcomes := make([]RemovalOutcome, 0, len(entries))
	for _, entry := range entries {
		outcome := RemovalOutcome{Entry: entry, Success: true}
		if err := r.Tree.DeleteTree(entry.Handle); err != nil {
			outcome.Success = false
			outcome.Error = err.Error()
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}
