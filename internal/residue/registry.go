// ABOUTME: Registry source pair: locates matching uninstall-store entries across
// ABOUTME: the native and 32-bit views and deletes the keys behind them
package residue

import (
	"errors"

	"github.com/RomanGlegola/Purge-Python-Environment/internal/program"
)

// RegistryLocator finds uninstall-store entries matching the query. It
// consults two views of the store, native first, and concatenates the
// results. A view that cannot be enumerated contributes zero entries
// instead of aborting the locator.
type RegistryLocator struct {
	Native UninstallStore
	Wow64  UninstallStore
}

// Locate returns matching entries from both views, native view first.
// Entries are ordered newest version first within each view; the views are
// never interleaved. The returned error, if any, describes views that could
// not be read; entries from the readable views are still returned alongside
// it.
func (l *RegistryLocator) Locate(m *program.Matcher) ([]CandidateEntry, error) {
	var entries []CandidateEntry
	var viewErrs []error

	for _, store := range []UninstallStore{l.Native, l.Wow64} {
		if store == nil {
			continue
		}
		found, err := store.Entries()
		if err != nil {
			viewErrs = append(viewErrs, err)
			continue
		}
		var viewEntries []CandidateEntry
		for _, e := range found {
			if m.Matches(e.DisplayName) {
				viewEntries = append(viewEntries, CandidateEntry{
					Source:      SourceRegistry,
					DisplayName: e.DisplayName,
					Handle:      e.KeyPath,
				})
			}
		}
		SortNewestFirst(viewEntries)
		entries = append(entries, viewEntries...)
	}

	if err := errors.Join(viewErrs...); err != nil {
		return entries, &SourceUnavailableError{Source: SourceRegistry, Err: err}
	}
	return entries, nil
}

// RegistryRemover deletes the key behind each candidate. Handles are fully
// qualified key paths, so one store can delete entries from either view.
type RegistryRemover struct {
	Store UninstallStore
}

// Remove deletes one key per candidate, tolerating per-entry failure.
func (r *RegistryRemover) Remove(entries []CandidateEntry) []RemovalOutcome {
	outcomes := make([]RemovalOutcome, 0, len(entries))
	for _, entry := range entries {
		outcome := RemovalOutcome{Entry: entry, Success: true}
		if err := r.Store.Delete(entry.Handle); err != nil {
			outcome.Success = false
			outcome.Error = err.Error()
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}
