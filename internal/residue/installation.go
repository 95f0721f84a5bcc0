// ABOUTME: Installation source pair: locates matching installed packages
// ABOUTME: and uninstalls them through the package manager collaborator
package residue

import (
	"github.com/RomanGlegola/Purge-Python-Environment/internal/program"
)

// InstallationLocator finds installed-package records matching the query.
type InstallationLocator struct {
	Packages PackageManager
}

// Locate filters the installed-package list through the match policy.
// Candidates are ordered newest version first so the removal order in
// reports and dry-run plans is deterministic.
func (l *InstallationLocator) Locate(m *program.Matcher) ([]CandidateEntry, error) {
	records, err := l.Packages.ListInstalled()
	if err != nil {
		return nil, &SourceUnavailableError{Source: SourceInstallation, Err: err}
	}

	var entries []CandidateEntry
	for _, rec := range records {
		if m.Matches(rec.DisplayName) {
			entries = append(entries, CandidateEntry{
				Source:      SourceInstallation,
				DisplayName: rec.DisplayName,
				Handle:      rec.ID,
			})
		}
	}
	SortNewestFirst(entries)
	return entries, nil
}

// InstallationRemover uninstalls each candidate package.
type InstallationRemover struct {
	Packages PackageManager
}

// Remove attempts one uninstall per candidate. A failed uninstall is
// recorded and the remaining candidates are still attempted.
func (r *InstallationRemover) Remove(entries []CandidateEntry) []RemovalOutcome {
	outcomes := make([]RemovalOutcome, 0, len(entries))
	for _, entry := range entries {
		outcome := RemovalOutcome{Entry: entry, Success: true}
		if err := r.Packages.Uninstall(entry.Handle); err != nil {
			outcome.Success = false
			outcome.Error = err.Error()
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}
