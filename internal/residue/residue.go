// ABOUTME: Core data model for residue removal: source kinds, candidates, outcomes
// ABOUTME: Candidates are transient, produced by a locator and consumed by its remover
package residue

import (
	"fmt"
	"strings"
	"time"
)

// SourceKind identifies which collaborator a candidate came from. A
// candidate's handle is only meaningful to the remover of the same kind.
type SourceKind int

const (
	SourceInstallation SourceKind = iota
	SourceRegistry
	SourceDirectory
	SourcePath
)

// AllSources lists every source in canonical removal order: install records
// first, registry entries next, then leftover directories and path elements.
var AllSources = []SourceKind{SourceInstallation, SourceRegistry, SourceDirectory, SourcePath}

func (k SourceKind) String() string {
	switch k {
	case SourceInstallation:
		return "installation"
	case SourceRegistry:
		return "registry"
	case SourceDirectory:
		return "directory"
	case SourcePath:
		return "path"
	default:
		return fmt.Sprintf("source(%d)", int(k))
	}
}

// ParseSourceKind converts a user-supplied source name to its kind.
func ParseSourceKind(s string) (SourceKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "installation":
		return SourceInstallation, nil
	case "registry":
		return SourceRegistry, nil
	case "directory":
		return SourceDirectory, nil
	case "path":
		return SourcePath, nil
	default:
		return 0, fmt.Errorf("unknown source %q (valid: installation, registry, directory, path)", s)
	}
}

// ParseSources parses a comma-separated source list into kinds in canonical
// order, regardless of the order they were given in. An empty list means all.
func ParseSources(list string) ([]SourceKind, error) {
	if strings.TrimSpace(list) == "" {
		return AllSources, nil
	}

	wanted := make(map[SourceKind]bool)
	for _, part := range strings.Split(list, ",") {
		kind, err := ParseSourceKind(part)
		if err != nil {
			return nil, err
		}
		wanted[kind] = true
	}

	var kinds []SourceKind
	for _, kind := range AllSources {
		if wanted[kind] {
			kinds = append(kinds, kind)
		}
	}
	return kinds, nil
}

// CandidateEntry is one matched entry pending removal. Handle is
// source-specific: a package identifier, a registry key path, a directory
// path, or the literal path-list element.
type CandidateEntry struct {
	Source      SourceKind
	DisplayName string
	Handle      string
}

// RemovalOutcome records one removal attempt. A failed attempt never stops
// iteration over the remaining candidates of the same source.
type RemovalOutcome struct {
	Entry   CandidateEntry
	Success bool
	DryRun  bool
	Error   string
}

// Report aggregates everything one orchestrator run produced.
type Report struct {
	RunID    string
	Program  string
	DryRun   bool
	Started  time.Time
	Outcomes []RemovalOutcome
	Warnings []string
}

// Failures counts unsuccessful removal attempts.
func (r *Report) Failures() int {
	n := 0
	for _, o := range r.Outcomes {
		if !o.Success {
			n++
		}
	}
	return n
}

// BySource returns the outcomes for one source, in attempt order.
func (r *Report) BySource(kind SourceKind) []RemovalOutcome {
	var out []RemovalOutcome
	for _, o := range r.Outcomes {
		if o.Entry.Source == kind {
			out = append(out, o)
		}
	}
	return out
}
