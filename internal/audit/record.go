// ABOUTME: Audit record model for removal attempts
// ABOUTME: One JSONL record per removal outcome, tagged with the run it belongs to
package audit

import (
	"time"

	"github.com/RomanGlegola/Purge-Python-Environment/internal/residue"
)

// Record is one persisted removal attempt.
type Record struct {
	Timestamp   time.Time `json:"timestamp"`
	RunID       string    `json:"runId"`
	Program     string    `json:"program"`
	Source      string    `json:"source"`
	DisplayName string    `json:"displayName"`
	Handle      string    `json:"handle"`
	Success     bool      `json:"success"`
	DryRun      bool      `json:"dryRun,omitempty"`
	Error       string    `json:"error,omitempty"`
}

// FromOutcome converts a removal outcome into a record for the given run.
func FromOutcome(runID, programName string, outcome residue.RemovalOutcome) *Record {
	return &Record{
		Timestamp:   time.Now(),
		RunID:       runID,
		Program:     programName,
		Source:      outcome.Entry.Source.String(),
		DisplayName: outcome.Entry.DisplayName,
		Handle:      outcome.Entry.Handle,
		Success:     outcome.Success,
		DryRun:      outcome.DryRun,
		Error:       outcome.Error,
	}
}

// Filters narrow a query over the audit log.
type Filters struct {
	Program    string
	Source     string
	Since      time.Time
	FailedOnly bool
	Limit      int
}
