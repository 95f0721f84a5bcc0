// ABOUTME: Aggregate report generation over the removal audit log
// ABOUTME: Timeline and summary statistics in text or markdown form
package audit

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Report is an aggregate view over a filtered slice of the audit log.
type Report struct {
	GeneratedAt time.Time
	Program     string // filter, empty for all
	Source      string // filter, empty for all
	Period      string // human-readable time range description
	Records     []*Record
	Summary     Summary
}

// Summary provides aggregate statistics about the records in a report.
type Summary struct {
	TotalAttempts int
	Runs          int            // unique orchestrator runs
	Programs      []string       // unique program names, sorted
	Sources       map[string]int // source -> attempt count
	Failures      int
	DryRuns       int
}

// Options configures how the report is generated.
type Options struct {
	Program string
	Source  string
	Since   time.Time
}

// Generate creates a report from records already filtered and sorted
// newest first by JSONLWriter.Query.
func Generate(records []*Record, opts Options) *Report {
	report := &Report{
		GeneratedAt: time.Now(),
		Program:     opts.Program,
		Source:      opts.Source,
		Records:     records,
		Summary:     summarize(records),
	}

	report.Period = formatPeriod(opts.Since)

	return report
}

func summarize(records []*Record) Summary {
	summary := Summary{
		TotalAttempts: len(records),
		Sources:       make(map[string]int),
	}

	runs := make(map[string]bool)
	programs := make(map[string]bool)

	for _, record := range records {
		runs[record.RunID] = true
		programs[record.Program] = true
		summary.Sources[record.Source]++

		if !record.Success {
			summary.Failures++
		}
		if record.DryRun {
			summary.DryRuns++
		}
	}

	summary.Runs = len(runs)
	summary.Programs = make([]string, 0, len(programs))
	for name := range programs {
		summary.Programs = append(summary.Programs, name)
	}
	sort.Strings(summary.Programs)

	return summary
}

func formatPeriod(since time.Time) string {
	if since.IsZero() {
		return "All time"
	}

	duration := time.Since(since)
	days := int(duration.Hours() / 24)

	switch {
	case days == 0:
		return "Last 24 hours"
	case days == 1:
		return "Last day"
	case days < 7:
		return fmt.Sprintf("Last %d days", days)
	case days < 30:
		weeks := days / 7
		if weeks == 1 {
			return "Last week"
		}
		return fmt.Sprintf("Last %d weeks", weeks)
	case days < 365:
		months := days / 30
		if months == 1 {
			return "Last month"
		}
		return fmt.Sprintf("Last %d months", months)
	default:
		return fmt.Sprintf("Since %s", since.Format("2006-01-02"))
	}
}

// FormatAsText renders the report as human-readable text.
func (r *Report) FormatAsText() string {
	var b strings.Builder

	b.WriteString("Removal Audit Report\n")
	b.WriteString("====================\n")
	b.WriteString(fmt.Sprintf("Generated: %s\n", r.GeneratedAt.Format("2006-01-02 15:04:05")))
	b.WriteString(fmt.Sprintf("Period: %s\n", r.Period))
	if r.Program != "" {
		b.WriteString(fmt.Sprintf("Program: %s\n", r.Program))
	}
	if r.Source != "" {
		b.WriteString(fmt.Sprintf("Source: %s\n", r.Source))
	}
	b.WriteString("\n")

	b.WriteString("Summary\n")
	b.WriteString("-------\n")
	b.WriteString(fmt.Sprintf("Attempts: %d (%d runs)\n", r.Summary.TotalAttempts, r.Summary.Runs))
	b.WriteString(fmt.Sprintf("Failures: %d\n", r.Summary.Failures))
	if r.Summary.DryRuns > 0 {
		b.WriteString(fmt.Sprintf("Dry-run only: %d\n", r.Summary.DryRuns))
	}
	if len(r.Summary.Programs) > 0 {
		b.WriteString(fmt.Sprintf("Programs: %s\n", strings.Join(r.Summary.Programs, ", ")))
	}
	for _, source := range sortedKeys(r.Summary.Sources) {
		b.WriteString(fmt.Sprintf("  %s: %d\n", source, r.Summary.Sources[source]))
	}
	b.WriteString("\n")

	b.WriteString("Timeline\n")
	b.WriteString("--------\n")
	for _, record := range r.Records {
		b.WriteString(formatRecordLine(record))
	}

	return b.String()
}

// FormatAsMarkdown renders the report as a markdown document.
func (r *Report) FormatAsMarkdown() string {
	var b strings.Builder

	b.WriteString("# Removal Audit Report\n\n")
	b.WriteString(fmt.Sprintf("- **Generated:** %s\n", r.GeneratedAt.Format("2006-01-02 15:04:05")))
	b.WriteString(fmt.Sprintf("- **Period:** %s\n", r.Period))
	if r.Program != "" {
		b.WriteString(fmt.Sprintf("- **Program:** %s\n", r.Program))
	}
	if r.Source != "" {
		b.WriteString(fmt.Sprintf("- **Source:** %s\n", r.Source))
	}
	b.WriteString("\n## Summary\n\n")
	b.WriteString(fmt.Sprintf("- Attempts: %d (%d runs)\n", r.Summary.TotalAttempts, r.Summary.Runs))
	b.WriteString(fmt.Sprintf("- Failures: %d\n", r.Summary.Failures))
	if r.Summary.DryRuns > 0 {
		b.WriteString(fmt.Sprintf("- Dry-run only: %d\n", r.Summary.DryRuns))
	}
	if len(r.Summary.Programs) > 0 {
		b.WriteString(fmt.Sprintf("- Programs: %s\n", strings.Join(r.Summary.Programs, ", ")))
	}

	b.WriteString("\n## Timeline\n\n")
	b.WriteString("| Time | Program | Source | Entry | Result |\n")
	b.WriteString("|------|---------|--------|-------|--------|\n")
	for _, record := range r.Records {
		result := "ok"
		switch {
		case record.DryRun:
			result = "dry-run"
		case !record.Success:
			result = "FAILED: " + record.Error
		}
		b.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s |\n",
			record.Timestamp.Format("2006-01-02 15:04"),
			record.Program, record.Source, record.DisplayName, result))
	}

	return b.String()
}

func formatRecordLine(record *Record) string {
	status := "ok"
	switch {
	case record.DryRun:
		status = "dry-run"
	case !record.Success:
		status = "failed: " + record.Error
	}
	return fmt.Sprintf("%s  %-12s %-9s %s (%s)\n",
		record.Timestamp.Format("2006-01-02 15:04:05"),
		record.Program, record.Source, record.DisplayName, status)
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
