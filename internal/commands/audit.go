// ABOUTME: Audit command implementation for the removal history
// ABOUTME: Lists recent records or renders an aggregate report in text or markdown
package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/RomanGlegola/Purge-Python-Environment/internal/audit"
	"github.com/RomanGlegola/Purge-Python-Environment/internal/config"
	"github.com/RomanGlegola/Purge-Python-Environment/internal/residue"
	"github.com/RomanGlegola/Purge-Python-Environment/internal/ui"
)

var (
	auditProgram string
	auditSource  string
	auditSince   string
	auditFailed  bool
	auditLimit   int
	auditReport  string
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Show the audit trail of past removal attempts",
	Long: `Show what purge removed, tried to remove, or would have removed.

By default, lists the most recent removal attempts. With --report, renders
an aggregate report with summary statistics instead.

Examples:
  purge audit                          # Most recent attempts
  purge audit --program python         # One program only
  purge audit --failed --since 30d     # Recent failures
  purge audit --report markdown > report.md`,
	Args: cobra.NoArgs,
	RunE: runAudit,
}

func init() {
	rootCmd.AddCommand(auditCmd)

	auditCmd.Flags().StringVar(&auditProgram, "program", "", "Filter by program name")
	auditCmd.Flags().StringVar(&auditSource, "source", "", "Filter by source (installation/registry/directory/path)")
	auditCmd.Flags().StringVar(&auditSince, "since", "", "Show attempts since duration (e.g., 24h, 7d) or date (YYYY-MM-DD)")
	auditCmd.Flags().BoolVar(&auditFailed, "failed", false, "Only show failed attempts")
	auditCmd.Flags().IntVar(&auditLimit, "limit", 20, "Maximum records to list (0 for all; ignored with --report)")
	auditCmd.Flags().StringVar(&auditReport, "report", "", "Render an aggregate report: text or markdown")
}

func runAudit(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if auditReport != "" && auditReport != "text" && auditReport != "markdown" {
		return fmt.Errorf("invalid report format: %s (must be 'text' or 'markdown')", auditReport)
	}
	if auditSource != "" {
		if _, err := residue.ParseSourceKind(auditSource); err != nil {
			return err
		}
	}

	var sinceTime time.Time
	if auditSince != "" {
		if parsedDate, err := time.Parse("2006-01-02", auditSince); err == nil {
			sinceTime = parsedDate
		} else {
			duration, err := parseDuration(auditSince)
			if err != nil {
				return fmt.Errorf("invalid --since value: %w", err)
			}
			sinceTime = time.Now().Add(-duration)
		}
	}

	writer, err := audit.NewJSONLWriter(cfg.Audit.Path)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}

	limit := auditLimit
	if auditReport != "" {
		limit = 0 // reports aggregate over every matching record
	}

	records, err := writer.Query(audit.Filters{
		Program:    auditProgram,
		Source:     auditSource,
		Since:      sinceTime,
		FailedOnly: auditFailed,
		Limit:      limit,
	})
	if err != nil {
		return fmt.Errorf("query audit log: %w", err)
	}

	if len(records) == 0 {
		ui.PrintInfo("No removal attempts recorded.")
		return nil
	}

	if auditReport != "" {
		report := audit.Generate(records, audit.Options{
			Program: auditProgram,
			Source:  auditSource,
			Since:   sinceTime,
		})
		if auditReport == "markdown" {
			fmt.Print(report.FormatAsMarkdown())
		} else {
			fmt.Print(report.FormatAsText())
		}
		return nil
	}

	listRecords(records)
	return nil
}

func listRecords(records []*audit.Record) {
	fmt.Println(ui.RenderSection("Removal attempts", len(records)))
	for _, record := range records {
		symbol := ui.Success(ui.SymbolSuccess)
		detail := ""
		switch {
		case record.DryRun:
			symbol = ui.Info(ui.SymbolInfo)
			detail = ui.Muted(" (dry run)")
		case !record.Success:
			symbol = ui.Error(ui.SymbolError)
			detail = ui.Muted(" (" + record.Error + ")")
		}
		line := fmt.Sprintf("%s %s  %s %s %s%s",
			symbol,
			ui.Muted(record.Timestamp.Format("2006-01-02 15:04")),
			ui.Bold(record.Program),
			ui.Muted(record.Source),
			record.DisplayName,
			detail)
		fmt.Println(ui.Indent(line, 1))
	}
}

// parseDuration accepts time.ParseDuration syntax plus a day suffix,
// e.g. "7d".
func parseDuration(s string) (time.Duration, error) {
	if strings.HasSuffix(s, "d") {
		days, err := strconv.Atoi(strings.TrimSuffix(s, "d"))
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}
	return time.ParseDuration(s)
}
