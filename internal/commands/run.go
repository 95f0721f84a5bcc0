// ABOUTME: The purge run itself: parse, locate, remove, report
// ABOUTME: Wires collaborators, audit log, progress, and exit-code policy
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RomanGlegola/Purge-Python-Environment/internal/audit"
	"github.com/RomanGlegola/Purge-Python-Environment/internal/config"
	"github.com/RomanGlegola/Purge-Python-Environment/internal/host"
	"github.com/RomanGlegola/Purge-Python-Environment/internal/program"
	"github.com/RomanGlegola/Purge-Python-Environment/internal/residue"
	"github.com/RomanGlegola/Purge-Python-Environment/internal/suggest"
	"github.com/RomanGlegola/Purge-Python-Environment/internal/ui"
)

func runPurge(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The one fatal error: without a canonical name, matching would
	// accept everything.
	query, err := program.Parse(args[0])
	if err != nil {
		return err
	}

	sources, err := residue.ParseSources(sourcesFlag)
	if err != nil {
		return err
	}

	root := rootFlag
	if root == "" {
		root = cfg.Scan.Root
	}
	if root == "" {
		root = host.DefaultScanRoot()
	}

	collaborators := host.New()
	purger := &residue.Purger{
		Packages: collaborators.Packages,
		Native:   collaborators.Native,
		Wow64:    collaborators.Wow64,
		Tree:     collaborators.Tree,
		Env:      collaborators.Env,
	}

	var tracker *ui.SourceProgress
	if parallelFlag && !quietFlag {
		names := make([]string, 0, len(sources))
		for _, source := range sources {
			names = append(names, source.String())
		}
		tracker = ui.NewSourceProgress(names)
		purger.OnCandidates = func(kind residue.SourceKind, count int) {
			tracker.SetTotal(kind.String(), count)
		}
		purger.OnOutcome = func(outcome residue.RemovalOutcome) {
			tracker.RecordResult(os.Stdout, outcome.Entry.Source.String(), outcome.Success)
		}
	} else if !quietFlag {
		purger.OnOutcome = printOutcome
	}
	if !quietFlag {
		purger.OnWarning = func(kind residue.SourceKind, err error) {
			ui.PrintWarning(fmt.Sprintf("%s: %v", kind, err))
		}
	}

	if !quietFlag {
		verb := "Purging"
		if dryRunFlag {
			verb = "Planning removal of"
		}
		target := query.CanonicalName
		if query.VersionToken != "" {
			target += " " + ui.Muted("(keeping "+query.VersionToken+")")
		}
		ui.PrintInfo(fmt.Sprintf("%s %s", verb, target))
	}

	report := purger.Run(query, residue.Options{
		DryRun:   dryRunFlag,
		Parallel: parallelFlag,
		Workers:  cfg.Run.Workers,
		Sources:  sources,
		Root:     root,
	})

	if cfg.Audit.Enabled && !noAuditFlag {
		if err := writeAuditRecords(cfg.Audit.Path, report); err != nil {
			ui.PrintWarning(fmt.Sprintf("audit log: %v", err))
		}
	}

	return summarize(collaborators, query, report)
}

func printOutcome(outcome residue.RemovalOutcome) {
	entry := outcome.Entry
	switch {
	case outcome.DryRun:
		ui.PrintInfo(fmt.Sprintf("%s: would remove %s", entry.Source, entry.DisplayName))
	case outcome.Success:
		ui.PrintSuccess(fmt.Sprintf("%s: removed %s", entry.Source, entry.DisplayName))
	default:
		ui.PrintError(fmt.Sprintf("%s: failed to remove %s: %s", entry.Source, entry.DisplayName, outcome.Error))
	}
}

func writeAuditRecords(path string, report *residue.Report) error {
	writer, err := audit.NewJSONLWriter(path)
	if err != nil {
		return err
	}
	for _, outcome := range report.Outcomes {
		if err := writer.Write(audit.FromOutcome(report.RunID, report.Program, outcome)); err != nil {
			return err
		}
	}
	return nil
}

func summarize(collaborators *host.Collaborators, query program.Query, report *residue.Report) error {
	total := len(report.Outcomes)
	failures := report.Failures()

	if total == 0 {
		ui.PrintInfo(fmt.Sprintf("No traces of %s found.", query.CanonicalName))
		if closest, ok := suggest.Closest(query.CanonicalName, installedDisplayNames(collaborators)); ok {
			ui.PrintMuted(fmt.Sprintf("Did you mean %q?", closest))
		}
		return nil
	}

	switch {
	case report.DryRun:
		ui.PrintInfo(fmt.Sprintf("%d candidate(s) found; nothing removed (dry run).", total))
	case failures == 0:
		ui.PrintSuccess(fmt.Sprintf("Removed %d entr%s.", total, plural(total, "y", "ies")))
	default:
		ui.PrintWarning(fmt.Sprintf("Removed %d of %d entries.", total-failures, total))
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d removal attempts failed", failures, total)
	}
	return nil
}

// installedDisplayNames gathers display names for the did-you-mean
// suggestion, best effort only.
func installedDisplayNames(collaborators *host.Collaborators) []string {
	var names []string
	if records, err := collaborators.Packages.ListInstalled(); err == nil {
		for _, record := range records {
			names = append(names, record.DisplayName)
		}
	}
	for _, store := range []residue.UninstallStore{collaborators.Native, collaborators.Wow64} {
		if entries, err := store.Entries(); err == nil {
			for _, entry := range entries {
				names = append(names, entry.DisplayName)
			}
		}
	}
	return names
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
