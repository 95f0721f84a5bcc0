// ABOUTME: Doctor command implementation for diagnosing source availability
// ABOUTME: Probes each collaborator so degraded sources are visible before a run
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RomanGlegola/Purge-Python-Environment/internal/config"
	"github.com/RomanGlegola/Purge-Python-Environment/internal/host"
	"github.com/RomanGlegola/Purge-Python-Environment/internal/residue"
	"github.com/RomanGlegola/Purge-Python-Environment/internal/ui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check which removal sources are available on this host",
	Long: `Probe each collaborator the removal pipeline depends on.

A source that fails its probe degrades to zero candidates during a run
(the run still completes); doctor makes that visible before anything
destructive happens.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	root := cfg.Scan.Root
	if root == "" {
		root = host.DefaultScanRoot()
	}

	collaborators := host.New()

	fmt.Println(ui.RenderHeader("purge doctor"))
	fmt.Println()
	fmt.Println(ui.RenderSection("Sources", -1))

	if records, err := collaborators.Packages.ListInstalled(); err != nil {
		printCheck(false, residue.SourceInstallation.String(), err.Error())
	} else {
		printCheck(true, residue.SourceInstallation.String(), fmt.Sprintf("%d packages visible", len(records)))
	}

	nativeOK := probeStore("registry (native view)", collaborators.Native)
	wowOK := probeStore("registry (32-bit view)", collaborators.Wow64)

	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		printCheck(false, residue.SourceDirectory.String(), fmt.Sprintf("scan root %s not readable", root))
	} else {
		printCheck(true, residue.SourceDirectory.String(), "scan root "+root)
	}

	if elements, err := collaborators.Env.List(); err != nil {
		printCheck(false, residue.SourcePath.String(), err.Error())
	} else {
		printCheck(true, residue.SourcePath.String(), fmt.Sprintf("%d path elements", len(elements)))
	}

	fmt.Println()
	fmt.Println(ui.RenderSection("Audit log", -1))
	auditState := "enabled"
	if !cfg.Audit.Enabled {
		auditState = "disabled"
	}
	fmt.Println(ui.Indent(ui.RenderDetail("State", auditState), 1))
	fmt.Println(ui.Indent(ui.RenderDetail("Path", cfg.Audit.Path), 1))

	fmt.Println()
	if !nativeOK && !wowOK {
		ui.PrintInfo("Registry sources will degrade to zero candidates on this host.")
	} else {
		ui.PrintSuccess("Ready.")
	}
	return nil
}

func probeStore(label string, store residue.UninstallStore) bool {
	entries, err := store.Entries()
	if err != nil {
		printCheck(false, label, err.Error())
		return false
	}
	printCheck(true, label, fmt.Sprintf("%d entries visible", len(entries)))
	return true
}

func printCheck(ok bool, label, detail string) {
	symbol := ui.Success(ui.SymbolSuccess)
	if !ok {
		symbol = ui.Error(ui.SymbolError)
	}
	fmt.Println(ui.Indent(symbol+" "+label+": "+ui.Muted(detail), 1))
}
