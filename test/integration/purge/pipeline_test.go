// ABOUTME: Integration tests for the full locate-and-remove pipeline
// ABOUTME: Drives a Purger over a fake host populated across all four sources
package purge_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/RomanGlegola/Purge-Python-Environment/internal/program"
	"github.com/RomanGlegola/Purge-Python-Environment/internal/residue"
	"github.com/RomanGlegola/Purge-Python-Environment/test/helpers"
)

// populatedHost seeds every source with Python traces plus unrelated
// entries, including one Python 3.10.4 registration per source.
func populatedHost() *helpers.Host {
	host := helpers.NewHost()
	host.Packages.Records = []residue.PackageRecord{
		{ID: "python-3.9", DisplayName: "Python 3.9.13"},
		{ID: "python-3.10", DisplayName: "Python 3.10.4"},
		{ID: "notepadpp", DisplayName: "Notepad++ 8.6"},
	}
	host.Hive.Entries[`SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall\Python39`] = "Python 3.9.13 (64-bit)"
	host.Hive.Entries[`SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall\Python310`] = "Python 3.10.4 (64-bit)"
	host.Hive.Entries[`SOFTWARE\WOW6432Node\Microsoft\Windows\CurrentVersion\Uninstall\PyLauncher`] = "Python Launcher"
	host.Hive.Entries[`SOFTWARE\WOW6432Node\Microsoft\Windows\CurrentVersion\Uninstall\SevenZip`] = "7-Zip 23.01"
	host.Tree.Dirs = []string{
		"Program Files",
		"Program Files/Python39",
		"Program Files/Python39/Scripts",
		"Program Files/Python 3.10.4",
		"Program Files/Notepad++",
	}
	host.Env.Elements = []string{
		`C:\Windows\system32`,
		`C:\Program Files\Python39\Scripts`,
		`C:\Program Files\Python 3.10.4`,
		`C:\Tools`,
	}
	return host
}

func run(host *helpers.Host, raw string, opts residue.Options) *residue.Report {
	query, err := program.Parse(raw)
	Expect(err).NotTo(HaveOccurred())
	return host.Purger().Run(query, opts)
}

var _ = Describe("PurgePipeline", func() {
	It("removes matching traces from all four sources and spares the version token", func() {
		host := populatedHost()
		report := run(host, "Python 3.10.4", residue.Options{Root: `C:\`})

		Expect(report.Failures()).To(Equal(0))

		Expect(host.Packages.Uninstalled).To(ConsistOf("python-3.9"))
		remaining := []string{}
		for _, rec := range host.Packages.Records {
			remaining = append(remaining, rec.DisplayName)
		}
		Expect(remaining).To(ConsistOf("Python 3.10.4", "Notepad++ 8.6"))

		Expect(host.Hive.Entries).To(HaveKey(`SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall\Python310`))
		Expect(host.Hive.Entries).NotTo(HaveKey(`SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall\Python39`))
		Expect(host.Hive.Entries).NotTo(HaveKey(`SOFTWARE\WOW6432Node\Microsoft\Windows\CurrentVersion\Uninstall\PyLauncher`))

		Expect(host.Tree.Dirs).To(ConsistOf(
			"Program Files",
			"Program Files/Python 3.10.4",
			"Program Files/Notepad++",
		))

		Expect(host.Env.Elements).To(Equal([]string{
			`C:\Windows\system32`,
			`C:\Program Files\Python 3.10.4`,
			`C:\Tools`,
		}))
		Expect(host.Env.Writes).To(Equal(1))
	})

	It("reports sources in the fixed order regardless of match counts", func() {
		host := populatedHost()
		report := run(host, "python", residue.Options{Root: `C:\`})

		var order []residue.SourceKind
		for _, outcome := range report.Outcomes {
			if len(order) == 0 || order[len(order)-1] != outcome.Entry.Source {
				order = append(order, outcome.Entry.Source)
			}
		}
		Expect(order).To(Equal([]residue.SourceKind{
			residue.SourceInstallation,
			residue.SourceRegistry,
			residue.SourceDirectory,
			residue.SourcePath,
		}))
	})

	It("finds nothing on a second run over the same host", func() {
		host := populatedHost()
		run(host, "python", residue.Options{Root: `C:\`})

		second := run(host, "python", residue.Options{Root: `C:\`})
		Expect(second.Outcomes).To(BeEmpty())
		Expect(host.Env.Writes).To(Equal(1), "an empty pass must not rewrite the variable")
	})

	It("mutates nothing under dry run", func() {
		host := populatedHost()
		report := run(host, "python", residue.Options{DryRun: true, Root: `C:\`})

		Expect(report.Outcomes).NotTo(BeEmpty())
		for _, outcome := range report.Outcomes {
			Expect(outcome.DryRun).To(BeTrue())
		}
		Expect(host.Packages.Uninstalled).To(BeEmpty())
		Expect(host.Hive.Deleted).To(BeEmpty())
		Expect(host.Tree.Deleted).To(BeEmpty())
		Expect(host.Env.Writes).To(BeZero())
	})

	It("produces the same report in parallel mode as sequentially", func() {
		sequential := run(populatedHost(), "python", residue.Options{Root: `C:\`})
		parallel := run(populatedHost(), "python", residue.Options{Parallel: true, Workers: 3, Root: `C:\`})

		Expect(parallel.Outcomes).To(HaveLen(len(sequential.Outcomes)))
		for i := range sequential.Outcomes {
			Expect(parallel.Outcomes[i].Entry).To(Equal(sequential.Outcomes[i].Entry))
			Expect(parallel.Outcomes[i].Success).To(Equal(sequential.Outcomes[i].Success))
		}
	})

	It("degrades an unavailable source to zero candidates and keeps going", func() {
		host := populatedHost()
		host.Packages.ListErr = errors.New("package service unavailable")

		report := run(host, "python", residue.Options{Root: `C:\`})

		Expect(report.Warnings).To(HaveLen(1))
		Expect(report.BySource(residue.SourceInstallation)).To(BeEmpty())
		Expect(report.BySource(residue.SourceDirectory)).NotTo(BeEmpty())
		Expect(report.Failures()).To(Equal(0))
	})

	It("records a failed removal and continues with the rest", func() {
		host := populatedHost()
		host.Tree.FailPaths[`C:\/Program Files/Python39`] = true

		report := run(host, "python", residue.Options{Root: `C:\`})

		Expect(report.Failures()).To(Equal(1))
		failed := []residue.RemovalOutcome{}
		for _, outcome := range report.BySource(residue.SourceDirectory) {
			if !outcome.Success {
				failed = append(failed, outcome)
			}
		}
		Expect(failed).To(HaveLen(1))
		Expect(failed[0].Error).To(ContainSubstring("locked"))
		Expect(report.BySource(residue.SourcePath)).NotTo(BeEmpty(), "later sources still run")
	})

	It("runs only the selected sources", func() {
		host := populatedHost()
		report := run(host, "python", residue.Options{
			Sources: []residue.SourceKind{residue.SourcePath},
			Root:    `C:\`,
		})

		Expect(report.BySource(residue.SourcePath)).NotTo(BeEmpty())
		Expect(report.BySource(residue.SourceInstallation)).To(BeEmpty())
		Expect(host.Packages.Uninstalled).To(BeEmpty())
		Expect(host.Hive.Deleted).To(BeEmpty())
	})
})
