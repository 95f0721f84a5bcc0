// ABOUTME: Orchestrator running the four locate-and-remove passes for one query
// ABOUTME: Aggregates every removal outcome and collaborator warning into a report
package residue

import (
	"time"

	"github.com/google/uuid"

	"github.com/RomanGlegola/Purge-Python-Environment/internal/program"
)

// Options configures one orchestrator run.
type Options struct {
	DryRun   bool
	Parallel bool
	Workers  int
	Sources  []SourceKind // empty means all, always honored in canonical order
	Root     string       // directory scan root
}

// Purger wires the four collaborators into locate-and-remove passes.
// Collaborator failures degrade the affected pass to zero candidates;
// only an unparsable query aborts a run, and that happens before a
// Purger is ever invoked.
type Purger struct {
	Packages PackageManager
	Native   UninstallStore
	Wow64    UninstallStore
	Tree     FileTree
	Env      PathEnv

	// OnOutcome, when set, observes every removal outcome as it is
	// produced. In parallel runs it is called from worker goroutines,
	// so observers must be safe for concurrent use.
	OnOutcome func(RemovalOutcome)

	// OnWarning, when set, observes collaborator-level failures that
	// degraded a source to an empty result set.
	OnWarning func(SourceKind, error)

	// OnCandidates, when set, observes how many candidates a source
	// matched, before any removal is attempted.
	OnCandidates func(SourceKind, int)
}

type sourcePass struct {
	source SourceKind
	locate func(*program.Matcher) ([]CandidateEntry, error)
	remove func([]CandidateEntry) []RemovalOutcome
}

// Run executes the selected passes for one query, in the fixed order
// installation, registry, directory, path. The path variable is read and
// written at most once, inside the path pass; with Parallel set that pass
// is still the variable's only writer.
func (p *Purger) Run(q program.Query, opts Options) *Report {
	report := &Report{
		RunID:   uuid.NewString(),
		Program: q.CanonicalName,
		DryRun:  opts.DryRun,
		Started: time.Now(),
	}

	matcher := program.NewMatcher(q)
	passes := p.passes(opts)

	var results []sourceResult
	if opts.Parallel {
		jobs := make([]sourceJob, 0, len(passes))
		for _, pass := range passes {
			pass := pass
			jobs = append(jobs, sourceJob{
				Source: pass.source,
				Run: func() sourceResult {
					return p.runPass(pass, matcher, opts.DryRun)
				},
			})
		}
		results = runSourceJobs(jobs, opts.Workers)
	} else {
		for _, pass := range passes {
			results = append(results, p.runPass(pass, matcher, opts.DryRun))
		}
	}

	for _, result := range results {
		report.Outcomes = append(report.Outcomes, result.Outcomes...)
		report.Warnings = append(report.Warnings, result.Warnings...)
	}
	return report
}

func (p *Purger) passes(opts Options) []sourcePass {
	sources := opts.Sources
	if len(sources) == 0 {
		sources = AllSources
	}

	var passes []sourcePass
	for _, source := range sources {
		switch source {
		case SourceInstallation:
			locator := &InstallationLocator{Packages: p.Packages}
			remover := &InstallationRemover{Packages: p.Packages}
			passes = append(passes, sourcePass{source, locator.Locate, remover.Remove})
		case SourceRegistry:
			locator := &RegistryLocator{Native: p.Native, Wow64: p.Wow64}
			remover := &RegistryRemover{Store: p.Native}
			passes = append(passes, sourcePass{source, locator.Locate, remover.Remove})
		case SourceDirectory:
			locator := &DirectoryLocator{Tree: p.Tree, Root: opts.Root}
			remover := &DirectoryRemover{Tree: p.Tree}
			passes = append(passes, sourcePass{source, locator.Locate, remover.Remove})
		case SourcePath:
			locator := &PathLocator{Env: p.Env}
			remover := &PathRemover{Env: p.Env}
			passes = append(passes, sourcePass{source, locator.Locate, remover.Remove})
		}
	}
	return passes
}

func (p *Purger) runPass(pass sourcePass, matcher *program.Matcher, dryRun bool) sourceResult {
	result := sourceResult{Source: pass.source}

	entries, err := pass.locate(matcher)
	if err != nil {
		result.Warnings = append(result.Warnings, err.Error())
		if p.OnWarning != nil {
			p.OnWarning(pass.source, err)
		}
	}
	if p.OnCandidates != nil {
		p.OnCandidates(pass.source, len(entries))
	}

	if dryRun {
		for _, entry := range entries {
			result.Outcomes = append(result.Outcomes, RemovalOutcome{
				Entry:   entry,
				Success: true,
				DryRun:  true,
			})
		}
	} else {
		result.Outcomes = pass.remove(entries)
	}

	if p.OnOutcome != nil {
		for _, outcome := range result.Outcomes {
			p.OnOutcome(outcome)
		}
	}
	return result
}
