// ABOUTME: Unit tests for the source-pass worker pool
// ABOUTME: Verifies completeness and canonical ordering of collected results
package residue

import (
	"sync/atomic"
	"testing"
)

func TestRunSourceJobs_AllJobsExecuteOnce(t *testing.T) {
	var calls int32
	jobs := make([]sourceJob, 0, len(AllSources))
	for _, source := range AllSources {
		source := source
		jobs = append(jobs, sourceJob{
			Source: source,
			Run: func() sourceResult {
				atomic.AddInt32(&calls, 1)
				return sourceResult{Source: source}
			},
		})
	}

	results := runSourceJobs(jobs, 2)

	if got := atomic.LoadInt32(&calls); got != int32(len(jobs)) {
		t.Errorf("jobs executed %d times, want %d", got, len(jobs))
	}
	if len(results) != len(jobs) {
		t.Fatalf("got %d results, want %d", len(results), len(jobs))
	}
	for i, job := range jobs {
		if results[i].Source != job.Source {
			t.Errorf("results[%d].Source = %v, want %v", i, results[i].Source, job.Source)
		}
	}
}

func TestRunSourceJobs_Empty(t *testing.T) {
	if results := runSourceJobs(nil, 4); results != nil {
		t.Errorf("results = %v, want nil", results)
	}
}

func TestRunSourceJobs_ZeroWorkersUsesDefault(t *testing.T) {
	jobs := []sourceJob{{
		Source: SourcePath,
		Run:    func() sourceResult { return sourceResult{Source: SourcePath} },
	}}
	results := runSourceJobs(jobs, 0)
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
}
