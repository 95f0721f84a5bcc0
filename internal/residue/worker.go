// ABOUTME: Worker pool for running source passes concurrently
// ABOUTME: Results are collected on a single goroutine and reordered canonically
package residue

import (
	"sync"
)

// DefaultWorkers is the default number of concurrent workers.
const DefaultWorkers = 4

type sourceJob struct {
	Source SourceKind
	Run    func() sourceResult
}

type sourceResult struct {
	Source   SourceKind
	Outcomes []RemovalOutcome
	Warnings []string
}

// runSourceJobs executes jobs concurrently and returns results in canonical
// source order so reports read the same as a sequential run. Each pass is
// internally sequential; only passes run in parallel.
func runSourceJobs(jobs []sourceJob, workers int) []sourceResult {
	if len(jobs) == 0 {
		return nil
	}

	if workers <= 0 {
		workers = DefaultWorkers
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}

	jobsChan := make(chan sourceJob, len(jobs))
	resultsChan := make(chan sourceResult, len(jobs))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobsChan {
				resultsChan <- job.Run()
			}
		}()
	}

	for _, job := range jobs {
		jobsChan <- job
	}
	close(jobsChan)

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	bySource := make(map[SourceKind]sourceResult, len(jobs))
	for result := range resultsChan {
		bySource[result.Source] = result
	}

	results := make([]sourceResult, 0, len(jobs))
	for _, job := range jobs {
		results = append(results, bySource[job.Source])
	}
	return results
}
