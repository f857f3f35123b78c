package adaptive

import (
	"fmt"
	"sync"
)

// Job is one independent filtering run.
type Job struct {
	Config    Config
	Reference []float64
	Desired   []float64
}

// ProcessBatch runs each job with its own filter and returns the results in
// job order. With parallel set, jobs run concurrently, one goroutine per job;
// results are bit-identical to sequential processing because no state is
// shared between jobs.
//
// On failure the first error is returned, tagged with the job index.
func ProcessBatch(jobs []Job, parallel bool) ([]*Result, error) {
	if parallel && len(jobs) > 1 {
		return processParallel(jobs)
	}
	return processSequential(jobs)
}

func processJob(job *Job) (*Result, error) {
	f, err := New(&job.Config)
	if err != nil {
		return nil, err
	}
	return f.Process(job.Reference, job.Desired)
}

// processParallel runs jobs concurrently.
func processParallel(jobs []Job) ([]*Result, error) {
	results := make([]*Result, len(jobs))
	var wg sync.WaitGroup
	var processErr error
	var errMu sync.Mutex

	for i := range jobs {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			res, err := processJob(&jobs[idx])
			if err != nil {
				errMu.Lock()
				if processErr == nil {
					processErr = fmt.Errorf("filtering failed on job %d: %w", idx, err)
				}
				errMu.Unlock()
				return
			}
			results[idx] = res
		}(i)
	}
	wg.Wait()

	if processErr != nil {
		return nil, processErr
	}
	return results, nil
}

// processSequential runs jobs one by one.
func processSequential(jobs []Job) ([]*Result, error) {
	results := make([]*Result, len(jobs))
	for i := range jobs {
		res, err := processJob(&jobs[i])
		if err != nil {
			return nil, fmt.Errorf("filtering failed on job %d: %w", i, err)
		}
		results[i] = res
	}
	return results, nil
}
