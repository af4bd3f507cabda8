// Package pipeline fans segments out over a fixed pool of workers.
package pipeline

import (
	"context"
	"runtime"
	"sync"

	"text_humanizer/internal/chunk"
)

type Analyzer func(ctx context.Context, seg chunk.Segment) (string, error)

type Result struct {
	Index  int
	Output string
	Err    error
}

// AnalyzeSegments runs fn over every segment and returns one Result per segment, in segment
// order. Segments not yet started when ctx is cancelled carry ctx.Err().
func AnalyzeSegments(ctx context.Context, segments []chunk.Segment, workers int, fn Analyzer) []Result {
	if len(segments) == 0 || fn == nil {
		return nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
		if workers < 1 {
			workers = 1
		}
	}
	workers = min(workers, len(segments))

	results := make([]Result, len(segments))
	jobs := make(chan int)
	var wg sync.WaitGroup

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				seg := segments[i]
				if err := ctx.Err(); err != nil {
					results[i] = Result{Index: seg.Index, Err: err}
					continue
				}
				out, err := fn(ctx, seg)
				results[i] = Result{Index: seg.Index, Output: out, Err: err}
			}
		}()
	}

	for i := range segments {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

func Errors(results []Result) []error {
	var out []error
	for _, r := range results {
		if r.Err != nil {
			out = append(out, r.Err)
		}
	}
	return out
}
