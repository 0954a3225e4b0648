package runner

import (
	"context"
	"log/slog"
	"time"

	"maxsubarray/app/pkg/datasets"

	"golang.org/x/sync/errgroup"
)

type Result struct {
	Name   string `yaml:"name"`
	Type   string `yaml:"type"`
	Length int    `yaml:"length"`
	Shape  string `yaml:"shape"`
	Sum    string `yaml:"sum,omitempty"`

	// MaxElement and Total bound Sum from below; they meet it for
	// all-negative and all-non-negative shapes respectively.
	MaxElement string `yaml:"max_element,omitempty"`
	Total      string `yaml:"total,omitempty"`

	Error   string        `yaml:"error,omitempty"`
	Elapsed time.Duration `yaml:"elapsed"`

	Err error `yaml:"-"`
}

type Runner struct {
	// Maximum number of datasets computed at the same time.
	workers int

	logger *slog.Logger
}

func NewRunner(workers int, logger *slog.Logger) *Runner {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{workers: workers, logger: logger}
}

// Run computes every dataset and returns the results in input order.
// Datasets that have not started when ctx is done report ctx.Err().
func (r *Runner) Run(ctx context.Context, sets []datasets.Dataset) []Result {
	results := make([]Result, len(sets))

	var g errgroup.Group
	g.SetLimit(r.workers)

	for idx := range sets {
		idx := idx
		g.Go(func() error {
			results[idx] = r.compute(ctx, &sets[idx])
			r.log(&results[idx])
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (r *Runner) compute(ctx context.Context, ds *datasets.Dataset) Result {
	stats := ds.Stats()
	result := Result{
		Name:       ds.Name,
		Type:       ds.Type,
		Length:     ds.Len(),
		Shape:      stats.Shape,
		MaxElement: stats.MaxElement,
		Total:      stats.Total,
	}

	if err := ctx.Err(); err != nil {
		result.Err = err
		result.Error = err.Error()
		return result
	}

	start := time.Now()
	sum, err := ds.MaxSubarraySum()
	result.Elapsed = time.Since(start)

	if err != nil {
		result.Err = err
		result.Error = err.Error()
		return result
	}
	result.Sum = sum
	return result
}

func (r *Runner) log(result *Result) {
	if result.Err != nil {
		r.logger.Error("max subarray sum failed",
			"dataset", result.Name, "type", result.Type, "length", result.Length, "error", result.Err)
		return
	}
	r.logger.Info("max subarray sum computed",
		"dataset", result.Name, "type", result.Type, "length", result.Length,
		"shape", result.Shape, "sum", result.Sum, "elapsed", result.Elapsed)
}

func Failed(results []Result) int {
	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
		}
	}
	return failed
}
