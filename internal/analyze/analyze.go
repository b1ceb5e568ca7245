// Package analyze wires the pipeline together: crawl a corpus
// directory, build the link graph, and run both rank estimators. It is
// the seam between the CLI commands and the computational core.
package analyze

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/papapumpkin/surfer/internal/corpus"
	"github.com/papapumpkin/surfer/internal/graph"
	"github.com/papapumpkin/surfer/internal/rank"
)

// Params carries the tuning knobs for one analysis run.
type Params struct {
	Damping       float64
	Samples       int
	Tolerance     float64
	MaxIterations int

	// Source seeds the sampling walk; nil means time-seeded.
	Source rand.Source
}

// Report holds everything one run produced.
type Report struct {
	Graph     *graph.Graph
	Sampling  rank.Result
	Iteration rank.Result

	SamplingTime  time.Duration
	IterationTime time.Duration
}

// Run crawls dir and ranks its link graph with both estimators. The two
// estimators have no data dependency on each other and share only the
// immutable graph, so they run concurrently. Either estimator failing
// fails the whole run; there are no partial reports.
func Run(dir string, p Params) (*Report, error) {
	pages, err := corpus.Crawl(dir)
	if err != nil {
		return nil, err
	}
	g := graph.Build(pages)
	if g.Len() == 0 {
		return nil, fmt.Errorf("%w: no HTML pages in %s", rank.ErrEmptyGraph, dir)
	}
	return Rank(g, p)
}

// Rank runs both estimators over an already-built graph.
func Rank(g *graph.Graph, p Params) (*Report, error) {
	report := &Report{Graph: g}

	type outcome struct {
		result  rank.Result
		elapsed time.Duration
		err     error
	}

	samplingCh := make(chan outcome, 1)
	go func() {
		start := time.Now()
		result, err := rank.Sample(g, rank.SampleOptions{
			Damping: p.Damping,
			Samples: p.Samples,
			Source:  p.Source,
		})
		samplingCh <- outcome{result, time.Since(start), err}
	}()

	iterationCh := make(chan outcome, 1)
	go func() {
		start := time.Now()
		result, err := rank.Iterate(g, rank.IterateOptions{
			Damping:       p.Damping,
			Tolerance:     p.Tolerance,
			MaxIterations: p.MaxIterations,
		})
		iterationCh <- outcome{result, time.Since(start), err}
	}()

	sampling := <-samplingCh
	iteration := <-iterationCh
	if err := errors.Join(sampling.err, iteration.err); err != nil {
		return nil, err
	}

	report.Sampling = sampling.result
	report.SamplingTime = sampling.elapsed
	report.Iteration = iteration.result
	report.IterationTime = iteration.elapsed
	return report, nil
}
