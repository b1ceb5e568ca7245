package cmd

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/papapumpkin/surfer/internal/analyze"
	"github.com/papapumpkin/surfer/internal/config"
	"github.com/papapumpkin/surfer/internal/corpus"
	"github.com/papapumpkin/surfer/internal/telemetry"
	"github.com/papapumpkin/surfer/internal/ui"
)

var rankCmd = &cobra.Command{
	Use:   "rank [dir]",
	Short: "Crawl a corpus directory and rank its pages with both estimators",
	Long: `Rank crawls the given directory (default: cwd) for HTML pages,
builds the link graph, and prints two PageRank estimates side by side:
one from sampling a random walk, one from fixed-point iteration.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRank,
}

func init() {
	rankCmd.Flags().Float64("damping", 0, "override damping factor")
	rankCmd.Flags().Int("samples", 0, "override random-walk sample count")
	rankCmd.Flags().Float64("tolerance", 0, "override convergence tolerance")
	rankCmd.Flags().Int("max-iterations", 0, "override iteration cap")
	rankCmd.Flags().Uint64("seed", 0, "fixed random seed for the sampling walk (0 = time-seeded)")
	rankCmd.Flags().BoolP("watch", "w", false, "keep running and recompute when the corpus changes")
	rankCmd.Flags().String("telemetry", "", "append run events to a JSONL file")

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, &cfg)

	dir, err := resolveCorpusDir(args)
	if err != nil {
		return err
	}

	printer := ui.New()

	var emitter *telemetry.Emitter
	if cfg.Telemetry != "" {
		emitter, err = telemetry.NewEmitter(cfg.Telemetry)
		if err != nil {
			return err
		}
		defer emitter.Close()
	}

	seed, _ := cmd.Flags().GetUint64("seed")

	if watch, _ := cmd.Flags().GetBool("watch"); watch {
		return watchAndRank(dir, cfg, seed, printer, emitter)
	}
	return rankOnce(dir, cfg, seed, printer, emitter)
}

// rankOnce runs the full crawl-build-estimate pipeline one time and
// prints both rankings.
func rankOnce(dir string, cfg config.Config, seed uint64, printer *ui.Printer, emitter *telemetry.Emitter) error {
	runID := uuid.NewString()
	_ = emitter.Emit(telemetry.Event{
		Timestamp: time.Now(),
		Kind:      telemetry.KindRunStart,
		RunID:     runID,
		Data: map[string]any{
			"dir":     dir,
			"damping": cfg.Damping,
			"samples": cfg.Samples,
		},
	})

	report, err := analyze.Run(dir, analyze.Params{
		Damping:       cfg.Damping,
		Samples:       cfg.Samples,
		Tolerance:     cfg.Tolerance,
		MaxIterations: cfg.MaxIterations,
		Source:        sourceForSeed(seed),
	})
	if err != nil {
		_ = emitter.Emit(telemetry.Event{
			Timestamp: time.Now(),
			Kind:      telemetry.KindEstimatorError,
			RunID:     runID,
			Data:      map[string]any{"error": err.Error()},
		})
		return err
	}

	g := report.Graph
	_ = emitter.Emit(telemetry.Event{
		Timestamp: time.Now(),
		Kind:      telemetry.KindGraphBuilt,
		RunID:     runID,
		Data: map[string]any{
			"nodes": g.Len(),
			"edges": g.Edges(),
			"sinks": len(g.Sinks()),
		},
	})
	_ = emitter.Emit(telemetry.Event{
		Timestamp: time.Now(),
		Kind:      telemetry.KindEstimatorDone,
		RunID:     runID,
		Estimator: telemetry.EstimatorSampling,
		Data:      map[string]any{"elapsed_ms": report.SamplingTime.Milliseconds()},
	})
	_ = emitter.Emit(telemetry.Event{
		Timestamp: time.Now(),
		Kind:      telemetry.KindEstimatorDone,
		RunID:     runID,
		Estimator: telemetry.EstimatorIteration,
		Data:      map[string]any{"elapsed_ms": report.IterationTime.Milliseconds()},
	})

	if cfg.Verbose {
		printer.CorpusSummary(dir, g.Len(), g.Edges(), len(g.Sinks()))
	}
	printer.Results("PageRank Results from Sampling", report.Sampling.Entries())
	printer.Results("PageRank Results from Iteration", report.Iteration.Entries())

	_ = emitter.Emit(telemetry.Event{
		Timestamp: time.Now(),
		Kind:      telemetry.KindRunDone,
		RunID:     runID,
	})
	return nil
}

// watchAndRank runs the pipeline once, then again on every corpus
// change until interrupted. Each recompute starts from a fresh crawl;
// nothing is updated incrementally.
func watchAndRank(dir string, cfg config.Config, seed uint64, printer *ui.Printer, emitter *telemetry.Emitter) error {
	if err := rankOnce(dir, cfg, seed, printer, emitter); err != nil {
		return err
	}

	watcher, err := corpus.NewWatcher(dir)
	if err != nil {
		return err
	}
	if err := watcher.Start(); err != nil {
		return err
	}
	defer watcher.Stop()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	printer.Watching(dir)
	for {
		select {
		case <-ctx.Done():
			return nil
		case change := <-watcher.Changes:
			printer.Rerank(change.File)
			// A broken intermediate state of the corpus should not kill
			// watch mode; report and wait for the next change.
			if err := rankOnce(dir, cfg, seed, printer, emitter); err != nil {
				printer.Error(err.Error())
			}
		}
	}
}

// applyFlagOverrides applies CLI flag values to the loaded config.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if v, _ := cmd.Flags().GetFloat64("damping"); v > 0 {
		cfg.Damping = v
	}
	if v, _ := cmd.Flags().GetInt("samples"); v > 0 {
		cfg.Samples = v
	}
	if v, _ := cmd.Flags().GetFloat64("tolerance"); v > 0 {
		cfg.Tolerance = v
	}
	if v, _ := cmd.Flags().GetInt("max-iterations"); v > 0 {
		cfg.MaxIterations = v
	}
	if v, _ := cmd.Flags().GetString("telemetry"); v != "" {
		cfg.Telemetry = v
	}
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		cfg.Verbose = true
	}
}

// resolveCorpusDir picks the corpus directory from args, defaulting to cwd.
func resolveCorpusDir(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return wd, nil
}

// sourceForSeed builds the sampling walk's random source. Seed zero
// means "not fixed": the estimator picks a time-seeded source itself.
func sourceForSeed(seed uint64) rand.Source {
	if seed == 0 {
		return nil
	}
	return rand.NewPCG(seed, seed)
}
