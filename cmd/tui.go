package cmd

import (
	"github.com/spf13/cobra"

	"github.com/papapumpkin/surfer/internal/analyze"
	"github.com/papapumpkin/surfer/internal/config"
	"github.com/papapumpkin/surfer/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [dir]",
	Short: "Browse both rankings in an interactive terminal view",
	Long: `Tui crawls the given directory (default: cwd), runs both estimators,
and opens an interactive table of the results: one row per page, the
sampling and iteration estimates side by side, sortable by page name
or by rank.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().Uint64("seed", 0, "fixed random seed for the sampling walk (0 = time-seeded)")

	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dir, err := resolveCorpusDir(args)
	if err != nil {
		return err
	}

	seed, _ := cmd.Flags().GetUint64("seed")
	report, err := analyze.Run(dir, analyze.Params{
		Damping:       cfg.Damping,
		Samples:       cfg.Samples,
		Tolerance:     cfg.Tolerance,
		MaxIterations: cfg.MaxIterations,
		Source:        sourceForSeed(seed),
	})
	if err != nil {
		return err
	}
	return tui.Run(dir, report.Graph, report.Sampling, report.Iteration)
}
