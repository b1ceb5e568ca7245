package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
	"github.com/spf13/cobra"

	"github.com/papapumpkin/surfer/internal/config"
	"github.com/papapumpkin/surfer/internal/corpus"
	"github.com/papapumpkin/surfer/internal/graph"
	"github.com/papapumpkin/surfer/internal/rank"
)

var exportCmd = &cobra.Command{
	Use:   "export [dir]",
	Short: "Render the corpus link graph with Graphviz",
	Long: `Export crawls the given directory (default: cwd), computes iterative
PageRank, and renders the link graph to a file. Each node is labeled
with its page name and converged rank. The output format is inferred
from the file extension (.dot, .svg, .png, .jpg).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringP("out", "o", "corpus.svg", "output file")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	dir, err := resolveCorpusDir(args)
	if err != nil {
		return err
	}
	out, _ := cmd.Flags().GetString("out")
	format, err := formatForFile(out)
	if err != nil {
		return err
	}

	pages, err := corpus.Crawl(dir)
	if err != nil {
		return err
	}
	g := graph.Build(pages)
	ranks, err := rank.Iterate(g, rank.IterateOptions{
		Damping:       cfg.Damping,
		Tolerance:     cfg.Tolerance,
		MaxIterations: cfg.MaxIterations,
	})
	if err != nil {
		return err
	}
	return renderGraph(g, ranks, format, out)
}

// renderGraph draws the link graph, one node per page labeled with its
// converged rank.
func renderGraph(g *graph.Graph, ranks rank.Result, format graphviz.Format, out string) error {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("failed to create graphviz instance: %w", err)
	}
	vg, err := gv.Graph()
	if err != nil {
		return fmt.Errorf("failed to create graphviz graph: %w", err)
	}
	defer func() {
		_ = vg.Close()
		_ = gv.Close()
	}()

	nodes := make(map[string]*cgraph.Node, g.Len())
	for _, id := range g.Nodes() {
		n, err := vg.CreateNodeByName(id)
		if err != nil {
			return fmt.Errorf("failed to create node %s: %w", id, err)
		}
		n.SetLabel(fmt.Sprintf("%s\n%.4f", id, ranks[id]))
		nodes[id] = n
	}
	for _, id := range g.Nodes() {
		for _, target := range g.OutLinks(id) {
			if _, err := vg.CreateEdgeByName("", nodes[id], nodes[target]); err != nil {
				return fmt.Errorf("failed to create edge %s → %s: %w", id, target, err)
			}
		}
	}

	if err := gv.RenderFilename(ctx, vg, format, out); err != nil {
		return fmt.Errorf("failed to render %s: %w", out, err)
	}
	return nil
}

// formatForFile maps an output filename to a graphviz render format.
func formatForFile(out string) (graphviz.Format, error) {
	switch strings.ToLower(filepath.Ext(out)) {
	case ".dot":
		return graphviz.XDOT, nil
	case ".svg":
		return graphviz.SVG, nil
	case ".png":
		return graphviz.PNG, nil
	case ".jpg", ".jpeg":
		return graphviz.JPG, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (use .dot, .svg, .png, or .jpg)", filepath.Ext(out))
	}
}
