// Package ui renders ranking results and run status on the terminal.
// Rankings go to stdout so they can be piped; status and errors go to
// stderr.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/papapumpkin/surfer/internal/rank"
)

// ANSI color codes.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	yellow = "\033[33m"
	red    = "\033[31m"
	cyan   = "\033[36m"
)

// Printer writes human-readable output. The zero value is not usable;
// construct with New (process streams) or NewWithWriters (tests).
type Printer struct {
	out io.Writer
	err io.Writer
}

func New() *Printer {
	return &Printer{out: os.Stdout, err: os.Stderr}
}

func NewWithWriters(out, err io.Writer) *Printer {
	return &Printer{out: out, err: err}
}

func (p *Printer) Banner() {
	fmt.Fprintln(p.err, bold+cyan+"  ╔═══════════════════════════════════╗"+reset)
	fmt.Fprintln(p.err, bold+cyan+"  ║"+reset+bold+"   SURFER  "+dim+"  pagerank analyzer   "+reset+bold+cyan+"  ║"+reset)
	fmt.Fprintln(p.err, bold+cyan+"  ╚═══════════════════════════════════╝"+reset)
	fmt.Fprintln(p.err)
}

// CorpusSummary reports what the crawl found before ranking starts.
func (p *Printer) CorpusSummary(dir string, nodes, edges, sinks int) {
	fmt.Fprintf(p.err, dim+"corpus %s: %d pages, %d links, %d sinks"+reset+"\n", dir, nodes, edges, sinks)
}

// Results prints one estimator's ranking, sorted by page name.
func (p *Printer) Results(title string, entries []rank.Entry) {
	fmt.Fprintf(p.out, bold+cyan+"%s"+reset+"\n", title)
	for _, e := range entries {
		fmt.Fprintf(p.out, "  %s: %.4f\n", e.Node, e.Rank)
	}
	fmt.Fprintln(p.out)
}

// Rerank announces a watch-mode recompute triggered by a corpus change.
func (p *Printer) Rerank(file string) {
	fmt.Fprintf(p.err, yellow+"⟳ corpus changed"+reset+dim+" (%s)"+reset+" — recomputing\n", file)
}

// Watching announces that watch mode is active.
func (p *Printer) Watching(dir string) {
	fmt.Fprintf(p.err, dim+"watching %s for changes (ctrl-c to stop)"+reset+"\n", dir)
}

func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.err, red+bold+"error: "+reset+"%s\n", msg)
}
