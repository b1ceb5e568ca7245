// Package tui renders ranking results in an interactive terminal view:
// one row per page, the sampling and iteration estimates side by side,
// sortable by page name or by rank.
package tui

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/surfer/internal/graph"
	"github.com/papapumpkin/surfer/internal/rank"
)

// SortMode selects the row ordering of the results table.
type SortMode int

const (
	// SortByNode orders rows alphabetically by page name.
	SortByNode SortMode = iota
	// SortByRank orders rows by iteration rank, highest first.
	SortByRank
)

// Row is one page with both rank estimates.
type Row struct {
	Node      string
	Sampling  float64
	Iteration float64
}

// Model is the BubbleTea model for the results browser.
type Model struct {
	Dir  string
	Keys KeyMap

	rows   []Row
	sort   SortMode
	cursor int
	offset int
	width  int
	height int

	nodes, edges int
}

// NewModel builds a results browser over the two estimates.
func NewModel(dir string, g *graph.Graph, sampling, iteration rank.Result) Model {
	rows := make([]Row, 0, g.Len())
	for _, id := range g.Nodes() {
		rows = append(rows, Row{Node: id, Sampling: sampling[id], Iteration: iteration[id]})
	}
	return Model{
		Dir:   dir,
		Keys:  DefaultKeyMap(),
		rows:  rows,
		nodes: g.Len(),
		edges: g.Edges(),
	}
}

// Rows returns the rows in the current sort order.
func (m Model) Rows() []Row {
	sorted := make([]Row, len(m.rows))
	copy(sorted, m.rows)
	switch m.sort {
	case SortByRank:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Iteration > sorted[j].Iteration
		})
	default:
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i].Node < sorted[j].Node
		})
	}
	return sorted
}

// Cursor returns the index of the selected row.
func (m Model) Cursor() int { return m.cursor }

// Sort returns the active sort mode.
func (m Model) Sort() SortMode { return m.sort }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.Keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.Keys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.Keys.Sort):
			if m.sort == SortByNode {
				m.sort = SortByRank
			} else {
				m.sort = SortByNode
			}
			m.cursor = 0
			m.offset = 0
		}
		m.clampScroll()
	}
	return m, nil
}

// clampScroll keeps the cursor inside the visible window.
func (m *Model) clampScroll() {
	visible := m.visibleRows()
	if visible <= 0 {
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
}

// visibleRows returns how many table rows fit between the status bar,
// header, and footer.
func (m Model) visibleRows() int {
	if m.height == 0 {
		return len(m.rows)
	}
	return m.height - 4
}

func (m Model) View() string {
	var b strings.Builder

	status := fmt.Sprintf("%s surfer — %s — %d pages, %d links",
		styleStatusLabel.Render("⬢"), m.Dir, m.nodes, m.edges)
	bar := styleStatusBar
	if m.width > 0 {
		bar = bar.Width(m.width)
	}
	b.WriteString(bar.Render(status))
	b.WriteString("\n")

	b.WriteString(styleHeader.Render(fmt.Sprintf("  %-28s %10s %10s %8s", "PAGE", "SAMPLING", "ITERATION", "Δ")))
	b.WriteString("\n")

	rows := m.Rows()
	leader := leaderNode(rows)
	visible := m.visibleRows()
	end := len(rows)
	if visible > 0 && m.offset+visible < end {
		end = m.offset + visible
	}
	for i := m.offset; i < end; i++ {
		r := rows[i]
		line := fmt.Sprintf("%-28s %10.4f %10.4f %8.4f",
			r.Node, r.Sampling, r.Iteration, math.Abs(r.Iteration-r.Sampling))

		style := styleRowNormal
		if r.Node == leader {
			style = styleRowLeader
		}
		if i == m.cursor {
			b.WriteString(selectionIndicator + styleRowSelected.Render(line))
		} else {
			b.WriteString(" " + style.Render(line))
		}
		b.WriteString("\n")
	}

	help := fmt.Sprintf("↑/↓ move · s sort (%s) · q quit", sortLabel(m.sort))
	b.WriteString(styleFooter.Render(help))
	return b.String()
}

// leaderNode returns the page with the highest iteration rank.
func leaderNode(rows []Row) string {
	best := ""
	bestRank := math.Inf(-1)
	for _, r := range rows {
		if r.Iteration > bestRank {
			best = r.Node
			bestRank = r.Iteration
		}
	}
	return best
}

func sortLabel(s SortMode) string {
	if s == SortByRank {
		return "by rank"
	}
	return "by page"
}

// Run launches the results browser and blocks until the user quits.
func Run(dir string, g *graph.Graph, sampling, iteration rank.Result) error {
	p := tea.NewProgram(NewModel(dir, g, sampling, iteration), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
