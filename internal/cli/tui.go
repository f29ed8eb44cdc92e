package cli

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sugiyama/pkg/pipeline"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// NodeListModel - interactive node browser for a parsed graph
// =============================================================================

// nodeRow summarizes one node's position in the graph for display.
type nodeRow struct {
	id       string
	inDegree int
	outDegree int
}

// NodeListModel is the bubbletea model for interactively browsing the nodes
// of a parsed graph, sorted by out-degree so the most connected nodes (the
// ones most likely to dominate the layout) surface first.
type NodeListModel struct {
	Rows   []nodeRow
	Cursor int
	Height int
	Offset int
}

// NewNodeListModel builds a NodeListModel from a parsed graph.
func NewNodeListModel(g *pipeline.GraphInput) NodeListModel {
	inDeg := make(map[string]int, len(g.Nodes))
	outDeg := make(map[string]int, len(g.Nodes))
	for _, e := range g.Edges {
		outDeg[e.From]++
		inDeg[e.To]++
	}

	rows := make([]nodeRow, len(g.Nodes))
	for i, id := range g.Nodes {
		rows[i] = nodeRow{id: id, inDegree: inDeg[id], outDegree: outDeg[id]}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].outDegree != rows[j].outDegree {
			return rows[i].outDegree > rows[j].outDegree
		}
		return rows[i].id < rows[j].id
	})

	return NodeListModel{Rows: rows, Height: 15}
}

func (m NodeListModel) Init() tea.Cmd {
	return nil
}

func (m NodeListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Rows)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m NodeListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Graph Nodes"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Rows) {
		end = len(m.Rows)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		r := m.Rows[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, r.id, fmt.Sprintf("%d", r.inDegree), fmt.Sprintf("%d", r.outDegree)})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Node", "In", "Out").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Rows))))

	return b.String()
}

// =============================================================================
// explore command
// =============================================================================

// exploreCommand creates the explore command for interactively browsing the
// nodes of a parsed graph before committing to a full layout run.
func (c *CLI) exploreCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explore [graph.json]",
		Short: "Interactively browse a graph's nodes, ranked by out-degree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := pipeline.ParseFile(args[0])
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}
			input := &pipeline.GraphInput{Nodes: g.Nodes()}
			for _, e := range g.Edges() {
				input.Edges = append(input.Edges, pipeline.EdgeInput{From: e.From, To: e.To})
			}

			p := tea.NewProgram(NewNodeListModel(input))
			_, err = p.Run()
			return err
		},
	}
	return cmd
}
