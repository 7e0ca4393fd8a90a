package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kinow/cylc-ui/internal/render"
	"github.com/kinow/cylc-ui/pkg/models"
	"github.com/kinow/cylc-ui/pkg/tree"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	stateStyles = map[string]lipgloss.Style{
		models.StateRunning:      lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		models.StateSucceeded:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		models.StateFailed:       lipgloss.NewStyle().Foreground(lipgloss.Color("204")),
		models.StateSubmitFailed: lipgloss.NewStyle().Foreground(lipgloss.Color("204")),
		models.StateSubmitted:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		models.StateRetrying:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		models.StateWaiting:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		models.StateHeld:         lipgloss.NewStyle().Foreground(lipgloss.Color("136")),
	}
)

func (m Model) View() string {
	if m.tr == nil || m.tr.Root() == nil {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	header := m.renderHeader()
	body := m.renderRows()
	footer := helpStyle.Render("↑/↓ move · enter fold · E/C all · ? help · q quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) renderHeader() string {
	workflow := m.tr.Root().Workflow()
	title := headerStyle.Render(m.tr.Root().ID())
	if workflow.Status == "" {
		return title
	}
	return title + " " + mutedStyle.Render("("+workflow.Status+")")
}

func (m Model) viewportHeight() int {
	// Header and footer take one line each, plus their spacing.
	h := m.height - 3
	if h < 3 {
		h = 3
	}
	return h
}

func (m Model) renderRows() string {
	var lines []string
	budget := m.viewportHeight()

	for i := m.scroll; i < len(m.rows) && budget > 0; i++ {
		row := m.rows[i]
		for _, line := range m.renderRow(row, i == m.cursor) {
			if budget == 0 {
				break
			}
			lines = append(lines, line)
			budget--
		}
	}

	if len(lines) == 0 {
		lines = append(lines, mutedStyle.Render("(empty workflow)"))
	}
	return strings.Join(lines, "\n")
}

// renderRow returns the terminal lines for one visible row. All kinds
// render a single line except the job detail leaf, which expands into its
// property lines.
func (m Model) renderRow(row displayRow, selected bool) []string {
	indent := strings.Repeat("  ", row.depth)

	if details, ok := row.node.(*tree.JobDetailsNode); ok {
		lines := make([]string, 0, tree.JobDetailProperties)
		for _, line := range render.JobDetails(details) {
			lines = append(lines, indent+mutedStyle.Render(line))
		}
		if selected && len(lines) > 0 {
			lines[0] = cursorStyle.Render("> ") + lines[0]
		} else if len(lines) > 0 {
			lines[0] = "  " + lines[0]
		}
		for i := 1; i < len(lines); i++ {
			lines[i] = "  " + lines[i]
		}
		return lines
	}

	marker := "  "
	if selected {
		marker = cursorStyle.Render("> ")
	}

	fold := "  "
	if row.foldable() {
		if m.expanded[row.node.ID()] {
			fold = "▾ "
		} else {
			fold = "▸ "
		}
	}

	return []string{marker + indent + fold + m.label(row.node)}
}

func (m Model) label(n tree.Node) string {
	switch n := n.(type) {
	case *tree.CyclePointNode:
		return headerStyle.Render(n.ID())
	case *tree.FamilyProxyNode:
		name := n.Family().Name
		if name == "" {
			name = n.ID()
		}
		return name + " " + stateGlyph(n.Family().State)
	case *tree.TaskProxyNode:
		name := n.TaskProxy().Name
		if name == "" {
			name = n.ID()
		}
		label := name + " " + stateGlyph(n.TaskProxy().StateName())
		if n.TaskProxy().IsHeld {
			label += mutedStyle.Render(" (held)")
		}
		return label
	case *tree.JobNode:
		return fmt.Sprintf("#%d %s", n.Job().SubmitNum, stateGlyph(n.Job().State))
	}
	return n.ID()
}

func stateGlyph(state string) string {
	if state == "" {
		return mutedStyle.Render("○ unknown")
	}
	style, ok := stateStyles[state]
	if !ok {
		style = mutedStyle
	}
	return style.Render("● " + state)
}

func (m Model) renderHelp() string {
	rows := [][2]string{
		{"↑/k, ↓/j", "move the cursor"},
		{"pgup, pgdn", "move by a page"},
		{"g, G", "jump to top / bottom"},
		{"enter, space", "expand or collapse the node"},
		{"E, C", "expand or collapse everything"},
		{"?", "toggle this help"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("Workflow tree browser"))
	b.WriteString("\n\n")
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			cursorStyle.Render(fmt.Sprintf("%-14s", row[0])),
			row[1]))
	}
	return b.String()
}
