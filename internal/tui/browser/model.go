package browser

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kinow/cylc-ui/pkg/tree"
)

// displayRow is a single visible line group in the browser: one tree node
// at its depth. A job detail leaf spans several lines, everything else one.
type displayRow struct {
	node  tree.Node
	depth int
}

// height returns how many terminal lines the row occupies, taken from the
// node's rendering size hint.
func (r displayRow) height() int {
	if renderable, ok := r.node.(tree.Renderable); ok {
		return renderable.Size()
	}
	return tree.BaseNodeSize
}

func (r displayRow) foldable() bool {
	switch r.node.Kind() {
	case tree.KindCyclePoint, tree.KindFamilyProxy, tree.KindTaskProxy, tree.KindJob:
		return len(r.node.Children()) > 0
	}
	return false
}

// Model is the main model for the workflow tree browser TUI
type Model struct {
	tr       *tree.Tree
	expanded map[string]bool
	rows     []displayRow
	cursor   int
	scroll   int
	width    int
	height   int
	keys     KeyMap
	showHelp bool
}

// New builds a browser over an already-populated tree. Expansion state is
// seeded from each node's default: cycle points and families open, tasks
// and jobs closed.
func New(tr *tree.Tree) Model {
	m := Model{
		tr:       tr,
		expanded: make(map[string]bool),
		keys:     DefaultKeyMap(),
		width:    100,
		height:   30,
	}
	tree.Walk(tr.Root(), 0, func(n tree.Node, depth int) bool {
		if renderable, ok := n.(tree.Renderable); ok {
			m.expanded[n.ID()] = renderable.DefaultOpen()
		}
		return true
	})
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refresh rebuilds the visible rows from the tree and expansion state.
// The workflow root is not a row: the tree view shows only descendants.
func (m *Model) refresh() {
	m.rows = m.rows[:0]
	root := m.tr.Root()
	if root == nil {
		return
	}
	var walk func(n tree.Node, depth int)
	walk = func(n tree.Node, depth int) {
		m.rows = append(m.rows, displayRow{node: n, depth: depth})
		if !m.expanded[n.ID()] {
			return
		}
		for _, child := range n.Children() {
			walk(child, depth+1)
		}
	}
	for _, child := range root.Children() {
		walk(child, 0)
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) setAll(open bool) {
	tree.Walk(m.tr.Root(), 0, func(n tree.Node, depth int) bool {
		if _, ok := n.(tree.Renderable); ok {
			if n.Kind() != tree.KindJobDetails {
				m.expanded[n.ID()] = open
			}
		}
		return true
	})
	m.refresh()
}
