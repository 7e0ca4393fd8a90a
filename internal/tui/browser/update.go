package browser

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampScroll()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp

		case key.Matches(msg, m.keys.Up):
			m.moveCursor(-1)

		case key.Matches(msg, m.keys.Down):
			m.moveCursor(1)

		case key.Matches(msg, m.keys.PageUp):
			m.moveCursor(-m.pageSize())

		case key.Matches(msg, m.keys.PageDown):
			m.moveCursor(m.pageSize())

		case key.Matches(msg, m.keys.GoToTop):
			m.cursor = 0
			m.clampScroll()

		case key.Matches(msg, m.keys.GoToBottom):
			m.cursor = len(m.rows) - 1
			m.clampScroll()

		case key.Matches(msg, m.keys.Toggle):
			m.toggleCursor()

		case key.Matches(msg, m.keys.ExpandAll):
			m.setAll(true)
			m.clampScroll()

		case key.Matches(msg, m.keys.CollapseAll):
			m.setAll(false)
			m.clampScroll()
		}
	}

	return m, nil
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor > len(m.rows)-1 {
		m.cursor = len(m.rows) - 1
	}
	m.clampScroll()
}

func (m *Model) toggleCursor() {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return
	}
	row := m.rows[m.cursor]
	if !row.foldable() {
		return
	}
	m.expanded[row.node.ID()] = !m.expanded[row.node.ID()]
	m.refresh()
	m.clampScroll()
}

func (m *Model) pageSize() int {
	size := m.viewportHeight() - 1
	if size < 1 {
		size = 1
	}
	return size
}

// clampScroll keeps the cursor row inside the viewport, accounting for
// rows that span multiple lines.
func (m *Model) clampScroll() {
	if m.scroll > m.cursor {
		m.scroll = m.cursor
	}
	for m.linesBetween(m.scroll, m.cursor+1) > m.viewportHeight() && m.scroll < m.cursor {
		m.scroll++
	}
}

func (m *Model) linesBetween(from, to int) int {
	lines := 0
	for i := from; i < to && i < len(m.rows); i++ {
		lines += m.rows[i].height()
	}
	return lines
}
