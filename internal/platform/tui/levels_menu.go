package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// handleLevelSelectKey processes input on the starting level list.
func (m MenuModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	levelCount := len(m.levels())

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp, MenuActionLeft:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown, MenuActionRight:
		if m.levelCursor < levelCount-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		m.level = m.levelCursor + 1
		m.inLevelSelect = false
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

// viewLevelSelect lists each level with the board it is played on.
func (m MenuModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT STARTING LEVEL", m.width))
	b.WriteString("\n\n")

	levels := m.levels()
	for i, info := range levels {
		cursor := "  "
		if i == m.levelCursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%sLevel %2d  %dx%d grid, %2d pairs", cursor, info.Level, info.GridSize, info.GridSize, info.Pairs)
		if i == len(levels)-1 && len(levels) > 1 {
			line += " (max)"
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}
