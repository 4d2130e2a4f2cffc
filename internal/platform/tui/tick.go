// Package tui provides the Bubble Tea front end for the memory game: the game
// loop, menus, scoreboard and the Wish SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-memory/internal/core"
)

// TickMsg advances the game by one tick interval. The session's celebration
// timer is driven by these ticks, not by the wall clock.
type TickMsg time.Time

// tickInterval is the game time one tick represents.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	return time.Second / time.Duration(tickRate)
}

func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
