package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/games/memory"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

func newTestModel(t *testing.T, initialScore int) (GameModel, *memory.Game, *storage.Store) {
	t.Helper()

	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cfg := config.DefaultMemoryConfig()
	cfg.Scoring.InitialScore = initialScore
	game := memory.NewWithConfig(cfg, 1)

	m := NewGameModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}, GameOptions{
		Store:      store,
		Difficulty: "normal",
	})
	m.Init()
	return m, game, store
}

func step(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm
}

// clickTile presses the mouse on the tile at idx and runs one tick.
func clickTile(t *testing.T, m GameModel, g *memory.Game, idx int) GameModel {
	t.Helper()
	for y := range 24 {
		for x := range 80 {
			if i, ok := g.TileAt(x, y); ok && i == idx {
				m = step(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
				return step(t, m, TickMsg{})
			}
		}
	}
	t.Fatalf("tile %d not on screen", idx)
	return m
}

// loseRound flips tile 0 and a tile that does not match it.
func loseRound(t *testing.T, m GameModel, g *memory.Game) GameModel {
	t.Helper()
	board := g.Session().State().Board
	other := -1
	for i := 1; i < len(board); i++ {
		if board[i] != board[0] {
			other = i
			break
		}
	}
	m = clickTile(t, m, g, 0)
	return clickTile(t, m, g, other)
}

func TestGameModelSavesRunOnGameOver(t *testing.T) {
	m, g, store := newTestModel(t, 5)

	m = loseRound(t, m, g)
	if !m.State().GameOver {
		t.Fatalf("expected game over, state = %+v", m.State())
	}

	// Extra ticks must not save the same run twice
	m = step(t, m, TickMsg{})
	m = step(t, m, TickMsg{})

	runs, err := store.TopRuns(memory.GameID, 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 saved run, got %d", len(runs))
	}
	if runs[0].Moves != 1 || runs[0].Level != 1 || runs[0].PeakScore != 5 || runs[0].Difficulty != "normal" {
		t.Errorf("Unexpected run: %+v", runs[0])
	}

	// Retry starts a new run that is saved separately
	m = step(t, m, runeKey('r'))
	m = step(t, m, TickMsg{})
	if m.State().GameOver {
		t.Fatal("retry should clear game over")
	}
	m = loseRound(t, m, g)

	runs, _ = store.TopRuns(memory.GameID, 10)
	if len(runs) != 2 {
		t.Errorf("Expected 2 saved runs, got %d", len(runs))
	}

	// Exit goes back to the menu without saving again
	m = step(t, m, runeKey('x'))
	m = step(t, m, TickMsg{})
	if !m.BackToMenu() {
		t.Error("exit should return to the menu")
	}
	if m.IsQuitting() {
		t.Error("exit inside a session must not quit the program")
	}
	runs, _ = store.TopRuns(memory.GameID, 10)
	if len(runs) != 2 {
		t.Errorf("Expected 2 saved runs after exit, got %d", len(runs))
	}
}

func TestGameModelQuitSavesStartedRun(t *testing.T) {
	m, g, store := newTestModel(t, 15)

	m = loseRound(t, m, g)
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if !next.(GameModel).IsQuitting() {
		t.Error("model should be quitting")
	}

	runs, _ := store.TopRuns(memory.GameID, 10)
	if len(runs) != 1 || runs[0].Moves != 1 {
		t.Errorf("Expected the started run to be saved, got %+v", runs)
	}
}

func TestGameModelQuitWithoutMovesSavesNothing(t *testing.T) {
	m, _, store := newTestModel(t, 15)

	m.Update(runeKey('q'))

	runs, _ := store.TopRuns(memory.GameID, 10)
	if len(runs) != 0 {
		t.Errorf("Expected no runs, got %d", len(runs))
	}
}

func TestGameModelResizeKeepsRun(t *testing.T) {
	m, g, _ := newTestModel(t, 15)

	m = loseRound(t, m, g)
	m = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m = step(t, m, TickMsg{})

	if m.State().Moves != 1 {
		t.Errorf("resize reset the run: moves = %d", m.State().Moves)
	}
}

func TestGameModelView(t *testing.T) {
	m, _, _ := newTestModel(t, 15)
	m = step(t, m, TickMsg{})

	view := m.View()
	if !strings.Contains(view, "Memory Match") {
		t.Error("view should contain the title")
	}
	if !strings.Contains(view, "??") {
		t.Error("view should show face-down cards")
	}
}
