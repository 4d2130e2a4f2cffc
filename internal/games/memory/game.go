package memory

import (
	"time"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/registry"
)

// GameID is the registry and storage identifier of the memory game.
const GameID = "memory"

// Game adapts a Session to the arcade platform: it maps cursor and pointer
// input to tile clicks, drives the celebration timer from ticks and renders
// the board.
type Game struct {
	cfg        config.MemoryConfig
	startLevel int
	session    *Session
	tickRate   int
	tick       uint64

	cursor   int
	screenW  int
	screenH  int
	tooSmall bool
}

// Package-level settings applied by New, set from CLI flags.
var (
	configPath       string
	difficultyPreset string
	selectedStart    int
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on top of the loaded config.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetStartLevel sets the starting level. 0 means level 1.
func SetStartLevel(level int) {
	selectedStart = level
}

// New creates a game from the package-level settings.
// A config that fails to load falls back to the defaults.
func New() *Game {
	cfg, err := LoadConfig(configPath, difficultyPreset)
	if err != nil {
		cfg = config.DefaultMemoryConfig()
	}
	return NewWithConfig(cfg, selectedStart)
}

// NewWithConfig creates a game with an explicit config and starting level.
func NewWithConfig(cfg config.MemoryConfig, startLevel int) *Game {
	return &Game{
		cfg:        cfg,
		startLevel: max(startLevel, 1),
	}
}

// LoadConfig loads the game config and applies a named difficulty preset.
func LoadConfig(path, preset string) (config.MemoryConfig, error) {
	cfg, err := config.LoadMemory(path)
	if err != nil {
		return cfg, err
	}
	if p, ok := config.ParsePreset(preset); ok && p != "" {
		config.ApplyMemoryPreset(&cfg, p)
	}
	return cfg, nil
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return GameID }

// Title returns the display name.
func (g *Game) Title() string { return "Memory Match" }

// Session exposes the underlying session, mainly for tests and tooling.
func (g *Game) Session() *Session { return g.session }

// Reset starts a fresh run.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.session = NewSession(Options{
		Config:     g.cfg,
		StartLevel: g.startLevel,
		Seed:       cfg.Seed,
	})
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.tick = 0
	g.cursor = 0
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen dimensions without touching the run.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// checkScreenSize checks if the current board fits on screen.
func (g *Game) checkScreenSize() {
	if g.session == nil {
		return
	}
	l := g.layout()
	minW := max(l.boardW, minHUDWidth)
	minH := l.boardY + l.boardH + 1
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	var events []core.Event

	if g.tooSmall {
		g.checkScreenSize()
		return core.StepResult{State: g.State()}
	}

	s := g.session

	if s.GameOver() {
		switch {
		case in.Has(core.ActionRestart):
			s.Retry()
			g.cursor = 0
			g.checkScreenSize()
			events = append(events, g.event(core.EventRetry))
		case in.Has(core.ActionExit):
			s.Exit()
			events = append(events, g.event(core.EventExit))
		}
		return core.StepResult{State: g.State(), Events: events}
	}

	if in.Has(core.ActionPause) {
		s.TogglePause()
	}
	if s.Paused() {
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	if in.Has(core.ActionFlip) {
		events = g.click(g.cursor, events)
	}
	if p, ok := in.Pointer(); ok {
		if idx, hit := g.TileAt(p.X, p.Y); hit {
			g.cursor = idx
			events = g.click(idx, events)
		}
	}

	if out := s.Advance(time.Second / time.Duration(g.tickRate)); out.AdvanceLevel {
		g.cursor = core.Clamp(g.cursor, 0, max(len(s.State().Board)-1, 0))
		g.checkScreenSize()
		events = append(events, g.event(core.EventLevelAdvanced))
	}

	return core.StepResult{State: g.State(), Events: events}
}

// click sends a tile click to the session and records what it caused.
func (g *Game) click(index int, events []core.Event) []core.Event {
	out := g.session.Click(index)
	if out.Resolved {
		if out.Matched {
			events = append(events, g.event(core.EventMatch))
		} else {
			events = append(events, g.event(core.EventMismatch))
		}
	}
	if out.LevelCleared {
		events = append(events, g.event(core.EventLevelCleared))
	}
	if out.GameOver {
		events = append(events, g.event(core.EventGameOver))
	}
	return events
}

func (g *Game) event(kind core.EventKind) core.Event {
	return core.Event{Kind: kind, Level: g.session.Level(), Score: g.session.Score()}
}

// moveCursor moves the keyboard cursor across the grid, staying on tiles.
func (g *Game) moveCursor(in core.InputFrame) {
	side := g.session.GridSize()
	n := len(g.session.State().Board)
	if side <= 0 || n == 0 {
		return
	}

	row, col := g.cursor/side, g.cursor%side
	switch {
	case in.Has(core.ActionUp):
		row--
	case in.Has(core.ActionDown):
		row++
	case in.Has(core.ActionLeft):
		col--
	case in.Has(core.ActionRight):
		col++
	default:
		return
	}

	row = core.Clamp(row, 0, side-1)
	col = core.Clamp(col, 0, side-1)
	g.cursor = core.Clamp(row*side+col, 0, n-1)
}

// Cursor returns the board index under the keyboard cursor.
func (g *Game) Cursor() int { return g.cursor }

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	s := g.session
	return core.GameState{
		Score:     s.Score(),
		PeakScore: s.PeakScore(),
		Moves:     s.Moves(),
		Level:     s.Level(),
		GameOver:  s.GameOver() || s.Exited(),
		Paused:    s.Paused() || g.tooSmall || s.Celebrating(),
		Exited:    s.Exited(),
	}
}
