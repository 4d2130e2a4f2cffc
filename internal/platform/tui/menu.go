package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/games/memory"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

// Main menu rows.
const (
	menuPlay = iota
	menuDifficulty
	menuLevel
	menuScoreboard
	menuQuit
	menuItemCount
)

// MenuSelection is what the player chose to play.
type MenuSelection struct {
	Difficulty config.DifficultyPreset
	StartLevel int
}

// MenuModel is the Bubble Tea model for the main menu: play, pick a
// difficulty and starting level, open the scoreboard or quit.
type MenuModel struct {
	base           config.MemoryConfig
	presets        []config.DifficultyPreset
	difficulty     int // index into presets
	level          int
	cursor         int
	levelCursor    int
	inLevelSelect  bool
	width          int
	height         int
	config         core.RuntimeConfig
	best           *storage.RunRecord
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuSelection
	openScoreboard bool
}

// NewMenuModel creates a new menu model. base is the loaded game config the
// presets are applied to; store may be nil. The custom preset plays base
// unchanged.
func NewMenuModel(base config.MemoryConfig, preset config.DifficultyPreset, store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	if preset == "" {
		preset = config.DifficultyNormal
	}
	presets := config.Presets()
	difficulty := 0
	for i, p := range presets {
		if p == preset {
			difficulty = i
		}
	}

	m := MenuModel{
		base:       base,
		presets:    presets,
		difficulty: difficulty,
		level:      1,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
	}
	if store != nil {
		if best, err := store.BestRun(memory.GameID); err == nil {
			m.best = best
		}
	}
	return m
}

// Preset returns the currently chosen difficulty.
func (m MenuModel) Preset() config.DifficultyPreset {
	return m.presets[m.difficulty]
}

// GameConfig returns the base config with the chosen preset applied.
func (m MenuModel) GameConfig() config.MemoryConfig {
	cfg := m.base
	config.ApplyMemoryPreset(&cfg, m.Preset())
	return cfg
}

func (m MenuModel) levels() []config.LevelInfo {
	cfg := m.GameConfig()
	return config.NewProgression(cfg.Board, cfg.Progression).Levels()
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelSelectKey(action)
		}
		return m.handleKey(action)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes input on the main menu.
func (m MenuModel) handleKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < menuItemCount-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.adjust(-1)

	case MenuActionRight:
		m.adjust(1)

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit

	case MenuActionSelect:
		switch m.cursor {
		case menuPlay:
			m.selected = &MenuSelection{Difficulty: m.Preset(), StartLevel: m.level}
			return m, tea.Quit
		case menuDifficulty:
			m.adjust(1)
		case menuLevel:
			m.inLevelSelect = true
			m.levelCursor = m.level - 1
		case menuScoreboard:
			m.openScoreboard = true
			return m, tea.Quit
		case menuQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// adjust changes the value on the difficulty or level row.
func (m *MenuModel) adjust(delta int) {
	switch m.cursor {
	case menuDifficulty:
		n := len(m.presets)
		m.difficulty = (m.difficulty + delta + n) % n
		m.level = core.Clamp(m.level, 1, len(m.levels()))
	case menuLevel:
		m.level = core.Clamp(m.level+delta, 1, len(m.levels()))
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inLevelSelect {
		return m.viewLevelSelect()
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("M E M O R Y   M A T C H", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Find every pair before your score runs out", m.width))
	b.WriteString("\n\n")

	info := m.levels()[m.level-1]
	rows := []string{
		"Play",
		fmt.Sprintf("Difficulty: < %s >", m.Preset()),
		fmt.Sprintf("Start level: < %d > (%dx%d)", m.level, info.GridSize, info.GridSize),
		"Scoreboard",
		"Quit",
	}
	for i, row := range rows {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+row, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.Preset().Description(), m.width))
	b.WriteString("\n")
	if m.best != nil {
		best := fmt.Sprintf("Best run: level %d, peak %d, %d moves", m.best.Level, m.best.PeakScore, m.best.Moves)
		b.WriteString(centerText(best, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Change  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen game settings, or nil if none selected.
func (m MenuModel) Selected() *MenuSelection {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Selection       *MenuSelection
	GameConfig      config.MemoryConfig
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(base config.MemoryConfig, preset config.DifficultyPreset, store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(base, preset, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config:     m.Config(),
		GameConfig: m.GameConfig(),
	}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.Selection = m.Selected()
	default:
		result.Quit = true
	}

	return result, nil
}
