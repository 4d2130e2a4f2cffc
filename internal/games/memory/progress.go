package memory

import "github.com/vovakirdan/tui-memory/internal/config"

// Progress is the level store the session reads its grid size from and
// reports cleared boards to.
type Progress interface {
	Level() int
	GridSize() int
	Advance()
	Reset()
}

// LevelTracker is the default Progress, backed by a config.Progression.
type LevelTracker struct {
	progression config.Progression
	startLevel  int
	level       int
}

// NewLevelTracker creates a tracker that starts (and resets) at startLevel.
func NewLevelTracker(p config.Progression, startLevel int) *LevelTracker {
	startLevel = max(startLevel, 1)
	return &LevelTracker{
		progression: p,
		startLevel:  startLevel,
		level:       startLevel,
	}
}

// Level returns the current 1-based level.
func (t *LevelTracker) Level() int {
	return t.level
}

// GridSize returns the grid side length for the current level.
func (t *LevelTracker) GridSize() int {
	return t.progression.GridSize(t.level)
}

// Advance moves to the next level.
func (t *LevelTracker) Advance() {
	t.level++
}

// Reset returns to the starting level.
func (t *LevelTracker) Reset() {
	t.level = t.startLevel
}
