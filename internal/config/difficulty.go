package config

// Progression maps level numbers to grid sizes.
type Progression struct {
	board BoardConfig
	cfg   ProgressionConfig
}

// NewProgression creates a progression for the given board bounds.
func NewProgression(board BoardConfig, cfg ProgressionConfig) Progression {
	return Progression{board: board, cfg: cfg}
}

// IsEnabled returns whether the board grows between levels.
func (p Progression) IsEnabled() bool {
	return p.cfg.Enabled && p.cfg.GrowEvery > 0 && p.cfg.SizeStep > 0
}

// GridSize returns the grid side length for a 1-based level.
// The result is clamped to the configured bounds and is never below MinGridSize.
func (p Progression) GridSize(level int) int {
	if level < 1 {
		level = 1
	}
	size := p.board.StartSize
	if p.IsEnabled() {
		size += (level - 1) / p.cfg.GrowEvery * p.cfg.SizeStep
	}

	lo := max(p.board.MinSize, MinGridSize)
	hi := max(p.board.MaxSize, lo)
	return min(max(size, lo), hi)
}

// maxLevelScan bounds the search in MaxedAt.
const maxLevelScan = 1000

// MaxedAt returns the first level that plays on the largest reachable grid,
// or 1 when the board never grows.
func (p Progression) MaxedAt() int {
	if !p.IsEnabled() {
		return 1
	}
	top := p.GridSize(maxLevelScan)
	for level := 1; level < maxLevelScan; level++ {
		if p.GridSize(level) == top {
			return level
		}
	}
	return maxLevelScan
}

// LevelInfo describes the board a level is played on.
type LevelInfo struct {
	Level    int `json:"level"`
	GridSize int `json:"gridSize"`
	Pairs    int `json:"pairs"`
}

// Levels lists levels 1..MaxedAt, i.e. every level up to the first one on
// the largest grid.
func (p Progression) Levels() []LevelInfo {
	last := p.MaxedAt()
	levels := make([]LevelInfo, 0, last)
	for level := 1; level <= last; level++ {
		size := p.GridSize(level)
		levels = append(levels, LevelInfo{
			Level:    level,
			GridSize: size,
			Pairs:    size * size / 2,
		})
	}
	return levels
}
