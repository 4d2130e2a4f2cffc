// Package config provides YAML-based game configuration loading and
// level progression for the memory game.
package config

// MemoryConfig contains all configuration for the memory game.
type MemoryConfig struct {
	Scoring     ScoringConfig     `yaml:"scoring"`
	Board       BoardConfig       `yaml:"board"`
	Timing      TimingConfig      `yaml:"timing"`
	Progression ProgressionConfig `yaml:"progression"`
}

// ScoringConfig defines the score a run starts with and how it changes.
type ScoringConfig struct {
	InitialScore    int `yaml:"initial_score"`
	MatchBonus      int `yaml:"match_bonus"`
	MismatchPenalty int `yaml:"mismatch_penalty"`
}

// BoardConfig bounds the grid side length.
type BoardConfig struct {
	StartSize int `yaml:"start_size"` // Side length on level 1
	MinSize   int `yaml:"min_size"`
	MaxSize   int `yaml:"max_size"`
}

// TimingConfig holds delays measured in seconds.
type TimingConfig struct {
	CelebrationSeconds float64 `yaml:"celebration_seconds"` // Pause between a cleared board and the next level
}

// ProgressionConfig defines how the grid grows as levels advance.
type ProgressionConfig struct {
	Enabled   bool `yaml:"enabled"`
	GrowEvery int  `yaml:"grow_every"` // Levels per growth step
	SizeStep  int  `yaml:"size_step"`  // Side length added per growth step
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"

	// DifficultyCustom plays the config exactly as loaded.
	DifficultyCustom DifficultyPreset = "custom"
)

// Presets lists the presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed, DifficultyCustom}
}

// Description returns a one-line summary of a preset for menus and help text.
func (p DifficultyPreset) Description() string {
	switch p {
	case DifficultyEasy:
		return "More starting points, gentle penalties"
	case DifficultyNormal:
		return "Classic rules: start at 15, +10 match, -5 miss"
	case DifficultyHard:
		return "Bigger first board, harsher penalties"
	case DifficultyFixed:
		return "Board never grows between levels"
	case DifficultyCustom:
		return "Scoring and board exactly as configured"
	default:
		return ""
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset validates a preset name. The empty string means "keep the
// configured values" and is accepted.
func ParsePreset(name string) (DifficultyPreset, bool) {
	if name == "" {
		return "", true
	}
	for _, p := range Presets() {
		if string(p) == name {
			return p, true
		}
	}
	return "", false
}
