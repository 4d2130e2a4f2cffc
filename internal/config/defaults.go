package config

import (
	_ "embed"
)

//go:embed defaults/memory.yaml
var defaultMemoryYAML []byte

// DefaultMemoryConfig returns the built-in memory game configuration.
// It mirrors defaults/memory.yaml and is used when the embedded file cannot be parsed.
func DefaultMemoryConfig() MemoryConfig {
	return MemoryConfig{
		Scoring: ScoringConfig{
			InitialScore:    15,
			MatchBonus:      10,
			MismatchPenalty: 5,
		},
		Board: BoardConfig{
			StartSize: 2,
			MinSize:   2,
			MaxSize:   8,
		},
		Timing: TimingConfig{
			CelebrationSeconds: 5,
		},
		Progression: ProgressionConfig{
			Enabled:   true,
			GrowEvery: 1,
			SizeStep:  1,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "memory":
		return defaultMemoryYAML
	default:
		return nil
	}
}
