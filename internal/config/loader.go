package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// MinGridSize is the smallest side length that still holds a pair.
const MinGridSize = 2

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// LoadMemory loads the memory game configuration.
// Search order: customPath -> ~/.memory/configs/memory.yaml -> ./configs/memory.yaml -> embedded default
func LoadMemory(customPath string) (MemoryConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return MemoryConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseMemory(data)
		if err != nil {
			return MemoryConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("memory.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseMemory(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "memory.yaml")); err == nil {
		if cfg, err := parseMemory(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parseMemory(defaultMemoryYAML)
	if err != nil {
		return DefaultMemoryConfig(), nil
	}
	return cfg, nil
}

// parseMemory decodes YAML on top of the built-in defaults so partial files
// only override the keys they mention, then validates the result.
func parseMemory(data []byte) (MemoryConfig, error) {
	cfg := DefaultMemoryConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MemoryConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return MemoryConfig{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the rules engine cannot play.
func (c MemoryConfig) Validate() error {
	switch {
	case c.Scoring.InitialScore <= 0:
		return fmt.Errorf("%w: scoring.initial_score must be positive, got %d", ErrInvalidConfig, c.Scoring.InitialScore)
	case c.Scoring.MatchBonus < 0:
		return fmt.Errorf("%w: scoring.match_bonus must not be negative", ErrInvalidConfig)
	case c.Scoring.MismatchPenalty < 0:
		return fmt.Errorf("%w: scoring.mismatch_penalty must not be negative", ErrInvalidConfig)
	case c.Board.MinSize < MinGridSize:
		return fmt.Errorf("%w: board.min_size must be at least %d, got %d", ErrInvalidConfig, MinGridSize, c.Board.MinSize)
	case c.Board.MaxSize < c.Board.MinSize:
		return fmt.Errorf("%w: board.max_size %d is below min_size %d", ErrInvalidConfig, c.Board.MaxSize, c.Board.MinSize)
	case c.Board.StartSize < c.Board.MinSize || c.Board.StartSize > c.Board.MaxSize:
		return fmt.Errorf("%w: board.start_size %d outside [%d, %d]", ErrInvalidConfig, c.Board.StartSize, c.Board.MinSize, c.Board.MaxSize)
	case c.Timing.CelebrationSeconds < 0:
		return fmt.Errorf("%w: timing.celebration_seconds must not be negative", ErrInvalidConfig)
	case c.Progression.Enabled && c.Progression.GrowEvery <= 0:
		return fmt.Errorf("%w: progression.grow_every must be positive", ErrInvalidConfig)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".memory", "configs", filename)
}

// ApplyMemoryPreset modifies the config based on a difficulty preset.
func ApplyMemoryPreset(cfg *MemoryConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Progression.Enabled = true
		cfg.Scoring.InitialScore = 30
		cfg.Scoring.MismatchPenalty = 3
		cfg.Board.StartSize = cfg.Board.MinSize
	case DifficultyNormal:
		cfg.Progression.Enabled = true
		cfg.Scoring.InitialScore = 15
		cfg.Scoring.MatchBonus = 10
		cfg.Scoring.MismatchPenalty = 5
	case DifficultyHard:
		cfg.Progression.Enabled = true
		cfg.Scoring.InitialScore = 10
		cfg.Scoring.MismatchPenalty = 8
		cfg.Board.StartSize = min(cfg.Board.MinSize+2, cfg.Board.MaxSize)
	case DifficultyFixed:
		cfg.Progression.Enabled = false
	case DifficultyCustom:
		// keep the loaded values
	}
}
