package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultYAMLMatchesBuiltIn(t *testing.T) {
	cfg, err := parseMemory(GetDefaultYAML("memory"))
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultMemoryConfig() {
		t.Errorf("embedded YAML = %+v, built-in = %+v", cfg, DefaultMemoryConfig())
	}
}

func TestGetDefaultYAMLUnknownGame(t *testing.T) {
	if GetDefaultYAML("flappy") != nil {
		t.Error("unknown game should have no default YAML")
	}
}

func TestLoadMemoryCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.yaml")
	data := []byte("scoring:\n  initial_score: 40\nboard:\n  start_size: 4\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMemory(path)
	if err != nil {
		t.Fatalf("LoadMemory() failed: %v", err)
	}
	if cfg.Scoring.InitialScore != 40 {
		t.Errorf("InitialScore = %d, want 40", cfg.Scoring.InitialScore)
	}
	if cfg.Board.StartSize != 4 {
		t.Errorf("StartSize = %d, want 4", cfg.Board.StartSize)
	}
	// Keys missing from the file keep their defaults
	if cfg.Scoring.MatchBonus != 10 || cfg.Timing.CelebrationSeconds != 5 {
		t.Errorf("missing keys should keep defaults, got %+v", cfg)
	}
}

func TestLoadMemoryMissingCustomPath(t *testing.T) {
	_, err := LoadMemory(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
}

func TestLoadMemoryRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero initial score", "scoring:\n  initial_score: 0\n"},
		{"grid too small", "board:\n  start_size: 1\n  min_size: 1\n"},
		{"start above max", "board:\n  start_size: 9\n  max_size: 8\n"},
		{"negative delay", "timing:\n  celebration_seconds: -1\n"},
		{"bad growth", "progression:\n  enabled: true\n  grow_every: 0\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "memory.yaml")
			if err := os.WriteFile(path, []byte(tc.yaml), 0o600); err != nil {
				t.Fatal(err)
			}
			_, err := LoadMemory(path)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("LoadMemory() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadMemoryMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.yaml")
	if err := os.WriteFile(path, []byte("scoring: [unterminated"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMemory(path); err == nil {
		t.Error("malformed YAML should fail")
	}
}

func TestApplyMemoryPreset(t *testing.T) {
	tests := []struct {
		preset       DifficultyPreset
		initialScore int
		startSize    int
		growing      bool
	}{
		{DifficultyEasy, 30, 2, true},
		{DifficultyNormal, 15, 2, true},
		{DifficultyHard, 10, 4, true},
		{DifficultyFixed, 15, 2, false},
		{DifficultyCustom, 15, 2, true},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultMemoryConfig()
			ApplyMemoryPreset(&cfg, tc.preset)

			if cfg.Scoring.InitialScore != tc.initialScore {
				t.Errorf("InitialScore = %d, want %d", cfg.Scoring.InitialScore, tc.initialScore)
			}
			if cfg.Board.StartSize != tc.startSize {
				t.Errorf("StartSize = %d, want %d", cfg.Board.StartSize, tc.startSize)
			}
			if cfg.Progression.Enabled != tc.growing {
				t.Errorf("Progression.Enabled = %v, want %v", cfg.Progression.Enabled, tc.growing)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, ok)
	}
	if _, ok := ParsePreset(""); !ok {
		t.Error("empty preset should be accepted")
	}
	if _, ok := ParsePreset("insane"); ok {
		t.Error("unknown preset should be rejected")
	}
	if !IsFixedPreset(DifficultyFixed) || IsFixedPreset(DifficultyEasy) {
		t.Error("IsFixedPreset mismatch")
	}
	for _, p := range Presets() {
		if p.Description() == "" {
			t.Errorf("preset %q has no description", p)
		}
	}
}
