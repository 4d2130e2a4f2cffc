package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/games/memory"
	"github.com/vovakirdan/tui-memory/internal/platform/tui"
	"github.com/vovakirdan/tui-memory/internal/registry"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run of Memory Match straight away.

Controls:
  Arrows/WASD/hjkl  - Move the cursor
  Space/Enter       - Flip the card under the cursor
  Mouse click       - Flip the clicked card
  P/Esc             - Pause
  R                 - Retry (after game over)
  X                 - Exit (after game over)
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - 30 starting points, misses cost 3
  normal - 15 starting points, +10 per match, -5 per miss
  hard   - 10 starting points, misses cost 8, bigger first board
  fixed  - The board never grows between levels

Examples:
  memory play
  memory play --difficulty easy
  memory play --level 4
  memory play --config ./my-memory.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", envOr("MEMORY_CONFIG", ""), "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Starting level")
}

func runPlay(_ *cobra.Command, _ []string) {
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
		os.Exit(1)
	}
	if flagLevel < 1 {
		fmt.Fprintln(os.Stderr, "Error: --level must be at least 1")
		os.Exit(1)
	}

	// Report a broken config here; the game itself would silently fall back.
	if _, err := memory.LoadConfig(flagConfig, flagDifficulty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	memory.SetConfigPath(flagConfig)
	memory.SetDifficultyPreset(flagDifficulty)
	memory.SetStartLevel(flagLevel)

	game, err := registry.Create(memory.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger("memory", true)

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Without a preset the config plays as loaded.
	difficulty := flagDifficulty
	if difficulty == "" {
		difficulty = string(config.DifficultyCustom)
	}

	runErr := tui.Run(game, runtimeConfig(), tui.GameOptions{
		Store:      store,
		Logger:     logger,
		Difficulty: difficulty,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
