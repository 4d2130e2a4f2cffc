package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/games/memory"
	"github.com/vovakirdan/tui-memory/internal/platform/tui"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick difficulty and starting level, then play",
	Long: `Start Memory Match in interactive menu mode.

Use the arrow keys or j/k to move, Left/Right to change the selected
option and Enter to confirm. After a run ends you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Change difficulty or starting level
  Enter/Space  - Select
  Tab          - Best runs
  Q            - Quit

Examples:
  memory menu
  memory menu --fps 30
  memory menu --db ./runs.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", envOr("MEMORY_CONFIG", ""), "Path to custom game config YAML")
}

func runMenu(_ *cobra.Command, _ []string) {
	base, err := config.LoadMemory(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger("memory", true)

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		store = nil
	}

	cfg := runtimeConfig()
	preset := startPreset()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(base, preset, store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		sel := menuResult.Selection
		if sel == nil {
			break
		}
		preset = sel.Difficulty

		game := memory.NewWithConfig(menuResult.GameConfig, sel.StartLevel)
		if err := tui.Run(game, cfg, tui.GameOptions{
			Store:      store,
			Logger:     logger,
			Difficulty: string(sel.Difficulty),
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}

	if store != nil {
		store.Close()
	}
}
