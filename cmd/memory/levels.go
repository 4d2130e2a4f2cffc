package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/games/memory"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the board size of every level",
	Long: `List the levels of a run and the board each one is played on.
Boards stop growing at the configured maximum size.

Examples:
  memory levels
  memory levels --difficulty hard
  memory levels --config ./my-memory.yaml`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagConfig, "config", envOr("MEMORY_CONFIG", ""), "Path to custom game config YAML")
	levelsCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runLevels(_ *cobra.Command, _ []string) {
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
		os.Exit(1)
	}
	cfg, err := memory.LoadConfig(flagConfig, flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	prog := config.NewProgression(cfg.Board, cfg.Progression)
	levels := prog.Levels()

	fmt.Printf("Levels - %s\n", registryTitle())
	fmt.Println()
	fmt.Printf("  %-5s  %-6s  %s\n", "Level", "Grid", "Pairs")
	fmt.Printf("  %-5s  %-6s  %s\n", "-----", "----", "-----")
	for _, l := range levels {
		grid := fmt.Sprintf("%dx%d", l.GridSize, l.GridSize)
		fmt.Printf("  %-5d  %-6s  %d\n", l.Level, grid, l.Pairs)
	}

	fmt.Println()
	if !prog.IsEnabled() {
		fmt.Println("Progression is off: every level uses the same board.")
		return
	}
	last := levels[len(levels)-1]
	fmt.Printf("Levels after %d stay at %dx%d.\n", last.Level, last.GridSize, last.GridSize)
}
