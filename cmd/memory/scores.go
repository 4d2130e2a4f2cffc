package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/games/memory"
	"github.com/vovakirdan/tui-memory/internal/registry"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

var (
	flagScoresLimit int
	flagClearRuns   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best runs, ranked by level reached, then peak score,
then fewest moves.

With --clear the runs are deleted instead: all of them, or only those
played on --difficulty.

Examples:
  memory scores
  memory scores --difficulty hard
  memory scores --limit 25
  memory scores --clear --difficulty easy`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Only show runs played on this preset")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClearRuns, "clear", false, "Delete the recorded runs")
}

func registryTitle() string {
	return registry.Title(memory.GameID)
}

func runScores(_ *cobra.Command, _ []string) {
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearRuns {
		n, err := store.ClearRuns(memory.GameID, flagDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			return
		}
		scope := "all difficulties"
		if flagDifficulty != "" {
			scope = flagDifficulty
		}
		fmt.Printf("Cleared %d runs (%s).\n", n, scope)
		return
	}

	runs, err := store.TopRunsByDifficulty(memory.GameID, flagDifficulty, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Printf("Best Runs - %s\n", registryTitle())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'memory play' to set the first record!")
		return
	}

	fmt.Printf("  %-4s  %-5s  %-5s  %-5s  %-7s  %s\n", "Rank", "Level", "Peak", "Moves", "Mode", "Date")
	fmt.Printf("  %-4s  %-5s  %-5s  %-5s  %-7s  %s\n", "----", "-----", "----", "-----", "----", "----")
	for i, r := range runs {
		mode := r.Difficulty
		if mode == "" {
			mode = "-"
		}
		fmt.Printf("  %-4d  %-5d  %-5d  %-5d  %-7s  %s\n",
			i+1, r.Level, r.PeakScore, r.Moves, mode, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(memory.GameID)
	if err == nil && stats.RunsCount > 0 {
		fmt.Println()
		fmt.Printf("Runs: %d  Best level: %d  High score: %d  Avg peak: %.1f  Total moves: %d\n",
			stats.RunsCount, stats.BestLevel, stats.HighScore, stats.AvgScore, stats.TotalMoves)
	}

	// The per-difficulty breakdown only adds anything on the unfiltered view.
	if flagDifficulty != "" {
		return
	}
	byMode, err := store.GetDifficultyStats(memory.GameID)
	if err != nil || len(byMode) < 2 {
		return
	}
	fmt.Println()
	fmt.Printf("  %-7s  %-4s  %-5s  %-5s  %-8s  %s\n", "Mode", "Runs", "Level", "Peak", "Avg peak", "Last played")
	fmt.Printf("  %-7s  %-4s  %-5s  %-5s  %-8s  %s\n", "----", "----", "-----", "----", "--------", "-----------")
	for _, st := range byMode {
		mode := st.Difficulty
		if mode == "" {
			mode = "-"
		}
		fmt.Printf("  %-7s  %-4d  %-5d  %-5d  %-8.1f  %s\n",
			mode, st.RunsCount, st.BestLevel, st.HighScore, st.AvgScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}
}
