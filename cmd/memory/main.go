// memory is a terminal memory-matching game.
//
// Usage:
//
//	memory play              - Play a run in the terminal
//	memory menu              - Pick difficulty and starting level interactively
//	memory levels            - Show the board size of every level
//	memory scores            - Show the best runs
//	memory serve             - Start SSH server for remote play
//	memory web               - Start the JSON HTTP API
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible boards
//	--db <path>        - Set database path (default: ~/.memory/runs.db)
//	--log-file <path>  - Write logs to a file
//
// Settings may also come from the environment or a .env file:
// MEMORY_DB, MEMORY_CONFIG, MEMORY_WEB_ADDR, MEMORY_SSH_ADDR and LOG_LEVEL.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string

	// logFile is closed after the command finishes.
	logFile *os.File
)

func main() {
	// A missing .env is fine.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "memory",
	Short: "Memory Match - flip cards and find the pairs",
	Long: `Memory Match is a terminal concentration game. Flip two cards per
round; matching pairs stay face up. A match is worth points, a miss costs
points, and clearing the board takes you to a bigger one. The run ends
when your score drops to zero.

Available commands:
  play     - Play a run directly
  menu     - Choose difficulty and starting level
  levels   - Show the board size of every level
  scores   - View the best runs
  serve    - Start SSH server for remote play
  web      - Start the JSON HTTP API

Examples:
  memory play
  memory play --difficulty hard --level 3
  memory menu
  memory serve --ssh :2222
  memory web --addr :8080`,
	SilenceUsage: true,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if logFile != nil {
			logFile.Close()
		}
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", envOr("MEMORY_DB", "~/.memory/runs.db"), "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
}

// envOr returns the environment variable key, or def when it is unset.
func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

// newLogger builds the command logger. Terminal UIs own the screen, so they
// log only to --log-file; servers fall back to stderr.
func newLogger(prefix string, tui bool) *log.Logger {
	var w io.Writer = io.Discard
	if !tui {
		w = os.Stderr
	}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		} else {
			logFile = f
			w = f
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          prefix,
	})
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		level, err := log.ParseLevel(lvl)
		if err != nil {
			logger.Warn("unknown LOG_LEVEL, using info", "value", lvl)
		} else {
			logger.SetLevel(level)
		}
	}
	return logger
}

// startPreset is the difficulty the menus open on: a user config is played
// as loaded, otherwise the classic rules.
func startPreset() config.DifficultyPreset {
	if flagConfig != "" {
		return config.DifficultyCustom
	}
	return config.DifficultyNormal
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
