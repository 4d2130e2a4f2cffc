package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Current score
	PeakScore int  // Best score reached during this run
	Moves     int  // Resolved pair comparisons
	Level     int  // Current level, 1-based
	GameOver  bool // Whether the run has ended
	Paused    bool // Whether the game is paused
	Exited    bool // Player chose to leave the session
}

// EventKind identifies something notable that happened during a step.
type EventKind int

const (
	EventMatch EventKind = iota + 1
	EventMismatch
	EventLevelCleared
	EventLevelAdvanced
	EventGameOver
	EventRetry
	EventExit
)

// String returns a short name for logging.
func (k EventKind) String() string {
	switch k {
	case EventMatch:
		return "match"
	case EventMismatch:
		return "mismatch"
	case EventLevelCleared:
		return "level_cleared"
	case EventLevelAdvanced:
		return "level_advanced"
	case EventGameOver:
		return "game_over"
	case EventRetry:
		return "retry"
	case EventExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Event is emitted by a game step so the platform can log or persist it.
type Event struct {
	Kind  EventKind
	Level int
	Score int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
