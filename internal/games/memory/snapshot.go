package memory

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateCelebrating GameStateType = "celebrating"
	StateGameOver    GameStateType = "game_over"
	StatePaused      GameStateType = "paused"
	StateExited      GameStateType = "exited"
)

// Snapshot captures the observable session state for determinism tests and
// the JSON API.
type Snapshot struct {
	Level         int           `json:"level"`
	GridSize      int           `json:"gridSize"`
	Score         int           `json:"score"`
	PeakScore     int           `json:"peakScore"`
	Moves         int           `json:"moves"`
	Pairs         int           `json:"pairs"`
	MatchedPairs  int           `json:"matchedPairs"`
	Phase         string        `json:"phase"`
	State         GameStateType `json:"state"`
	CelebrationMs int64         `json:"celebrationMs,omitempty"`
	Tiles         []TileView    `json:"tiles"`
}

// Status classifies the session for snapshots and overlays.
func (s *Session) Status() GameStateType {
	switch {
	case s.state.Exited:
		return StateExited
	case s.state.GameOver:
		return StateGameOver
	case s.state.Paused:
		return StatePaused
	case s.state.Celebrating:
		return StateCelebrating
	default:
		return StatePlaying
	}
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Level:         s.state.Level,
		GridSize:      s.state.GridSize,
		Score:         s.state.Score,
		PeakScore:     s.state.PeakScore,
		Moves:         s.state.Moves,
		Pairs:         s.state.Pairs(),
		MatchedPairs:  s.state.MatchedPairs(),
		Phase:         s.state.Selection.Phase().String(),
		State:         s.Status(),
		CelebrationMs: s.CelebrationRemaining().Milliseconds(),
		Tiles:         s.Tiles(),
	}
}
