package memory

import "github.com/vovakirdan/tui-memory/internal/config"

// Rules holds the scoring constants of a run.
type Rules struct {
	InitialScore    int
	MatchBonus      int
	MismatchPenalty int
}

// DefaultRules returns the classic scoring: start at 15, +10 per match, -5 per miss.
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultMemoryConfig().Scoring)
}

// RulesFromConfig converts the scoring section of the game config.
func RulesFromConfig(sc config.ScoringConfig) Rules {
	return Rules{
		InitialScore:    sc.InitialScore,
		MatchBonus:      sc.MatchBonus,
		MismatchPenalty: sc.MismatchPenalty,
	}
}

// State is the complete rules state of one session.
// Values returned by Reduce never share a Completed map with their input.
type State struct {
	Board     Board
	Selection Selection
	Completed map[int]bool // identifier -> matched
	Score     int
	PeakScore int
	Moves     int
	Level     int
	GridSize  int

	Celebrating bool // board cleared, waiting for the next level
	GameOver    bool
	Paused      bool
	Exited      bool
}

// NewState starts a run on the given board.
func NewState(board Board, gridSize, level int, rules Rules) State {
	return State{
		Board:     board,
		Selection: EmptySelection(),
		Completed: map[int]bool{},
		Score:     rules.InitialScore,
		PeakScore: rules.InitialScore,
		Level:     level,
		GridSize:  gridSize,
	}
}

// WithBoard installs a freshly generated board for the given level and
// clears the selection and completed set. Score and moves carry over.
func (s State) WithBoard(board Board, gridSize, level int) State {
	s.Board = board
	s.GridSize = gridSize
	s.Level = level
	s.Selection = EmptySelection()
	s.Completed = map[int]bool{}
	s.Celebrating = false
	return s
}

// Pairs returns the number of pairs on the current board.
func (s State) Pairs() int {
	return s.Board.Pairs()
}

// MatchedPairs returns how many pairs have been found on this board.
func (s State) MatchedPairs() int {
	return len(s.Completed)
}

// Cleared reports whether every pair on the board has been matched.
func (s State) Cleared() bool {
	return s.Pairs() > 0 && len(s.Completed) >= s.Pairs()
}

// IsMatched reports whether the tile at index belongs to a completed pair.
func (s State) IsMatched(index int) bool {
	id, ok := s.Board.At(index)
	return ok && s.Completed[id]
}

// IsActive reports whether the tile at index is face up in the current selection.
func (s State) IsActive(index int) bool {
	return s.Selection.Holds(index)
}

// Accepting reports whether tile clicks can change the state right now.
func (s State) Accepting() bool {
	return !s.GameOver && !s.Celebrating && !s.Paused && !s.Exited
}

// EventType identifies an input to the reducer.
type EventType int

const (
	EventClick              EventType = iota + 1 // player clicked a tile
	EventCelebrationElapsed                      // celebration timer fired
	EventTogglePause
	EventExit
)

// Event is a single input to Reduce.
type Event struct {
	Type  EventType
	Index int // board position for EventClick
}

// Click returns the event for a click on the tile at index.
func Click(index int) Event {
	return Event{Type: EventClick, Index: index}
}

// Outcome describes what a Reduce call did.
type Outcome struct {
	Ignored      bool // the event changed nothing
	Resolved     bool // a pair comparison happened
	Matched      bool // the comparison found a pair
	LevelCleared bool // the last pair was found; celebration begins
	GameOver     bool // score dropped to zero or below
	AdvanceLevel bool // celebration over; the caller must install the next board
	Exited       bool
}

// Reduce applies one event to a state and returns the next state.
// It never mutates its input.
func Reduce(s State, rules Rules, ev Event) (State, Outcome) {
	switch ev.Type {
	case EventClick:
		return reduceClick(s, rules, ev.Index)

	case EventCelebrationElapsed:
		// A second fire for the same clearance finds Celebrating already false.
		if !s.Celebrating || s.GameOver || s.Exited {
			return s, Outcome{Ignored: true}
		}
		s.Celebrating = false
		return s, Outcome{AdvanceLevel: true}

	case EventTogglePause:
		if s.GameOver || s.Exited {
			return s, Outcome{Ignored: true}
		}
		s.Paused = !s.Paused
		return s, Outcome{}

	case EventExit:
		if s.Exited {
			return s, Outcome{Ignored: true}
		}
		s.Exited = true
		return s, Outcome{Exited: true}
	}

	return s, Outcome{Ignored: true}
}

func reduceClick(s State, rules Rules, index int) (State, Outcome) {
	if !s.Accepting() {
		return s, Outcome{Ignored: true}
	}
	id, ok := s.Board.At(index)
	if !ok || index == s.Selection.First || s.Completed[id] {
		return s, Outcome{Ignored: true}
	}

	s.Selection = s.Selection.next(index)
	if s.Selection.Phase() != PhaseResolved {
		return s, Outcome{}
	}

	// Only a player-chosen second card resolves; the new-round path above
	// leaves Second unset and never scores.
	return resolve(s, rules)
}

func resolve(s State, rules Rules) (State, Outcome) {
	out := Outcome{Resolved: true}

	first := s.Board[s.Selection.First]
	second := s.Board[s.Selection.Second]

	if first == second {
		completed := make(map[int]bool, len(s.Completed)+1)
		for k, v := range s.Completed {
			completed[k] = v
		}
		completed[first] = true
		s.Completed = completed
		s.Score += rules.MatchBonus
		out.Matched = true
	} else {
		s.Score -= rules.MismatchPenalty
	}
	s.Moves++

	if s.Score > s.PeakScore {
		s.PeakScore = s.Score
	}

	if s.Score <= 0 {
		s.GameOver = true
		out.GameOver = true
		return s, out
	}

	if s.Cleared() {
		s.Celebrating = true
		out.LevelCleared = true
	}
	return s, out
}
