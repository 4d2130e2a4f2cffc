package memory

import "testing"

func newTestState() State {
	b, _ := NewBoard(2, identity{})
	return NewState(b, 2, 1, DefaultRules())
}

func reduceClicks(s State, indices ...int) (State, Outcome) {
	var out Outcome
	for _, i := range indices {
		s, out = Reduce(s, DefaultRules(), Click(i))
	}
	return s, out
}

func TestNewState(t *testing.T) {
	s := newTestState()
	if s.Score != 15 || s.PeakScore != 15 {
		t.Errorf("score = %d peak = %d, want 15", s.Score, s.PeakScore)
	}
	if s.Moves != 0 {
		t.Errorf("moves = %d, want 0", s.Moves)
	}
	if s.Selection.Phase() != PhaseIdle {
		t.Errorf("phase = %v, want idle", s.Selection.Phase())
	}
	if s.Pairs() != 2 || s.MatchedPairs() != 0 {
		t.Errorf("pairs = %d/%d", s.MatchedPairs(), s.Pairs())
	}
}

func TestReduceMatch(t *testing.T) {
	s, out := reduceClicks(newTestState(), 0, 2)

	if !out.Resolved || !out.Matched {
		t.Fatalf("outcome = %+v, want a match", out)
	}
	if s.Score != 25 {
		t.Errorf("score = %d, want 25", s.Score)
	}
	if s.Moves != 1 {
		t.Errorf("moves = %d, want 1", s.Moves)
	}
	if !s.Completed[1] {
		t.Error("id 1 should be completed")
	}
	if !s.IsMatched(0) || !s.IsMatched(2) {
		t.Error("both tiles of the pair should report matched")
	}
	if s.PeakScore != 25 {
		t.Errorf("peak = %d, want 25", s.PeakScore)
	}
}

func TestReduceMismatch(t *testing.T) {
	s, out := reduceClicks(newTestState(), 0, 1)

	if !out.Resolved || out.Matched {
		t.Fatalf("outcome = %+v, want a mismatch", out)
	}
	if s.Score != 10 {
		t.Errorf("score = %d, want 10", s.Score)
	}
	if s.Moves != 1 {
		t.Errorf("moves = %d, want 1", s.Moves)
	}
	if len(s.Completed) != 0 {
		t.Errorf("completed = %v, want empty", s.Completed)
	}
	if s.PeakScore != 15 {
		t.Errorf("peak = %d, want 15", s.PeakScore)
	}
}

func TestReduceNewRoundDoesNotScore(t *testing.T) {
	s, _ := reduceClicks(newTestState(), 0, 1)
	s, out := reduceClicks(s, 3)

	if out.Resolved {
		t.Error("starting a new round must not resolve")
	}
	if s.Selection.First != 3 || s.Selection.Second != NoTile {
		t.Errorf("selection = %+v, want {3 -1}", s.Selection)
	}
	if s.Score != 10 || s.Moves != 1 {
		t.Errorf("score = %d moves = %d, want 10 and 1", s.Score, s.Moves)
	}
}

func TestReduceIgnoredClicks(t *testing.T) {
	matched, _ := reduceClicks(newTestState(), 0, 2)
	oneSelected, _ := reduceClicks(newTestState(), 1)
	over := newTestState()
	over.GameOver = true
	celebrating := newTestState()
	celebrating.Celebrating = true
	paused := newTestState()
	paused.Paused = true

	tests := []struct {
		name  string
		state State
		index int
	}{
		{name: "negative index", state: newTestState(), index: -1},
		{name: "index past board", state: newTestState(), index: 4},
		{name: "same tile twice", state: oneSelected, index: 1},
		{name: "completed tile", state: matched, index: 2},
		{name: "game over", state: over, index: 0},
		{name: "celebrating", state: celebrating, index: 0},
		{name: "paused", state: paused, index: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, out := Reduce(tt.state, DefaultRules(), Click(tt.index))
			if !out.Ignored {
				t.Errorf("outcome = %+v, want ignored", out)
			}
			if next.Selection != tt.state.Selection || next.Score != tt.state.Score || next.Moves != tt.state.Moves {
				t.Error("ignored click changed the state")
			}
		})
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	before, _ := reduceClicks(newTestState(), 0)
	after, _ := Reduce(before, DefaultRules(), Click(2))

	if len(before.Completed) != 0 {
		t.Error("input Completed map was mutated")
	}
	if !after.Completed[1] {
		t.Error("result should hold the match")
	}
}

func TestReduceLevelCleared(t *testing.T) {
	s, out := reduceClicks(newTestState(), 0, 2, 1, 3)

	if !out.LevelCleared {
		t.Fatalf("outcome = %+v, want level cleared", out)
	}
	if !s.Celebrating || !s.Cleared() {
		t.Error("state should be celebrating a cleared board")
	}
	if s.Score != 35 || s.Moves != 2 {
		t.Errorf("score = %d moves = %d, want 35 and 2", s.Score, s.Moves)
	}

	s, out = Reduce(s, DefaultRules(), Event{Type: EventCelebrationElapsed})
	if !out.AdvanceLevel || s.Celebrating {
		t.Fatalf("first elapse: outcome = %+v celebrating = %v", out, s.Celebrating)
	}

	_, out = Reduce(s, DefaultRules(), Event{Type: EventCelebrationElapsed})
	if out.AdvanceLevel {
		t.Error("second elapse must not advance again")
	}
}

func TestReduceGameOverOnce(t *testing.T) {
	s := newTestState()
	var gameOvers int

	// 15 -> 10 -> 5 -> 0
	for _, pair := range [][2]int{{0, 1}, {2, 3}, {0, 1}} {
		var out Outcome
		s, out = reduceClicks(s, pair[0], pair[1])
		if out.GameOver {
			gameOvers++
		}
	}

	if !s.GameOver {
		t.Fatalf("score %d should be game over", s.Score)
	}
	if s.Score != 0 || s.Moves != 3 {
		t.Errorf("score = %d moves = %d, want 0 and 3", s.Score, s.Moves)
	}

	s, out := reduceClicks(s, 2, 3)
	if out.GameOver {
		gameOvers++
	}
	if gameOvers != 1 {
		t.Errorf("game over reported %d times, want 1", gameOvers)
	}
	if s.Moves != 3 {
		t.Error("clicks after game over must not count")
	}
}

func TestReduceGameOverBeatsLevelClear(t *testing.T) {
	rules := Rules{InitialScore: 5, MatchBonus: 0, MismatchPenalty: 5}
	b, _ := NewBoard(2, identity{})
	s := NewState(b, 2, 1, rules)

	s, _ = Reduce(s, rules, Click(0))
	s, _ = Reduce(s, rules, Click(2))
	s.Score = 0
	s, _ = Reduce(s, rules, Click(1))
	s, out := Reduce(s, rules, Click(3))

	if !out.GameOver || out.LevelCleared {
		t.Errorf("outcome = %+v, want game over without level clear", out)
	}
	if s.Celebrating {
		t.Error("a lost run must not celebrate")
	}
}

func TestReducePauseAndExit(t *testing.T) {
	s, out := Reduce(newTestState(), DefaultRules(), Event{Type: EventTogglePause})
	if !s.Paused || out.Ignored {
		t.Fatal("toggle should pause")
	}
	s, _ = Reduce(s, DefaultRules(), Event{Type: EventTogglePause})
	if s.Paused {
		t.Fatal("second toggle should resume")
	}

	s, out = Reduce(s, DefaultRules(), Event{Type: EventExit})
	if !s.Exited || !out.Exited {
		t.Fatal("exit should end the session")
	}
	if _, out = Reduce(s, DefaultRules(), Click(0)); !out.Ignored {
		t.Error("clicks after exit should be ignored")
	}
	if _, out = Reduce(s, DefaultRules(), Event{Type: EventExit}); !out.Ignored {
		t.Error("second exit should be ignored")
	}
}

func TestSelectionPhases(t *testing.T) {
	tests := []struct {
		sel  Selection
		want Phase
		name string
	}{
		{sel: EmptySelection(), want: PhaseIdle, name: "idle"},
		{sel: Selection{First: 2, Second: NoTile}, want: PhaseOneSelected, name: "one_selected"},
		{sel: Selection{First: 2, Second: 3}, want: PhaseResolved, name: "resolved"},
	}
	for _, tt := range tests {
		if got := tt.sel.Phase(); got != tt.want {
			t.Errorf("%+v: phase = %v, want %v", tt.sel, got, tt.want)
		}
		if tt.want.String() != tt.name {
			t.Errorf("%v.String() = %q, want %q", tt.want, tt.want.String(), tt.name)
		}
	}

	if EmptySelection().Holds(NoTile) {
		t.Error("an empty selection holds nothing")
	}
}
