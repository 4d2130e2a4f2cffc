package memory

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-memory/internal/config"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(Options{Shuffler: identity{}})
}

func clearBoard(t *testing.T, s *Session) {
	t.Helper()
	// With the identity shuffler tile i pairs with tile i+len/2.
	half := len(s.State().Board) / 2
	for i := range half {
		s.Click(i)
		if out := s.Click(i + half); !out.Matched {
			t.Fatalf("clicks %d,%d did not match: %+v", i, i+half, out)
		}
	}
	if !s.Celebrating() {
		t.Fatal("board should be cleared")
	}
}

func TestSessionDefaults(t *testing.T) {
	s := newTestSession(t)
	if s.Score() != 15 || s.Moves() != 0 || s.Level() != 1 || s.GridSize() != 2 {
		t.Errorf("score %d moves %d level %d grid %d", s.Score(), s.Moves(), s.Level(), s.GridSize())
	}
	if len(s.Tiles()) != 4 {
		t.Errorf("tiles = %d, want 4", len(s.Tiles()))
	}
	for _, tile := range s.Tiles() {
		if tile.FaceUp() {
			t.Errorf("tile %d starts face up", tile.Index)
		}
	}
}

func TestSessionAdvancesExactlyOnce(t *testing.T) {
	s := newTestSession(t)
	clearBoard(t, s)

	if out := s.Advance(4 * time.Second); out.AdvanceLevel {
		t.Fatal("advanced before the celebration ended")
	}
	if got := s.CelebrationRemaining(); got != time.Second {
		t.Errorf("remaining = %v, want 1s", got)
	}
	if out := s.Advance(time.Second); !out.AdvanceLevel {
		t.Fatal("celebration should have ended")
	}

	if s.Level() != 2 || s.GridSize() != 3 {
		t.Errorf("level %d grid %d, want 2 and 3", s.Level(), s.GridSize())
	}
	if len(s.State().Board) != 8 {
		t.Errorf("board len = %d, want 8", len(s.State().Board))
	}
	if s.State().MatchedPairs() != 0 || s.State().Selection.Phase() != PhaseIdle {
		t.Error("new board should start with nothing selected or matched")
	}
	if s.Score() != 35 || s.Moves() != 2 {
		t.Errorf("score %d moves %d should carry over", s.Score(), s.Moves())
	}

	if out := s.Advance(time.Minute); out.AdvanceLevel {
		t.Error("advanced twice for one cleared board")
	}
	if s.Level() != 2 {
		t.Errorf("level = %d, want 2", s.Level())
	}
}

func TestSessionRetryCancelsCelebration(t *testing.T) {
	s := newTestSession(t)
	clearBoard(t, s)

	s.Advance(2 * time.Second)
	s.Retry()

	if s.Celebrating() || s.CelebrationRemaining() != 0 {
		t.Fatal("retry should cancel the celebration")
	}
	if out := s.Advance(10 * time.Second); out.AdvanceLevel {
		t.Error("stale celebration advanced the new run")
	}
	if s.Level() != 1 || s.Score() != 15 || s.Moves() != 0 || s.PeakScore() != 15 {
		t.Errorf("level %d score %d moves %d peak %d after retry",
			s.Level(), s.Score(), s.Moves(), s.PeakScore())
	}
}

func TestSessionRetryAfterGameOver(t *testing.T) {
	s := newTestSession(t)
	for _, pair := range [][2]int{{0, 1}, {2, 3}, {0, 1}} {
		s.Click(pair[0])
		s.Click(pair[1])
	}
	if !s.GameOver() {
		t.Fatalf("score %d should be game over", s.Score())
	}
	if out := s.Click(0); !out.Ignored {
		t.Error("clicks should be ignored after game over")
	}

	s.Retry()
	if s.GameOver() || s.Score() != 15 || s.Moves() != 0 {
		t.Errorf("retry left game over %v score %d moves %d", s.GameOver(), s.Score(), s.Moves())
	}
	if out := s.Click(0); out.Ignored {
		t.Error("clicks should work after retry")
	}
}

func TestSessionPauseFreezesTimer(t *testing.T) {
	s := newTestSession(t)
	clearBoard(t, s)

	s.TogglePause()
	if out := s.Advance(time.Minute); out.AdvanceLevel {
		t.Fatal("paused session advanced")
	}
	if s.CelebrationRemaining() != 5*time.Second {
		t.Errorf("remaining = %v, want 5s", s.CelebrationRemaining())
	}

	s.TogglePause()
	if out := s.Advance(5 * time.Second); !out.AdvanceLevel {
		t.Error("resumed session should advance")
	}
}

func TestSessionExit(t *testing.T) {
	s := newTestSession(t)
	clearBoard(t, s)
	s.Exit()

	if !s.Exited() {
		t.Fatal("session should be exited")
	}
	if out := s.Advance(time.Minute); out.AdvanceLevel {
		t.Error("exited session advanced")
	}
	if s.Status() != StateExited {
		t.Errorf("status = %s, want exited", s.Status())
	}
}

func TestSessionStartLevelAndFixedGrid(t *testing.T) {
	cfg := config.DefaultMemoryConfig()
	s := NewSession(Options{Config: cfg, StartLevel: 3, Shuffler: identity{}})
	if s.Level() != 3 || s.GridSize() != 4 {
		t.Errorf("level %d grid %d, want 3 and 4", s.Level(), s.GridSize())
	}

	config.ApplyMemoryPreset(&cfg, config.DifficultyFixed)
	s = NewSession(Options{Config: cfg, Shuffler: identity{}})
	clearBoard(t, s)
	s.Advance(5 * time.Second)
	if s.Level() != 2 || s.GridSize() != 2 {
		t.Errorf("fixed preset: level %d grid %d, want 2 and 2", s.Level(), s.GridSize())
	}
}

type fakeProgress struct {
	level, size      int
	advances, resets int
}

func (p *fakeProgress) Level() int    { return p.level }
func (p *fakeProgress) GridSize() int { return p.size }
func (p *fakeProgress) Advance()      { p.advances++; p.level++ }
func (p *fakeProgress) Reset()        { p.resets++; p.level = 1 }

func TestSessionUsesProgressStore(t *testing.T) {
	p := &fakeProgress{level: 1, size: 2}
	s := NewSession(Options{Shuffler: identity{}, Progress: p})

	clearBoard(t, s)
	s.Advance(5 * time.Second)
	if p.advances != 1 {
		t.Errorf("advances = %d, want 1", p.advances)
	}

	s.Retry()
	if p.resets != 1 {
		t.Errorf("resets = %d, want 1", p.resets)
	}
}

func TestSessionBadGridFallsBack(t *testing.T) {
	p := &fakeProgress{level: 1, size: 1}
	s := NewSession(Options{Shuffler: identity{}, Progress: p})
	if len(s.State().Board) != 4 {
		t.Errorf("board len = %d, want the 2x2 fallback", len(s.State().Board))
	}
	if s.GridSize() != 2 {
		t.Errorf("GridSize() = %d, want 2 to match the fallback board", s.GridSize())
	}

	// The next level's board falls back the same way.
	p.size = 0
	clearBoard(t, s)
	s.Advance(5 * time.Second)
	if s.Level() != 2 {
		t.Fatalf("Level() = %d, want 2", s.Level())
	}
	if len(s.State().Board) != 4 || s.GridSize() != 2 {
		t.Errorf("after advance: board len %d grid %d, want 4 and 2", len(s.State().Board), s.GridSize())
	}
}

func TestSnapshot(t *testing.T) {
	s := newTestSession(t)
	s.Click(0)

	snap := s.Snapshot()
	if snap.Phase != "one_selected" || snap.State != StatePlaying {
		t.Errorf("phase %q state %q", snap.Phase, snap.State)
	}
	if snap.Pairs != 2 || snap.Score != 15 || len(snap.Tiles) != 4 {
		t.Errorf("snapshot = %+v", snap)
	}
	if !snap.Tiles[0].Active || snap.Tiles[1].Active {
		t.Error("only tile 0 should be active")
	}

	s.Click(2)
	s.Click(1)
	s.Click(3)
	snap = s.Snapshot()
	if snap.State != StateCelebrating || snap.CelebrationMs != 5000 {
		t.Errorf("state %q celebration %dms", snap.State, snap.CelebrationMs)
	}
}

func TestTimer(t *testing.T) {
	var tm Timer
	if tm.Advance(time.Hour) {
		t.Fatal("idle timer fired")
	}

	tm.Start(time.Second)
	if tm.Advance(500 * time.Millisecond) {
		t.Fatal("fired early")
	}
	if !tm.Advance(500 * time.Millisecond) {
		t.Fatal("did not fire on time")
	}
	if tm.Active() || tm.Advance(time.Second) {
		t.Fatal("fired twice")
	}

	tm.Start(time.Second)
	tm.Cancel()
	if tm.Advance(time.Hour) {
		t.Error("cancelled timer fired")
	}
}
