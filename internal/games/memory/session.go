package memory

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-memory/internal/config"
)

// Options configures a new Session.
type Options struct {
	Config     config.MemoryConfig
	StartLevel int      // 1-based; 0 means level 1
	Seed       int64    // seed for the default shuffler
	Shuffler   Shuffler // overrides the seeded shuffler when set
	Progress   Progress // overrides the config-driven level tracker when set
}

// Session owns one player's run: the rules state plus the random source,
// the level store and the celebration timer around it.
// A Session is not safe for concurrent use.
type Session struct {
	rules       Rules
	state       State
	shuffler    Shuffler
	progress    Progress
	timer       Timer
	celebration time.Duration
}

// NewSession creates a session and deals the first board.
func NewSession(opts Options) *Session {
	cfg := opts.Config
	if cfg == (config.MemoryConfig{}) {
		cfg = config.DefaultMemoryConfig()
	}

	sh := opts.Shuffler
	if sh == nil {
		sh = rand.New(rand.NewSource(opts.Seed))
	}

	progress := opts.Progress
	if progress == nil {
		progress = NewLevelTracker(config.NewProgression(cfg.Board, cfg.Progression), opts.StartLevel)
	}

	s := &Session{
		rules:       RulesFromConfig(cfg.Scoring),
		shuffler:    sh,
		progress:    progress,
		celebration: time.Duration(cfg.Timing.CelebrationSeconds * float64(time.Second)),
	}
	s.start()
	return s
}

// start deals a fresh run at the progress store's current level.
func (s *Session) start() {
	board, size := s.deal(s.progress.GridSize())
	s.state = NewState(board, size, s.progress.Level(), s.rules)
}

// deal generates a board and returns it with the side length actually used,
// falling back to the smallest grid on a bad size.
func (s *Session) deal(size int) (Board, int) {
	board, err := NewBoard(size, s.shuffler)
	if err != nil {
		size = config.MinGridSize
		board, _ = NewBoard(size, s.shuffler)
	}
	return board, size
}

// Click handles a click on the tile at index.
func (s *Session) Click(index int) Outcome {
	next, out := Reduce(s.state, s.rules, Click(index))
	s.state = next
	if out.LevelCleared {
		s.timer.Start(s.celebration)
	}
	return out
}

// Advance lets dt of game time pass. When the celebration timer fires the
// progress store advances and the next board is dealt.
func (s *Session) Advance(dt time.Duration) Outcome {
	if s.state.Paused || !s.timer.Advance(dt) {
		return Outcome{Ignored: true}
	}

	next, out := Reduce(s.state, s.rules, Event{Type: EventCelebrationElapsed})
	s.state = next
	if out.AdvanceLevel {
		s.progress.Advance()
		board, size := s.deal(s.progress.GridSize())
		s.state = s.state.WithBoard(board, size, s.progress.Level())
	}
	return out
}

// TogglePause pauses or resumes the session. The celebration timer does not
// run while paused.
func (s *Session) TogglePause() {
	s.state, _ = Reduce(s.state, s.rules, Event{Type: EventTogglePause})
}

// Retry restarts the run from the starting level and initial score.
// A pending celebration is cancelled so it cannot advance the new run.
func (s *Session) Retry() {
	s.timer.Cancel()
	s.progress.Reset()
	s.start()
}

// Exit ends the session. Further clicks are ignored.
func (s *Session) Exit() {
	s.timer.Cancel()
	s.state, _ = Reduce(s.state, s.rules, Event{Type: EventExit})
}

// State returns the current rules state. The Completed map must be treated
// as read-only.
func (s *Session) State() State { return s.state }

// Rules returns the scoring rules of this session.
func (s *Session) Rules() Rules { return s.rules }

func (s *Session) Score() int        { return s.state.Score }
func (s *Session) PeakScore() int    { return s.state.PeakScore }
func (s *Session) Moves() int        { return s.state.Moves }
func (s *Session) Level() int        { return s.state.Level }
func (s *Session) GridSize() int     { return s.state.GridSize }
func (s *Session) GameOver() bool    { return s.state.GameOver }
func (s *Session) Celebrating() bool { return s.state.Celebrating }
func (s *Session) Paused() bool      { return s.state.Paused }
func (s *Session) Exited() bool      { return s.state.Exited }

// CelebrationRemaining returns the time left before the next level is dealt.
func (s *Session) CelebrationRemaining() time.Duration {
	return s.timer.Remaining()
}

// TileView is what a renderer needs to draw one tile.
type TileView struct {
	Index   int  `json:"index"`
	ID      int  `json:"id"`
	Active  bool `json:"active"`
	Matched bool `json:"matched"`
}

// FaceUp reports whether the tile's identifier should be shown.
func (v TileView) FaceUp() bool {
	return v.Active || v.Matched
}

// Tiles returns a view of every tile in board order.
func (s *Session) Tiles() []TileView {
	views := make([]TileView, len(s.state.Board))
	for i, id := range s.state.Board {
		views[i] = TileView{
			Index:   i,
			ID:      id,
			Active:  s.state.IsActive(i),
			Matched: s.state.Completed[id],
		}
	}
	return views
}
