package web

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/games/memory"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

const (
	defaultScoresLimit = 10
	maxScoresLimit     = 100
)

func (s *Server) routes() {
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "sessions": s.sessions.Len()})
	})
	s.r.Get("/levels", s.handleLevels)
	s.r.Get("/scores", s.handleScores)

	s.r.Route("/sessions", func(r chi.Router) {
		r.Post("/", s.handleCreate)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleView)
			r.Post("/click", s.handleClick)
			r.Post("/retry", s.handleRetry)
			r.Post("/pause", s.handlePause)
			r.Delete("/", s.handleExit)
		})
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})
	s.r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed")
	})
}

// sessionView is the client's picture of a session. Face-down tiles carry
// no identifier.
type sessionView struct {
	SessionID  string `json:"sessionId"`
	Difficulty string `json:"difficulty"`
	memory.Snapshot
}

type outcomeView struct {
	Ignored      bool `json:"ignored"`
	Matched      bool `json:"matched"`
	Mismatched   bool `json:"mismatched"`
	LevelCleared bool `json:"levelCleared"`
	GameOver     bool `json:"gameOver"`
}

type clickRes struct {
	sessionView
	Outcome outcomeView `json:"outcome"`
}

func viewOf(e *Entry) sessionView {
	snap := e.session.Snapshot()
	for i, t := range snap.Tiles {
		if !t.FaceUp() {
			snap.Tiles[i].ID = 0
		}
	}
	return sessionView{
		SessionID:  e.id,
		Difficulty: string(e.difficulty),
		Snapshot:   snap,
	}
}

type createReq struct {
	Difficulty string `json:"difficulty"`
	Seed       *int64 `json:"seed"`
	StartLevel int    `json:"startLevel"`
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	// No difficulty plays the server's config as loaded.
	preset := config.DifficultyCustom
	if req.Difficulty != "" {
		p, ok := config.ParsePreset(req.Difficulty)
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown_difficulty")
			return
		}
		preset = p
	}
	if req.StartLevel < 0 {
		writeError(w, http.StatusBadRequest, "bad_start_level")
		return
	}

	cfg := s.game
	config.ApplyMemoryPreset(&cfg, preset)

	seed := s.now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}

	session := memory.NewSession(memory.Options{
		Config:     cfg,
		StartLevel: req.StartLevel,
		Seed:       seed,
	})
	e := s.sessions.Create(session, preset)
	s.logger.Info("session created", "session", e.ID(), "difficulty", preset, "level", session.Level())

	e.Lock()
	defer e.Unlock()
	writeJSON(w, http.StatusCreated, viewOf(e))
}

// withEntry resolves the {id} URL param, locks the entry and catches its
// clock up. It writes the error response itself and returns nil on failure.
func (s *Server) withEntry(w http.ResponseWriter, r *http.Request) *Entry {
	e, ok := s.sessions.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown_session")
		return nil
	}
	e.Lock()
	if e.session.Exited() {
		e.Unlock()
		writeError(w, http.StatusGone, "session_exited")
		return nil
	}
	e.catchUp(s.now())
	return e
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	e := s.withEntry(w, r)
	if e == nil {
		return
	}
	defer e.Unlock()
	writeJSON(w, http.StatusOK, viewOf(e))
}

type clickReq struct {
	Index *int `json:"index"`
}

func (s *Server) handleClick(w http.ResponseWriter, r *http.Request) {
	var req clickReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Index == nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	e := s.withEntry(w, r)
	if e == nil {
		return
	}
	defer e.Unlock()

	out := e.session.Click(*req.Index)
	if out.GameOver {
		s.logger.Info("game over", "session", e.ID(), "level", e.session.Level(), "moves", e.session.Moves())
		s.saveRun(e, "game over")
	}

	writeJSON(w, http.StatusOK, clickRes{
		sessionView: viewOf(e),
		Outcome: outcomeView{
			Ignored:      out.Ignored,
			Matched:      out.Resolved && out.Matched,
			Mismatched:   out.Resolved && !out.Matched,
			LevelCleared: out.LevelCleared,
			GameOver:     out.GameOver,
		},
	})
}

func (s *Server) handleRetry(w http.ResponseWriter, r *http.Request) {
	e := s.withEntry(w, r)
	if e == nil {
		return
	}
	defer e.Unlock()

	// An unfinished run is recorded before it is thrown away.
	s.saveRun(e, "retry")
	e.session.Retry()
	e.saved = false
	writeJSON(w, http.StatusOK, viewOf(e))
}

func (s *Server) handlePause(w http.ResponseWriter, r *http.Request) {
	e := s.withEntry(w, r)
	if e == nil {
		return
	}
	defer e.Unlock()

	e.session.TogglePause()
	writeJSON(w, http.StatusOK, viewOf(e))
}

// handleExit ends the session. The entry stays visible as exited (410) until
// the next cleanup sweep drops it.
func (s *Server) handleExit(w http.ResponseWriter, r *http.Request) {
	e := s.withEntry(w, r)
	if e == nil {
		return
	}
	defer e.Unlock()

	s.saveRun(e, "exit")
	e.session.Exit()
	s.logger.Info("session exited", "session", e.ID())
	w.WriteHeader(http.StatusNoContent)
}

type scoresRes struct {
	Runs []storage.RunRecord `json:"runs"`
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	limit := defaultScoresLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "bad_limit")
			return
		}
		limit = min(n, maxScoresLimit)
	}
	difficulty := r.URL.Query().Get("difficulty")
	if _, ok := config.ParsePreset(difficulty); !ok {
		writeError(w, http.StatusBadRequest, "unknown_difficulty")
		return
	}

	res := scoresRes{Runs: []storage.RunRecord{}}
	if s.store != nil {
		runs, err := s.store.TopRunsByDifficulty(memory.GameID, difficulty, limit)
		if err != nil {
			s.logger.Error("load scores", "err", err)
			writeError(w, http.StatusInternalServerError, "scores_failed")
			return
		}
		if runs != nil {
			res.Runs = runs
		}
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleLevels(w http.ResponseWriter, r *http.Request) {
	cfg := s.game
	if name := r.URL.Query().Get("difficulty"); name != "" {
		p, ok := config.ParsePreset(name)
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown_difficulty")
			return
		}
		config.ApplyMemoryPreset(&cfg, p)
	}
	levels := config.NewProgression(cfg.Board, cfg.Progression).Levels()
	writeJSON(w, http.StatusOK, map[string]any{"levels": levels})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
