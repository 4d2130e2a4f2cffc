// Package web serves the memory game as a JSON API. Each client plays an
// in-memory session; finished runs go to the shared runs database.
package web

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/games/memory"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

// Options configures a Server.
type Options struct {
	// Store persists finished runs. Nil disables saving and the scores endpoint
	// returns an empty list.
	Store *storage.Store

	// Game is the base config every session's difficulty preset is applied to.
	Game config.MemoryConfig

	Logger *log.Logger

	// Clock drives session time. Defaults to time.Now.
	Clock func() time.Time

	// SessionTTL is how long an untouched session lives.
	SessionTTL time.Duration

	// CleanupPeriod is how often idle sessions are swept.
	CleanupPeriod time.Duration
}

// DefaultOptions returns options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Game:          config.DefaultMemoryConfig(),
		SessionTTL:    30 * time.Minute,
		CleanupPeriod: time.Minute,
	}
}

// Server bundles the router, live sessions and run storage.
type Server struct {
	r        *chi.Mux
	sessions *SessionStore
	store    *storage.Store
	game     config.MemoryConfig
	logger   *log.Logger
	now      func() time.Time
	cleanup  time.Duration
	http     *http.Server
}

// NewServer constructs a Server, installs middleware and registers routes.
func NewServer(opts Options) *Server {
	if opts.Game == (config.MemoryConfig{}) {
		opts.Game = config.DefaultMemoryConfig()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	}

	s := &Server{
		r:        chi.NewRouter(),
		sessions: NewSessionStore(opts.SessionTTL, opts.Clock),
		store:    opts.Store,
		game:     opts.Game,
		logger:   opts.Logger.WithPrefix("web"),
		now:      opts.Clock,
		cleanup:  opts.CleanupPeriod,
	}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(requestLogger(s.logger))
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)

	s.routes()
	return s
}

// Handler exposes the router (useful for tests).
func (s *Server) Handler() http.Handler { return s.r }

// Sessions exposes the live session store.
func (s *Server) Sessions() *SessionStore { return s.sessions }

// ListenAndServe starts the HTTP server and blocks until an interrupt.
func (s *Server) ListenAndServe(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.sessions.StartCleanup(s.cleanup, func(e *Entry) {
		s.logger.Info("session expired", "session", e.ID())
		s.finish(e, "expired")
	})

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	s.logger.Info("Starting web server", "address", addr)
	errCh := make(chan error, 1)
	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		s.sessions.Stop()
		return err
	case <-done:
	}
	return s.Shutdown()
}

// Shutdown stops accepting requests and records the runs still in progress.
func (s *Server) Shutdown() error {
	s.logger.Info("Stopping web server")
	s.sessions.Stop()

	var err error
	if s.http != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		err = s.http.Shutdown(ctx)
	}

	for _, e := range s.sessions.Drain() {
		s.finish(e, "shutdown")
	}
	return err
}

// finish saves an entry's run if it has not been saved yet.
func (s *Server) finish(e *Entry, reason string) {
	e.Lock()
	defer e.Unlock()
	s.saveRun(e, reason)
}

// saveRun records the entry's run once. The entry lock must be held.
func (s *Server) saveRun(e *Entry, reason string) {
	if e.saved || s.store == nil || e.session.Moves() == 0 {
		return
	}
	e.saved = true

	run := storage.RunRecord{
		GameID:     memory.GameID,
		Difficulty: string(e.difficulty),
		PeakScore:  e.session.PeakScore(),
		Level:      e.session.Level(),
		Moves:      e.session.Moves(),
	}
	if _, err := s.store.SaveRun(run); err != nil {
		s.logger.Warn("cannot save run", "session", e.ID(), "err", err)
		return
	}
	s.logger.Info("run saved", "session", e.ID(), "reason", reason,
		"level", run.Level, "peak", run.PeakScore, "moves", run.Moves)
}
