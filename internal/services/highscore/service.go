package highscore

import (
	"context"
	"log/slog"
	"sync"

	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/storage"
)

// Service tracks the persisted high score. Storage is best-effort: a
// backend failure never interrupts a game, the service just carries on
// with its in-memory value.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu     sync.RWMutex
	cached int
	loaded bool
}

// New creates a new high score Service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Load reads the persisted value into the cache. Called once at startup;
// on storage failure the cache stays at 0.
func (s *Service) Load(ctx context.Context) {
	score, err := s.storage.GetHighScore(ctx)
	if err != nil {
		s.logger.Warn("could not load high score, starting from 0",
			slog.String("error", err.Error()),
		)
		score = 0
	}

	s.mu.Lock()
	s.cached = score
	s.loaded = true
	s.mu.Unlock()
}

// Current returns the best known high score
func (s *Service) Current() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cached
}

// Record reports a new score. If it beats the current high score the
// cache is updated and the value written through immediately. Returns
// true when the score set a new high.
func (s *Service) Record(ctx context.Context, score int) bool {
	s.mu.Lock()
	if score <= s.cached {
		s.mu.Unlock()
		return false
	}
	s.cached = score
	s.mu.Unlock()

	// Fire-and-forget write; the cache already holds the new value
	if err := s.storage.SetHighScore(ctx, score); err != nil {
		s.logger.Warn("could not persist high score",
			slog.Int("score", score),
			slog.String("error", err.Error()),
		)
	}
	return true
}
