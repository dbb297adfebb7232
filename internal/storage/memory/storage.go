package memory

import (
	"context"
	"sync"

	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/model"
	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	highScore int
	records   []*model.GameRecord
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// High score operations

func (s *Storage) GetHighScore(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.highScore, nil
}

func (s *Storage) SetHighScore(ctx context.Context, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.highScore = score
	return nil
}

// Game record operations

func (s *Storage) SaveGameRecord(ctx context.Context, record *model.GameRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Most recent first
	s.records = append([]*model.GameRecord{record}, s.records...)
	return nil
}

func (s *Storage) ListGameRecords(ctx context.Context, limit int) ([]*model.GameRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 || limit > len(s.records) {
		limit = len(s.records)
	}
	out := make([]*model.GameRecord, limit)
	copy(out, s.records[:limit])
	return out, nil
}
