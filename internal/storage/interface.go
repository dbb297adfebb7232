package storage

import (
	"context"

	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/model"
)

// Storage defines the interface for data persistence.
// Only the high score and finished-round records outlive a session;
// live grid and selection state is never persisted.
type Storage interface {
	// High score operations
	GetHighScore(ctx context.Context) (int, error)
	SetHighScore(ctx context.Context, score int) error

	// Game record operations
	SaveGameRecord(ctx context.Context, record *model.GameRecord) error
	ListGameRecords(ctx context.Context, limit int) ([]*model.GameRecord, error)
}
