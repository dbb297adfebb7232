package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/model"
	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// High score operations

func (s *Storage) GetHighScore(ctx context.Context) (int, error) {
	val, err := s.client.Get(ctx, highScoreKey()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// Never persisted yet
			return 0, nil
		}
		return 0, err
	}

	score, err := strconv.Atoi(val)
	if err != nil {
		return 0, err
	}
	return score, nil
}

func (s *Storage) SetHighScore(ctx context.Context, score int) error {
	return s.client.Set(ctx, highScoreKey(), strconv.Itoa(score), 0).Err()
}

// Game record operations

func (s *Storage) SaveGameRecord(ctx context.Context, record *model.GameRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	// Push newest first and trim so the list never grows unbounded
	pipe := s.client.Pipeline()
	pipe.LPush(ctx, gameRecordsKey(), data)
	pipe.LTrim(ctx, gameRecordsKey(), 0, int64(s.cfg.MaxRecords-1))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) ListGameRecords(ctx context.Context, limit int) ([]*model.GameRecord, error) {
	if limit <= 0 || limit > s.cfg.MaxRecords {
		limit = s.cfg.MaxRecords
	}

	items, err := s.client.LRange(ctx, gameRecordsKey(), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	records := make([]*model.GameRecord, 0, len(items))
	for _, item := range items {
		var record model.GameRecord
		if err := json.Unmarshal([]byte(item), &record); err != nil {
			return nil, err
		}
		records = append(records, &record)
	}
	return records, nil
}
