package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.MaxRecords = 5

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// High score tests

func (s *StorageSuite) TestHighScoreDefaultsToZero() {
	score, err := s.storage.GetHighScore(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, score)
}

func (s *StorageSuite) TestSetAndGetHighScore() {
	err := s.storage.SetHighScore(s.ctx, 420)
	s.Require().NoError(err)

	score, err := s.storage.GetHighScore(s.ctx)
	s.Require().NoError(err)
	s.Equal(420, score)
}

func (s *StorageSuite) TestGetHighScoreCorruptValue() {
	s.mini.Set(highScoreKey(), "not-a-number")

	_, err := s.storage.GetHighScore(s.ctx)
	s.Error(err)
}

// Game record tests

func (s *StorageSuite) TestSaveAndListGameRecords() {
	record := &model.GameRecord{
		GameID:   "GAME12345678",
		Mode:     model.ModeTime,
		Score:    150,
		Duration: 95 * time.Second,
		EndedAt:  time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	err := s.storage.SaveGameRecord(s.ctx, record)
	s.Require().NoError(err)

	records, err := s.storage.ListGameRecords(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal(record.GameID, records[0].GameID)
	s.Equal(record.Mode, records[0].Mode)
	s.Equal(record.Score, records[0].Score)
	s.Equal(record.Duration, records[0].Duration)
	s.True(record.EndedAt.Equal(records[0].EndedAt))
}

func (s *StorageSuite) TestListGameRecordsMostRecentFirst() {
	for i, score := range []int{10, 20, 30} {
		err := s.storage.SaveGameRecord(s.ctx, &model.GameRecord{
			GameID:  model.GameID("GAME" + string(rune('A'+i))),
			Mode:    model.ModeClassic,
			Score:   score,
			EndedAt: time.Now(),
		})
		s.Require().NoError(err)
	}

	records, err := s.storage.ListGameRecords(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(records, 3)
	s.Equal(30, records[0].Score)
	s.Equal(10, records[2].Score)
}

func (s *StorageSuite) TestGameRecordsTrimmedToMaxRecords() {
	for i := 0; i < 8; i++ {
		err := s.storage.SaveGameRecord(s.ctx, &model.GameRecord{
			GameID: "GAME1",
			Mode:   model.ModeClassic,
			Score:  i,
		})
		s.Require().NoError(err)
	}

	records, err := s.storage.ListGameRecords(s.ctx, 100)
	s.Require().NoError(err)
	s.Len(records, 5)
	s.Equal(7, records[0].Score)
}
