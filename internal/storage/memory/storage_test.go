package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) TestHighScoreDefaultsToZero() {
	score, err := s.storage.GetHighScore(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, score)
}

func (s *StorageSuite) TestSetAndGetHighScore() {
	err := s.storage.SetHighScore(s.ctx, 340)
	s.Require().NoError(err)

	score, err := s.storage.GetHighScore(s.ctx)
	s.Require().NoError(err)
	s.Equal(340, score)
}

func (s *StorageSuite) TestSetHighScoreOverwrites() {
	s.Require().NoError(s.storage.SetHighScore(s.ctx, 100))
	s.Require().NoError(s.storage.SetHighScore(s.ctx, 250))

	score, err := s.storage.GetHighScore(s.ctx)
	s.Require().NoError(err)
	s.Equal(250, score)
}

func (s *StorageSuite) TestListGameRecordsEmpty() {
	records, err := s.storage.ListGameRecords(s.ctx, 10)
	s.Require().NoError(err)
	s.Empty(records)
}

func (s *StorageSuite) TestSaveGameRecordsMostRecentFirst() {
	endedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, score := range []int{50, 120, 90} {
		err := s.storage.SaveGameRecord(s.ctx, &model.GameRecord{
			GameID:   model.GameID("GAME" + string(rune('A'+i))),
			Mode:     model.ModeClassic,
			Score:    score,
			Duration: time.Minute,
			EndedAt:  endedAt.Add(time.Duration(i) * time.Minute),
		})
		s.Require().NoError(err)
	}

	records, err := s.storage.ListGameRecords(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(records, 3)
	s.Equal(90, records[0].Score)
	s.Equal(120, records[1].Score)
	s.Equal(50, records[2].Score)
}

func (s *StorageSuite) TestListGameRecordsHonorsLimit() {
	for i := 0; i < 5; i++ {
		err := s.storage.SaveGameRecord(s.ctx, &model.GameRecord{
			GameID: "GAME1",
			Mode:   model.ModeTime,
			Score:  i * 10,
		})
		s.Require().NoError(err)
	}

	records, err := s.storage.ListGameRecords(s.ctx, 2)
	s.Require().NoError(err)
	s.Len(records, 2)
	s.Equal(40, records[0].Score)
}
