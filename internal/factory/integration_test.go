package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/model"
	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/services/game"
	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/testutil"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

// findBlock locates the block at the given position in a state snapshot.
func (s *IntegrationSuite) findBlock(state game.State, row, col int) model.Block {
	s.T().Helper()
	for _, b := range state.Blocks {
		if b.Row == row && b.Col == col {
			return b
		}
	}
	s.Require().FailNow("no block at position", "row=%d col=%d", row, col)
	return model.Block{}
}

// Test: a full classic round from creation through game over
func (s *IntegrationSuite) TestClassicRoundToGameOver() {
	// Values feed the bottom row a 9 at column 0 so that picking it
	// plus a neighbouring 1 always sums to the minimum target of 10.
	vals := []int{10} // initial target
	for i := 0; i < 2*model.GridWidth; i++ {
		vals = append(vals, 1) // two upper starting rows
	}
	vals = append(vals, 9, 1, 1, 1, 1, 1) // starting bottom row
	for i := 0; i < 7; i++ {
		vals = append(vals, 10)               // target after each match
		vals = append(vals, 9, 1, 1, 1, 1, 1) // spawned row after each match
	}
	vals = append(vals, 10) // target drawn on the final match before the tower tops out
	s.app.MockRandom.QueueIntn(vals...)
	s.app.MockRandom.QueueString("INTEG0000001")

	state, err := s.app.GameController.CreateGame(s.ctx)
	s.Require().NoError(err)
	id := state.ID
	s.Equal(model.StatusIdle, state.Status)

	state, err = s.app.GameController.StartGame(s.ctx, id, model.ModeClassic)
	s.Require().NoError(err)
	s.Equal(model.StatusPlaying, state.Status)
	s.Equal(10, state.Target)
	s.Len(state.Blocks, 3*model.GridWidth)

	// The tower starts three rows tall; each match pushes it up one row,
	// so the eighth match finds the top row occupied and ends the round.
	for match := 1; match <= 8; match++ {
		bottom := model.GridHeight - 1
		nine := s.findBlock(state, bottom, 0)
		one := s.findBlock(state, bottom, 1)

		state, err = s.app.GameController.SelectBlock(s.ctx, id, nine.ID)
		s.Require().NoError(err)
		s.Equal(9, state.SelectionSum)

		state, err = s.app.GameController.SelectBlock(s.ctx, id, one.ID)
		s.Require().NoError(err)
		s.Equal(match*20, state.Score)
		s.Empty(state.Selection)

		if match < 8 {
			s.Equal(model.StatusPlaying, state.Status)
		}
	}

	s.Equal(model.StatusGameOver, state.Status)
	s.Equal(160, state.Score)
	s.Equal(160, state.HighScore)

	// Game over persists the record and the new high score
	high, err := s.app.Storage.GetHighScore(s.ctx)
	s.Require().NoError(err)
	s.Equal(160, high)

	records, err := s.app.Storage.ListGameRecords(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal(id, records[0].GameID)
	s.Equal(model.ModeClassic, records[0].Mode)
	s.Equal(160, records[0].Score)
}

// Test: time mode starts a countdown on the mocked clock
func (s *IntegrationSuite) TestTimeModeStartsCountdown() {
	s.app.MockRandom.QueueString("INTEG0000002")

	state, err := s.app.GameController.CreateGame(s.ctx)
	s.Require().NoError(err)

	state, err = s.app.GameController.StartGame(s.ctx, state.ID, model.ModeTime)
	s.Require().NoError(err)
	s.Equal(model.StatusPlaying, state.Status)
	s.Equal(model.TimeModeLimit, state.TimeLeft)
	s.Require().Len(s.app.MockClock.Tickers, 1)
	s.False(s.app.MockClock.Tickers[0].Stopped)

	// Returning home tears the countdown down again
	state, err = s.app.GameController.GoHome(s.ctx, state.ID)
	s.Require().NoError(err)
	s.Equal(model.StatusIdle, state.Status)
	s.True(s.app.MockClock.Tickers[0].Stopped)
}

// Test: the high score service survives a fresh app over the same storage
func (s *IntegrationSuite) TestHighScorePersistsAcrossApps() {
	s.app.HighScoreService.Load(s.ctx)
	s.True(s.app.HighScoreService.Record(s.ctx, 230))

	rebooted := newWithDependencies(s.app.Storage, s.app.MockClock, s.app.MockRandom, testutil.NopLogger())
	rebooted.HighScoreService.Load(s.ctx)
	s.Equal(230, rebooted.HighScoreService.Current())
}
