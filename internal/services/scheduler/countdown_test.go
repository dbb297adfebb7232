package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/dependencies/mocks"
)

type CountdownSuite struct {
	suite.Suite
	clock *mocks.MockClock
}

func TestCountdownSuite(t *testing.T) {
	suite.Run(t, new(CountdownSuite))
}

func (s *CountdownSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
}

func (s *CountdownSuite) TestTickInvokesCallback() {
	ticked := make(chan struct{})
	c := Start(s.clock, time.Second, func() {
		ticked <- struct{}{}
	})
	defer c.Stop()

	s.Require().Len(s.clock.Tickers, 1)
	ticker := s.clock.Tickers[0]
	s.Equal(time.Second, ticker.Interval)

	ticker.Tick(s.clock.Now())

	select {
	case <-ticked:
	case <-time.After(time.Second):
		s.Fail("callback not invoked after tick")
	}
}

func (s *CountdownSuite) TestEachTickFiresOnce() {
	var count atomic.Int64
	done := make(chan struct{})
	c := Start(s.clock, time.Second, func() {
		count.Add(1)
		done <- struct{}{}
	})
	defer c.Stop()

	ticker := s.clock.Tickers[0]
	for i := 0; i < 3; i++ {
		ticker.Tick(s.clock.Now())
		<-done
	}

	s.Equal(int64(3), count.Load())
}

func (s *CountdownSuite) TestStopHaltsTicker() {
	c := Start(s.clock, time.Second, func() {})

	c.Stop()

	s.True(s.clock.Tickers[0].Stopped)
}

func (s *CountdownSuite) TestStopIsIdempotent() {
	c := Start(s.clock, time.Second, func() {})

	c.Stop()
	s.NotPanics(func() { c.Stop() })
}

func (s *CountdownSuite) TestNoCallbackAfterStop() {
	var count atomic.Int64
	fired := make(chan struct{}, 8)
	c := Start(s.clock, time.Second, func() {
		count.Add(1)
		fired <- struct{}{}
	})

	ticker := s.clock.Tickers[0]
	ticker.Tick(s.clock.Now())
	<-fired

	c.Stop()

	// Ticks buffered after stop never reach the callback
	ticker.Tick(s.clock.Now())
	select {
	case <-fired:
		s.Fail("callback fired after stop")
	case <-time.After(50 * time.Millisecond):
	}
	s.Equal(int64(1), count.Load())
}
