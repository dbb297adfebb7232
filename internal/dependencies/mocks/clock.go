package mocks

import (
	"time"

	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/dependencies/clock"
)

// MockClock is a mock implementation of Clock for testing
type MockClock struct {
	CurrentTime time.Time

	// Tickers created via NewTicker, in creation order
	Tickers []*MockTicker
}

// Ensure MockClock implements Clock
var _ clock.Clock = (*MockClock)(nil)

// NewMockClock creates a MockClock set to the given time
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{CurrentTime: t}
}

// Now returns the mocked current time
func (c *MockClock) Now() time.Time {
	return c.CurrentTime
}

// Advance moves the clock forward by the given duration
func (c *MockClock) Advance(d time.Duration) {
	c.CurrentTime = c.CurrentTime.Add(d)
}

// Set sets the clock to the given time
func (c *MockClock) Set(t time.Time) {
	c.CurrentTime = t
}

// NewTicker returns a MockTicker that fires only when told to
func (c *MockClock) NewTicker(d time.Duration) clock.Ticker {
	t := NewMockTicker(d)
	c.Tickers = append(c.Tickers, t)
	return t
}

// MockTicker is a test ticker whose ticks are delivered on demand
type MockTicker struct {
	Interval time.Duration
	Stopped  bool

	ch chan time.Time
}

// Ensure MockTicker implements Ticker
var _ clock.Ticker = (*MockTicker)(nil)

// NewMockTicker creates a MockTicker with a buffered tick channel
func NewMockTicker(d time.Duration) *MockTicker {
	return &MockTicker{
		Interval: d,
		ch:       make(chan time.Time, 16),
	}
}

// C returns the tick channel
func (t *MockTicker) C() <-chan time.Time {
	return t.ch
}

// Stop marks the ticker stopped; no further ticks should be delivered
func (t *MockTicker) Stop() {
	t.Stopped = true
}

// Tick delivers one tick with the given timestamp
func (t *MockTicker) Tick(at time.Time) {
	t.ch <- at
}
