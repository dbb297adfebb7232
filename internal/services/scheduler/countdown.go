package scheduler

import (
	"sync"
	"time"

	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/dependencies/clock"
)

// Countdown drives the time mode's once-per-second tick. It is the only
// autonomous activity in the game: everything else happens in response
// to an external command. Stopping it guarantees no further ticks fire.
type Countdown struct {
	ticker clock.Ticker
	done   chan struct{}
	once   sync.Once
}

// Start launches a countdown that invokes tick at the given interval
// until Stop is called. tick runs on the countdown's goroutine.
func Start(clk clock.Clock, interval time.Duration, tick func()) *Countdown {
	c := &Countdown{
		ticker: clk.NewTicker(interval),
		done:   make(chan struct{}),
	}

	go func() {
		for {
			select {
			case <-c.ticker.C():
				// A tick may race with Stop; never fire after it
				select {
				case <-c.done:
					return
				default:
				}
				tick()
			case <-c.done:
				return
			}
		}
	}()

	return c
}

// Stop halts the countdown. Safe to call more than once; after it
// returns no new tick will be started.
func (c *Countdown) Stop() {
	c.once.Do(func() {
		c.ticker.Stop()
		close(c.done)
	})
}
