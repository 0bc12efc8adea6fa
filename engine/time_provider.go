package engine

import "time"

// Clock delivers frame ticks, the host never controls the frame rate itself
type Clock interface {
	C() <-chan time.Time
	Stop()
}

// TickerClock is a wall-clock Clock backed by time.Ticker
type TickerClock struct {
	ticker *time.Ticker
}

// NewTickerClock creates a clock firing every interval
func NewTickerClock(interval time.Duration) *TickerClock {
	return &TickerClock{ticker: time.NewTicker(interval)}
}

func (c *TickerClock) C() <-chan time.Time {
	return c.ticker.C
}

func (c *TickerClock) Stop() {
	c.ticker.Stop()
}
