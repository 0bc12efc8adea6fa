package engine

import (
	"sync"
	"time"
)

// ManualClock is a Clock driven by tests
type ManualClock struct {
	mu          sync.Mutex
	currentTime time.Time
	ch          chan time.Time
	stopped     bool
}

// NewManualClock creates a clock at startTime, ticks are only sent by Advance
func NewManualClock(startTime time.Time) *ManualClock {
	return &ManualClock{
		currentTime: startTime,
		ch:          make(chan time.Time),
	}
}

func (m *ManualClock) C() <-chan time.Time {
	return m.ch
}

func (m *ManualClock) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopped = true
}

// Now returns the current mocked time
func (m *ManualClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentTime
}

// Advance moves time forward by d and blocks until the tick is received
// Returns false once the clock is stopped
func (m *ManualClock) Advance(d time.Duration) bool {
	m.mu.Lock()
	if m.stopped {
		m.mu.Unlock()
		return false
	}
	m.currentTime = m.currentTime.Add(d)
	now := m.currentTime
	m.mu.Unlock()

	m.ch <- now
	return true
}
