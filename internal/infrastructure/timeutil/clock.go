// Package timeutil holds the clock and time-zone helpers shared by the
// session manager and the flight normalizer.
package timeutil

import (
	"sync"
	"time"
)

// Clock is the source of "now" for session bookkeeping.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// Real reads the system clock.
var Real Clock = ClockFunc(time.Now)

// Manual is a Clock that only moves when told to. Safe for concurrent use.
type Manual struct {
	mu  sync.RWMutex
	now time.Time
}

// NewManual returns a Manual clock stopped at t.
func NewManual(t time.Time) *Manual {
	return &Manual{now: t}
}

// MustManual parses an RFC3339 timestamp into a Manual clock and panics on
// bad input.
func MustManual(rfc3339 string) *Manual {
	t, err := time.Parse(time.RFC3339, rfc3339)
	if err != nil {
		panic("timeutil: " + err.Error())
	}
	return NewManual(t)
}

func (m *Manual) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Set moves the clock to t, backwards included.
func (m *Manual) Set(t time.Time) {
	m.mu.Lock()
	m.now = t
	m.mu.Unlock()
}

func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}
