// Package scheduler drives the game clock at a fixed wall-clock cadence.
package scheduler

import (
	"context"
	"time"
)

// LinesPerLevel is how many cleared lines speed gravity up by one base tick.
const LinesPerLevel = 10

// Ticker calls fn every interval until its context is done.
type Ticker struct {
	interval time.Duration
	fn       func()
}

// New creates a ticker. It does nothing until Run is called.
func New(interval time.Duration, fn func()) *Ticker {
	return &Ticker{interval: interval, fn: fn}
}

// Run blocks, calling fn on every tick, and returns when ctx is done.
func (t *Ticker) Run(ctx context.Context) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.fn()
		}
	}
}

// CadenceForLines is the difficulty ramp: base ticks per gravity step, one
// fewer per LinesPerLevel lines cleared, never below 1.
func CadenceForLines(base, lines int) int {
	c := base - lines/LinesPerLevel
	if c < 1 {
		return 1
	}
	return c
}
