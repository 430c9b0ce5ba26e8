// Package core provides frontend plumbing shared by the viewers.
package core

import "time"

// FixedStep decouples the simulation rate from the caller's polling rate. It
// accumulates wall-clock time and releases one tick whenever a full step
// interval has elapsed.
type FixedStep struct {
	interval    time.Duration
	accumulated time.Duration
	last        time.Time
}

// NewFixedStep constructs a controller releasing one tick per interval. The
// first call to ShouldStep releases immediately.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetInterval(interval)
	fs.accumulated = fs.interval
	return fs
}

// NewFixedRate constructs a controller targeting the given steps per second.
func NewFixedRate(sps int) *FixedStep {
	if sps <= 0 {
		sps = 10
	}
	return NewFixedStep(time.Second / time.Duration(sps))
}

// SetInterval changes the duration between released ticks. Safe to call
// between ShouldStep calls.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	f.interval = interval
}

// Interval returns the duration between released ticks.
func (f *FixedStep) Interval() time.Duration { return f.interval }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulated += now.Sub(f.last)
	f.last = now
	if f.accumulated >= f.interval {
		f.accumulated -= f.interval
		return true
	}
	return false
}
