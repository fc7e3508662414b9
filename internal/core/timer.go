package core

import "time"

// FixedStep gates simulation updates to a fixed interval regardless of the
// frame rate of the caller.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedInterval constructs a FixedStep that fires once per interval. The
// first call to ShouldStep fires immediately.
func NewFixedInterval(interval time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetInterval(interval)
	fs.accumulator = fs.step
	return fs
}

// SetInterval changes the time between ticks. Non-positive values fall back to 60 TPS.
func (f *FixedStep) SetInterval(d time.Duration) {
	if d <= 0 {
		d = time.Second / 60
	}
	f.step = d
}

// Interval returns the configured time between ticks.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Reset drops accumulated time so the next tick waits a full interval.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
