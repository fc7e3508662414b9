package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestFixedIntervalFiresOncePerInterval(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	fs := NewFixedInterval(500 * time.Millisecond)
	fs.now = clock.now

	if !fs.ShouldStep() {
		t.Fatal("first call should fire immediately")
	}
	clock.advance(200 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("fired before the interval elapsed")
	}
	clock.advance(300 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("did not fire after a full interval")
	}
	clock.advance(100 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("fired twice within one interval")
	}
}

func TestFixedStepResetWaitsFullInterval(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	fs := NewFixedInterval(time.Second)
	fs.now = clock.now
	fs.Reset()

	if fs.ShouldStep() {
		t.Fatal("fired immediately after Reset")
	}
	clock.advance(time.Second)
	if !fs.ShouldStep() {
		t.Fatal("did not fire one interval after Reset")
	}
}

func TestFixedStepDefaults(t *testing.T) {
	if got := NewFixedInterval(-1).Interval(); got != time.Second/60 {
		t.Fatalf("NewFixedInterval(-1) interval = %v", got)
	}
	fs := NewFixedInterval(time.Second)
	fs.SetInterval(250 * time.Millisecond)
	if fs.Interval() != 250*time.Millisecond {
		t.Fatalf("SetInterval(250ms) interval = %v", fs.Interval())
	}
}
