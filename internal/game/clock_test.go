package game

import (
	"testing"
	"time"
)

type fakeTime struct {
	t     time.Time
	slept []time.Duration
}

func (f *fakeTime) now() time.Time { return f.t }

func (f *fakeTime) sleep(d time.Duration) {
	f.slept = append(f.slept, d)
	f.t = f.t.Add(d)
}

func TestFrameClockSleepsRemainder(t *testing.T) {
	ft := &fakeTime{t: time.Unix(100, 0)}
	c := NewFrameClock(60)
	c.now, c.sleep = ft.now, ft.sleep

	if got := c.Tick(); got != 0 {
		t.Fatalf("first tick should not sleep, slept %v", got)
	}

	budget := time.Second / 60
	ft.t = ft.t.Add(4 * time.Millisecond)
	if got := c.Tick(); got != budget-4*time.Millisecond {
		t.Errorf("expected %v, got %v", budget-4*time.Millisecond, got)
	}

	// Overrun: no sleep, and the next frame starts from now.
	ft.t = ft.t.Add(40 * time.Millisecond)
	if got := c.Tick(); got != 0 {
		t.Errorf("overrun frame slept %v", got)
	}
	ft.t = ft.t.Add(budget)
	if got := c.Tick(); got != 0 {
		t.Errorf("frame that used its whole budget slept %v", got)
	}
	if len(ft.slept) != 1 {
		t.Errorf("expected exactly one sleep, got %v", ft.slept)
	}
}

func TestFrameClockDefaultRate(t *testing.T) {
	c := NewFrameClock(0)
	if c.budget != time.Second/TargetFPS {
		t.Errorf("unexpected budget %v", c.budget)
	}
}
