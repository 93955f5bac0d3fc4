package game

import "time"

// FrameClock throttles the loop to a target rate by sleeping off whatever is left
// of the frame budget. A frame that overruns is not made up for later.
type FrameClock struct {
	budget time.Duration
	last   time.Time
	now    func() time.Time
	sleep  func(time.Duration)
}

func NewFrameClock(fps int) *FrameClock {
	if fps <= 0 {
		fps = TargetFPS
	}
	return &FrameClock{
		budget: time.Second / time.Duration(fps),
		now:    time.Now,
		sleep:  time.Sleep,
	}
}

// Tick blocks until the current frame has used its budget and returns how long it
// slept.
func (c *FrameClock) Tick() time.Duration {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	wait := c.budget - now.Sub(c.last)
	if wait > 0 {
		c.sleep(wait)
		now = now.Add(wait)
	} else {
		wait = 0
	}
	c.last = now
	return wait
}
