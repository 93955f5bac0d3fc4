package snow

// Sleigh is the decorative sprite that crosses the screen right to left.
//
// The sound cue is gated on time, not on position: CheckAppearance fires once the
// interval has elapsed and the current pass has not sounded yet, whether or not the
// sleigh is on screen. Wrapping around at the left edge re-arms it.
type Sleigh struct {
	X, Y       float64
	Speed      float64
	Width      float64
	HasSounded bool

	// LastTrigger is the clock reading (ms) of the last cue, or of creation.
	LastTrigger int64
	Interval    int64

	rng *Rand
}

// NewSleigh places the sleigh at the right edge. nowMs is the baseline for the
// first cue.
func NewSleigh(seed uint64, vp Viewport, nowMs int64) *Sleigh {
	s := &Sleigh{
		X:           vp.W(),
		Speed:       SleighSpeed,
		Width:       SleighWidth,
		LastTrigger: nowMs,
		Interval:    AppearInterval,
		rng:         NewRand(seed),
	}
	s.Y = s.randomY()
	return s
}

func (s *Sleigh) randomY() float64 {
	return float64(s.rng.Range(SleighMinY, SleighMaxY))
}

// Update moves the sleigh one frame. Once it is fully past the left edge (its
// right edge at or before x=0) it re-enters on the right at a new height and the cue is re-armed. It reports
// whether a new pass started.
func (s *Sleigh) Update(vp Viewport) bool {
	s.X -= s.Speed
	if s.X <= -s.Width {
		s.X = vp.W()
		s.Y = s.randomY()
		s.HasSounded = false
		return true
	}
	return false
}

// CheckAppearance reports whether the cue should play now. At most one firing per
// Interval; an elapsed time exactly equal to Interval fires.
func (s *Sleigh) CheckAppearance(nowMs int64) bool {
	if s.HasSounded {
		return false
	}
	if nowMs-s.LastTrigger < s.Interval {
		return false
	}
	s.HasSounded = true
	s.LastTrigger = nowMs
	return true
}

func (s *Sleigh) Draw(d SpriteDrawer) {
	d.Sprite(SpriteSleigh, s.X, s.Y)
}
