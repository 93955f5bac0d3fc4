package snow

import "math"

// Crystal is one snowflake. Size, FallSpeed, Drift and RotationSpeed are fixed for
// the crystal's lifetime; position and rotation change every frame.
type Crystal struct {
	X, Y          float64
	Size          int
	FallSpeed     float64
	Drift         float64
	Rotation      float64 // degrees
	RotationSpeed float64 // degrees per frame
}

// NewCrystal samples a crystal's fixed character at (x, y).
func NewCrystal(r *Rand, x, y float64) Crystal {
	return Crystal{
		X:             x,
		Y:             y,
		Size:          r.Range(CrystalMinSize, CrystalMaxSize),
		FallSpeed:     r.RangeF(CrystalMinFall, CrystalMaxFall),
		Drift:         r.RangeF(-CrystalMaxDrift, CrystalMaxDrift),
		Rotation:      r.RangeF(0, 360),
		RotationSpeed: r.RangeF(-CrystalMaxSpin, CrystalMaxSpin),
	}
}

// Fall moves the crystal one frame. It reports whether the crystal dropped below
// the viewport and was recycled to the top edge.
func (c *Crystal) Fall(r *Rand, vp Viewport) bool {
	c.Y += c.FallSpeed
	c.X += c.Drift
	c.Rotation += c.RotationSpeed

	if c.Y > vp.H() {
		c.Y = 0
		c.X = r.RangeF(0, vp.W())
		c.Rotation = r.RangeF(0, 360)
		return true
	}
	return false
}

// Draw emits the six branches. Every segment starts at the centre.
func (c *Crystal) Draw(d LineDrawer, col RGB) {
	length := float64(c.Size)
	for i := 0; i < CrystalBranches; i++ {
		c.drawBranch(d, length, c.Rotation+float64(i)*CrystalBranchDegree, col)
	}
}

func (c *Crystal) drawBranch(d LineDrawer, length, deg float64, col RGB) {
	ex, ey := polar(c.X, c.Y, length, deg)
	d.Line(c.X, c.Y, ex, ey, CrystalLineWidth, col)

	side := length * CrystalSideRatio
	for _, off := range [2]float64{CrystalSideAngle, -CrystalSideAngle} {
		sx, sy := polar(c.X, c.Y, side, deg+off)
		d.Line(c.X, c.Y, sx, sy, CrystalLineWidth, col)
	}
}

func polar(x, y, length, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	return x + length*math.Cos(rad), y + length*math.Sin(rad)
}
