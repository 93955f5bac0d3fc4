package snow

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// LineDrawer draws a straight segment in screen pixel space.
type LineDrawer interface {
	Line(x0, y0, x1, y1 float64, width float32, col RGB)
}

// SpriteID names a pre-loaded image (or pre-rendered text) on the host side.
type SpriteID int

const (
	SpriteTree SpriteID = iota
	SpriteSleigh
	SpriteBanner
)

// SpriteDrawer blits a pre-loaded sprite with its top-left corner at (x, y).
type SpriteDrawer interface {
	Sprite(id SpriteID, x, y float64)
	SpriteSize(id SpriteID) (w, h int)
}
