package snow

// Viewport is the visible area in screen pixels. It is passed explicitly to every
// update and draw call; resizing the window only changes the value handed in.
type Viewport struct {
	Width, Height int
}

func (v Viewport) W() float64 { return float64(v.Width) }
func (v Viewport) H() float64 { return float64(v.Height) }
