package snow

// Backdrop is the static decoration: a centred banner near the top and a row of
// trees along the bottom edge, tiled across the full width.
type Backdrop struct{}

// TreePositions returns the top-left corner of each tree for the viewport. The
// row always covers the width, including after a resize.
func (Backdrop) TreePositions(vp Viewport, dst [][2]float64) [][2]float64 {
	dst = dst[:0]
	y := vp.H() - TreeHeight
	for x := 0; x < vp.Width; x += TreeSpacing {
		dst = append(dst, [2]float64{float64(x), y})
	}
	return dst
}

// BannerPos centres a banner of width w horizontally.
func (Backdrop) BannerPos(vp Viewport, w int) (float64, float64) {
	return float64(vp.Width-w) / 2, BannerY
}

// Draw blits the banner then the tree row. buf is reused between frames.
func (b Backdrop) Draw(d SpriteDrawer, vp Viewport, buf [][2]float64) [][2]float64 {
	bw, _ := d.SpriteSize(SpriteBanner)
	bx, by := b.BannerPos(vp, bw)
	d.Sprite(SpriteBanner, bx, by)

	buf = b.TreePositions(vp, buf)
	for _, p := range buf {
		d.Sprite(SpriteTree, p[0], p[1])
	}
	return buf
}
