package snow

import "testing"

func TestTreeRowCoversWidth(t *testing.T) {
	var b Backdrop
	for _, vp := range []Viewport{{800, 600}, {1024, 768}, {130, 200}} {
		pos := b.TreePositions(vp, nil)
		if len(pos) == 0 {
			t.Fatalf("%v: no trees", vp)
		}
		last := pos[len(pos)-1]
		if last[0]+TreeSpacing < float64(vp.Width) {
			t.Errorf("%v: row stops at %f", vp, last[0])
		}
		for _, p := range pos {
			if p[1] != float64(vp.Height-TreeHeight) {
				t.Errorf("%v: tree not on bottom edge: %v", vp, p)
			}
		}
	}
}

func TestBackdropDraw(t *testing.T) {
	var b Backdrop
	rec := &recordingSprites{}
	buf := b.Draw(rec, testViewport, nil)

	if rec.calls[0].id != SpriteBanner {
		t.Fatalf("banner must be drawn first, got %+v", rec.calls[0])
	}
	if rec.calls[0].x != 250 || rec.calls[0].y != BannerY {
		t.Errorf("banner not centred: %+v", rec.calls[0])
	}
	trees := len(rec.calls) - 1
	if trees != len(buf) || trees != 800/TreeSpacing+1 {
		t.Errorf("unexpected tree count %d (buf %d)", trees, len(buf))
	}
}
