package media

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	xdraw "golang.org/x/image/draw"
)

// LoadImage decodes the image at path and scales it to w x h. A zero w or h keeps
// the source size on that axis.
func LoadImage(path string, w, h int) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return Scale(src, w, h), nil
}

// Scale resamples src into a new NRGBA of w x h with Catmull-Rom filtering.
func Scale(src image.Image, w, h int) *image.NRGBA {
	b := src.Bounds()
	if w <= 0 {
		w = b.Dx()
	}
	if h <= 0 {
		h = b.Dy()
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		xdraw.Draw(dst, dst.Bounds(), src, b.Min, xdraw.Src)
		return dst
	}
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}
