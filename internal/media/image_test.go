package media

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: 20, G: 120, B: 40, A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "tree.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadImageScales(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		wantW, wantH int
	}{
		{"down", 16, 24, 16, 24},
		{"up", 128, 96, 128, 96},
		{"keep", 0, 0, 32, 32},
		{"keep height", 64, 0, 64, 32},
	}
	path := writePNG(t, 32, 32)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := LoadImage(path, tt.w, tt.h)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			b := img.Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("got %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
			c := img.NRGBAAt(b.Dx()/2, b.Dy()/2)
			if c.A != 255 || c.G < 100 {
				t.Errorf("unexpected centre pixel %+v", c)
			}
		})
	}
}

func TestLoadImageMissing(t *testing.T) {
	if _, err := LoadImage(filepath.Join(t.TempDir(), "sleigh.png"), 10, 10); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestRenderText(t *testing.T) {
	img, err := RenderText("Merry Christmas!", 32, color.White)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	b := img.Bounds()
	if b.Dx() < 100 || b.Dy() < 20 {
		t.Fatalf("banner too small: %v", b)
	}
	inked := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 0 {
			inked++
		}
	}
	if inked == 0 {
		t.Error("no pixels drawn")
	}
}

func TestRenderTextEmpty(t *testing.T) {
	img, err := RenderText("", 32, color.White)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if img.Bounds().Empty() {
		t.Error("expected a placeholder image")
	}
}
