//go:build !android

package game

import (
	"fmt"
	"image"
	"image/color"

	"github.com/go-gl/gl/v4.1-core/gl"

	"snowflow/internal/media"
	"snowflow/internal/snow"
)

// Texture is an uploaded RGBA image.
type Texture struct {
	ID   uint32
	W, H int
}

// NewTexture uploads img to a new GL texture.
func NewTexture(img *image.NRGBA) *Texture {
	b := img.Bounds()
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	return &Texture{ID: tex, W: b.Dx(), H: b.Dy()}
}

func (t *Texture) Delete() {
	if t.ID != 0 {
		gl.DeleteTextures(1, &t.ID)
		t.ID = 0
	}
}

// LoadSprites loads and scales the tree and sleigh images and renders the banner.
// Any failure here is fatal to the caller; there is no fallback artwork.
func (r *Renderer) LoadSprites() error {
	images := []struct {
		id   snow.SpriteID
		path string
		w, h int
	}{
		{snow.SpriteTree, TreeImage, snow.TreeWidth, snow.TreeHeight},
		{snow.SpriteSleigh, SleighImage, snow.SleighWidth, snow.SleighHeight},
	}
	for _, im := range images {
		img, err := media.LoadImage(im.path, im.w, im.h)
		if err != nil {
			return err
		}
		r.sprites[im.id] = NewTexture(img)
	}

	c := snow.BannerCol
	banner, err := media.RenderText(snow.BannerText, snow.BannerSize, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255})
	if err != nil {
		return fmt.Errorf("banner: %w", err)
	}
	r.sprites[snow.SpriteBanner] = NewTexture(banner)
	return nil
}

// SpriteSize returns the pixel size of a loaded sprite, or 0, 0 if unknown.
func (r *Renderer) SpriteSize(id snow.SpriteID) (int, int) {
	t, ok := r.sprites[id]
	if !ok {
		return 0, 0
	}
	return t.W, t.H
}

// Sprite draws a loaded sprite with its top-left corner at (x, y).
func (r *Renderer) Sprite(id snow.SpriteID, x, y float64) {
	t, ok := r.sprites[id]
	if !ok {
		return
	}
	sx, sy := float32(x), float32(y)
	w, h := float32(t.W), float32(t.H)

	// Two triangles: TL, TR, BL then TR, BR, BL.
	v := r.quadVerts[:0]
	v = append(v,
		sx, sy, 0, 0, 1, 1, 1, 1,
		sx+w, sy, 1, 0, 1, 1, 1, 1,
		sx, sy+h, 0, 1, 1, 1, 1, 1,
		sx+w, sy, 1, 0, 1, 1, 1, 1,
		sx+w, sy+h, 1, 1, 1, 1, 1, 1,
		sx, sy+h, 0, 1, 1, 1, 1, 1,
	)

	gl.UseProgram(r.quadProg)
	gl.BindVertexArray(r.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.Uniform2f(r.quadURes, float32(r.vp.Width), float32(r.vp.Height))

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BufferData(gl.ARRAY_BUFFER, len(v)*4, gl.Ptr(v), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)

	gl.Disable(gl.BLEND)
}
