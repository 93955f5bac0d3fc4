//go:build !android

package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"snowflow/internal/snow"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	// Line program: snowflake branches.
	lineProg  uint32
	lineVAO   uint32
	lineVBO   uint32
	lineURes  int32
	lineBuf   []float32
	lineWidth float32

	// Quad program: image sprites and the banner.
	quadProg  uint32
	quadVAO   uint32
	quadVBO   uint32
	quadURes  int32
	quadUTex  int32
	quadVerts [6 * QuadStride]float32

	sprites map[snow.SpriteID]*Texture

	// Logical size of the current frame, used as the shader resolution.
	vp snow.Viewport
}

func NewRenderer() (*Renderer, error) {
	lineProg, err := linkProgram(lineVertSrc, lineFragSrc)
	if err != nil {
		return nil, fmt.Errorf("line program: %w", err)
	}
	quadProg, err := linkProgram(quadVertSrc, quadFragSrc)
	if err != nil {
		gl.DeleteProgram(lineProg)
		return nil, fmt.Errorf("quad program: %w", err)
	}

	r := &Renderer{
		lineProg:  lineProg,
		quadProg:  quadProg,
		lineWidth: snow.CrystalLineWidth,
		lineBuf:   make([]float32, 0, MaxLineVertices*LineStride),
		sprites:   make(map[snow.SpriteID]*Texture),
	}

	// Line VAO/VBO: streaming buffer, 6 floats per vertex (x, y, r, g, b, a).
	var lVAO, lVBO uint32
	gl.GenVertexArrays(1, &lVAO)
	gl.GenBuffers(1, &lVBO)
	gl.BindVertexArray(lVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, lVBO)

	stride := int32(LineStride * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxLineVertices*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aColor
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, glOffset(2*4))
	r.lineVAO = lVAO
	r.lineVBO = lVBO

	gl.UseProgram(lineProg)
	r.lineURes = gl.GetUniformLocation(lineProg, gl.Str("uResolution\x00"))

	// Quad VAO/VBO: one quad at a time, pos(2) + uv(2) + color(4).
	var qVAO, qVBO uint32
	gl.GenVertexArrays(1, &qVAO)
	gl.GenBuffers(1, &qVBO)
	gl.BindVertexArray(qVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, qVBO)

	stride = int32(QuadStride * 4)
	gl.BufferData(gl.ARRAY_BUFFER, 6*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aUV
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2) // aColor
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(4*4))
	r.quadVAO = qVAO
	r.quadVBO = qVBO

	gl.UseProgram(quadProg)
	r.quadURes = gl.GetUniformLocation(quadProg, gl.Str("uResolution\x00"))
	r.quadUTex = gl.GetUniformLocation(quadProg, gl.Str("uTex\x00"))
	gl.Uniform1i(r.quadUTex, 0)

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, t := range r.sprites {
		t.Delete()
	}
	for _, id := range []uint32{r.lineVBO, r.quadVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.lineVAO, r.quadVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.lineProg, r.quadProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

// BeginFrame clears the framebuffer to the background colour. vp is the logical
// window size that all draw calls are expressed in.
func (r *Renderer) BeginFrame(vp snow.Viewport, fbW, fbH int) {
	r.vp = vp
	r.lineBuf = r.lineBuf[:0]

	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.ClearColor(
		float32(snow.Background.R)/255.0,
		float32(snow.Background.G)/255.0,
		float32(snow.Background.B)/255.0,
		1.0,
	)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}
