//go:build !android

package game

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"snowflow/internal/snow"
)

// Line queues one segment. Segments are drawn in a single batch by FlushLines; a
// width change or a full buffer flushes early.
func (r *Renderer) Line(x0, y0, x1, y1 float64, width float32, col snow.RGB) {
	if width != r.lineWidth || len(r.lineBuf)+2*LineStride > cap(r.lineBuf) {
		r.FlushLines()
		r.lineWidth = width
	}
	cr := float32(col.R) / 255.0
	cg := float32(col.G) / 255.0
	cb := float32(col.B) / 255.0
	r.lineBuf = append(r.lineBuf,
		float32(x0), float32(y0), cr, cg, cb, 1,
		float32(x1), float32(y1), cr, cg, cb, 1,
	)
}

// FlushLines draws all queued segments and clears the queue.
func (r *Renderer) FlushLines() {
	if len(r.lineBuf) == 0 {
		return
	}
	count := len(r.lineBuf) / LineStride

	gl.UseProgram(r.lineProg)
	gl.BindVertexArray(r.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	gl.Uniform2f(r.lineURes, float32(r.vp.Width), float32(r.vp.Height))
	gl.LineWidth(r.lineWidth)

	gl.BufferData(gl.ARRAY_BUFFER, len(r.lineBuf)*4, gl.Ptr(r.lineBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.LINES, 0, int32(count))

	r.lineBuf = r.lineBuf[:0]
}
