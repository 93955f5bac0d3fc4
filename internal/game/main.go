//go:build !android

package game

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"snowflow/internal/snow"
)

// RunDesktop opens the window and runs the frame loop until the window is closed
// or Escape is pressed.
func RunDesktop() {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	if err := InitAudio(); err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	} else {
		StartAmbient()
		LoadCue()
	}
	defer StopAudio()

	// Seed from environment or clock.
	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("SNOWFLOW_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()
	if err := rend.LoadSprites(); err != nil {
		panic(fmt.Errorf("sprites: %w", err))
	}

	start := glfw.GetTime()
	nowMs := func() int64 { return int64((glfw.GetTime() - start) * 1000) }

	vp := windowViewport(window)
	field := snow.NewField(seed ^ 0x5EED)
	field.Spawn(snow.DefaultCrystals, vp)
	sleigh := snow.NewSleigh(seed^0x51E1, vp, nowMs())
	var backdrop snow.Backdrop
	var treeBuf [][2]float64

	input := NewInput()
	clock := NewFrameClock(TargetFPS)

	for !window.ShouldClose() {
		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}
		if input.JustPressed(window, glfw.KeySpace) {
			ToggleMusic()
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			clock.Tick()
			continue
		}
		vp = windowViewport(window)

		rend.BeginFrame(vp, fbW, fbH)
		treeBuf = backdrop.Draw(rend, vp, treeBuf)

		field.Advance(vp)
		field.Render(rend)
		rend.FlushLines()

		sleigh.Update(vp)
		if sleigh.CheckAppearance(nowMs()) {
			PlayCue()
		}
		sleigh.Draw(rend)

		window.SwapBuffers()
		clock.Tick()
	}
}
