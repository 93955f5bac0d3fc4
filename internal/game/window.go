//go:build !android

package game

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"snowflow/internal/snow"
)

func initWindow() (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Decorated, glfw.True)

	window, err := glfw.CreateWindow(WindowWidth, WindowHeight, WindowTitle, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	return window, nil
}

// windowViewport returns the logical (screen coordinate) size of the window. The
// simulation works in these units; the framebuffer may be larger on HiDPI.
func windowViewport(window *glfw.Window) snow.Viewport {
	w, h := window.GetSize()
	return snow.Viewport{Width: w, Height: h}
}
