// SPDX-License-Identifier: Unlicense OR MIT

//go:build cgo && !js && !android && !ios

package app

import (
	"image"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	fillgl "gioui.org/fillrate/internal/gl"
)

// ErrClosed is returned by Present after the user closed the window
// or pressed Escape.
var ErrClosed = errors.New("window closed")

// Window is a glfw window with a current OpenGL 3.2 core context.
// All methods must be called from the thread that created it.
type Window struct {
	win   *glfw.Window
	cnf   Config
	funcs *glFunctions
}

// NewWindow creates the window, makes its context current and loads
// the GL entry points.
func NewWindow(options ...Option) (*Window, error) {
	cnf, err := newConfig(options...)
	if err != nil {
		return nil, err
	}
	if err := glfw.Init(); err != nil {
		return nil, errors.Wrap(err, "glfw init")
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 2)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DepthBits, cnf.DepthBits)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	var monitor *glfw.Monitor
	width, height := cnf.Size.X, cnf.Size.Y
	if cnf.Mode == Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
		if monitor == nil {
			glfw.Terminate()
			return nil, errors.New("no primary monitor for a fullscreen window")
		}
		mode := monitor.GetVideoMode()
		width, height = mode.Width, mode.Height
		glfw.WindowHint(glfw.RedBits, mode.RedBits)
		glfw.WindowHint(glfw.GreenBits, mode.GreenBits)
		glfw.WindowHint(glfw.BlueBits, mode.BlueBits)
		glfw.WindowHint(glfw.RefreshRate, mode.RefreshRate)
	}
	win, err := glfw.CreateWindow(width, height, cnf.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Wrap(err, "create window")
	}
	win.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, errors.Wrap(err, "load OpenGL")
	}
	interval := 0
	if cnf.VSync {
		interval = 1
	}
	glfw.SwapInterval(interval)
	win.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})
	return &Window{
		win:   win,
		cnf:   cnf,
		funcs: new(glFunctions),
	}, nil
}

// Functions returns the GL entry points of the window context.
func (w *Window) Functions() fillgl.Functions {
	return w.funcs
}

func (w *Window) Config() Config {
	return w.cnf
}

// Size returns the window size in screen coordinates.
func (w *Window) Size() image.Point {
	x, y := w.win.GetSize()
	return image.Pt(x, y)
}

// FramebufferSize returns the size of the default framebuffer in
// pixels.
func (w *Window) FramebufferSize() image.Point {
	x, y := w.win.GetFramebufferSize()
	return image.Pt(x, y)
}

// Scale returns the hiDPI factor of the window.
func (w *Window) Scale() float32 {
	x, _ := w.win.GetContentScale()
	return x
}

// Present swaps the buffers and processes pending window events.
func (w *Window) Present() error {
	w.win.SwapBuffers()
	glfw.PollEvents()
	if w.win.ShouldClose() {
		return ErrClosed
	}
	return nil
}

// Close destroys the window and terminates glfw. GL objects must be
// released before.
func (w *Window) Close() {
	w.win.Destroy()
	glfw.Terminate()
}
