// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"image"

	"github.com/pkg/errors"
)

// WindowMode is the window mode (WindowMode.Option sets it).
type WindowMode uint8

const (
	// Fullscreen covers the primary monitor at its current video mode.
	Fullscreen WindowMode = iota
	// Windowed is the normal window mode with OS specific decorations.
	Windowed
)

func (m WindowMode) Option() Option {
	return func(cnf *Config) {
		cnf.Mode = m
	}
}

func (m WindowMode) String() string {
	switch m {
	case Fullscreen:
		return "fullscreen"
	case Windowed:
		return "windowed"
	}
	return ""
}

// Config describes the window and its GL context.
type Config struct {
	Title string
	// Size is the window size in screen coordinates. It applies to
	// Windowed mode only.
	Size image.Point
	Mode WindowMode
	// VSync gates buffer swaps on the display refresh.
	VSync bool
	// DepthBits is the depth buffer precision of the default
	// framebuffer.
	DepthBits int
}

// Option configures a window.
type Option func(*Config)

func defaultConfig() Config {
	return Config{
		Title:     "GL fill-rate benchmark",
		Size:      image.Pt(800, 600),
		Mode:      Fullscreen,
		DepthBits: 24,
	}
}

// Title sets the title of the window.
func Title(t string) Option {
	return func(cnf *Config) {
		cnf.Title = t
	}
}

// Size sets the size of the window. The mode will be changed to Windowed.
func Size(w, h int) Option {
	return func(cnf *Config) {
		cnf.Mode = Windowed
		cnf.Size = image.Pt(w, h)
	}
}

// VSync enables or disables swap synchronization. It is off by
// default so presents never wait for the display.
func VSync(enable bool) Option {
	return func(cnf *Config) {
		cnf.VSync = enable
	}
}

func (c Config) validate() error {
	if c.Mode == Windowed && (c.Size.X <= 0 || c.Size.Y <= 0) {
		return errors.Errorf("invalid window size %v", c.Size)
	}
	if c.DepthBits <= 0 {
		return errors.New("a depth buffer is required")
	}
	return nil
}

func newConfig(opts ...Option) (Config, error) {
	cnf := defaultConfig()
	for _, o := range opts {
		o(&cnf)
	}
	return cnf, cnf.validate()
}
