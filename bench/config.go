// SPDX-License-Identifier: Unlicense OR MIT

package bench

import (
	"image"

	"github.com/pkg/errors"
)

// Config holds the measurement knobs. It is fixed for the whole run.
type Config struct {
	// Samples is the number of timer queries, and therefore frames,
	// per scenario.
	Samples int
	// Warmup samples are discarded from both ends of every scenario.
	Warmup int
	// Rejects is the number of instances drawn per sample by the
	// depth rejection and clear scenarios.
	Rejects int
	// Scissor restricts the clears to a quarter of the framebuffer.
	Scissor bool
	// Debug checks glGetError after every sample.
	Debug bool
}

func DefaultConfig() Config {
	return Config{
		Samples: 200,
		Warmup:  40,
		Rejects: 20,
	}
}

func (c Config) Validate() error {
	switch {
	case c.Samples <= 0:
		return errors.Errorf("samples must be positive, got %d", c.Samples)
	case c.Warmup < 0:
		return errors.Errorf("warmup must not be negative, got %d", c.Warmup)
	case c.Samples <= 2*c.Warmup:
		return errors.Errorf("%d samples leave nothing to measure after discarding %d warmup samples at each end", c.Samples, c.Warmup)
	case c.Rejects <= 0:
		return errors.Errorf("rejects must be positive, got %d", c.Rejects)
	}
	return nil
}

// ScissorRect returns the clear rectangle used when Scissor is set
// for a framebuffer of size fb. Framebuffers smaller than 2x2 pixels
// leave an empty rectangle and are an error.
func ScissorRect(fb image.Point) (image.Rectangle, error) {
	r := image.Rect(1, 1, 1+fb.X/2, 1+fb.Y/2)
	if r.Empty() {
		return image.Rectangle{}, errors.Errorf("framebuffer %dx%d is too small to scissor", fb.X, fb.Y)
	}
	return r, nil
}
