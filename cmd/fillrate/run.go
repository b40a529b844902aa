// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"image"
	"io"
	"log/slog"

	"github.com/pkg/errors"

	"gioui.org/fillrate/bench"
	"gioui.org/fillrate/gpu"
	"gioui.org/fillrate/internal/gl"
	"gioui.org/fillrate/internal/sysinfo"
)

// display is the part of a window the measurement needs.
type display interface {
	gpu.Surface
	Functions() gl.Functions
	FramebufferSize() image.Point
	Scale() float32
}

// scenariosFor validates cfg and resolves the -run list.
func scenariosFor(cfg bench.Config, ids string) ([]bench.Scenario, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return bench.SelectScenarios(bench.DefaultScenarios(cfg), ids)
}

// measure describes the context of d, runs every scenario on it and
// prints the results followed by the table row.
func measure(out io.Writer, logger *slog.Logger, d display, cfg bench.Config, scs []bench.Scenario) error {
	f := d.Functions()
	fb := d.FramebufferSize()
	info := gpu.DescribeContext(f)
	info.OS = sysinfo.OS()
	info.OSRelease = sysinfo.Release()
	info.Width, info.Height = fb.X, fb.Y
	info.Scale = d.Scale()
	if info.Pixels() <= 0 {
		return errors.Errorf("empty framebuffer %v", fb)
	}
	bench.PrintInfo(out, info)
	logger.Debug("context", "vendor", info.Vendor, "glsl", info.GLSL)

	gopts := gpu.Options{
		Samples: cfg.Samples,
		Debug:   cfg.Debug,
	}
	if cfg.Scissor {
		sr, err := bench.ScissorRect(fb)
		if err != nil {
			return err
		}
		gopts.Scissor = sr
	}
	r, err := gpu.New(f, gopts)
	if err != nil {
		return err
	}
	defer r.Release()

	var results []bench.Result
	for _, sc := range scs {
		res, err := r.Measure(sc, d, cfg.Warmup, info.Pixels())
		if err != nil {
			return err
		}
		bench.PrintResult(out, res)
		results = append(results, res)
	}
	bench.PrintTable(out, info, results)
	return nil
}
