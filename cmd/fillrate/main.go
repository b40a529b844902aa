// SPDX-License-Identifier: Unlicense OR MIT

//go:build cgo && !js && !android && !ios

// Command fillrate measures how fast the GPU fills the screen.
//
// It draws a full-screen triangle under a few pipeline states (color
// and depth writes, depth rejection, clear only, color only), times
// every frame with GPU timer queries and prints the per-pixel cost
// together with a row for the fill-rate results table.
//
// Usage:
//
//	fillrate [flags]
//
// Press Escape to abort a run.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"gioui.org/fillrate/app"
	"gioui.org/fillrate/bench"
	"gioui.org/fillrate/gpu"
)

func init() {
	// Required by the OpenGL threading model.
	runtime.LockOSThread()
}

var (
	fullscreen = flag.Bool("fullscreen", true, "cover the primary monitor")
	width      = flag.Int("width", 1280, "window width when not fullscreen")
	height     = flag.Int("height", 720, "window height when not fullscreen")
	vsync      = flag.Bool("vsync", false, "synchronize buffer swaps with the display")
	scenarios  = flag.String("run", "", "comma separated scenarios to run (color, reject, clear, coloronly); all by default")
	verbose    = flag.Bool("v", false, "log diagnostics")
)

func main() {
	cfg := bench.DefaultConfig()
	flag.IntVar(&cfg.Samples, "samples", cfg.Samples, "timer queries, and frames, per scenario")
	flag.IntVar(&cfg.Warmup, "warmup", cfg.Warmup, "samples discarded at each end of a scenario")
	flag.IntVar(&cfg.Rejects, "rejects", cfg.Rejects, "instances per sample for the depth rejection and clear scenarios")
	flag.BoolVar(&cfg.Scissor, "scissor", cfg.Scissor, "scissor clears to a quarter of the screen")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "check for GL errors after every sample")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	gpu.SetLogger(logger)

	var opts []app.Option
	if !*fullscreen {
		opts = append(opts, app.Size(*width, *height))
	}
	opts = append(opts, app.VSync(*vsync))
	if err := run(logger, cfg, *scenarios, opts); err != nil {
		logger.Error("fill-rate benchmark failed", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, cfg bench.Config, ids string, opts []app.Option) error {
	scs, err := scenariosFor(cfg, ids)
	if err != nil {
		return err
	}
	w, err := app.NewWindow(opts...)
	if err != nil {
		return err
	}
	defer w.Close()
	logger.Debug("window",
		"mode", w.Config().Mode,
		"size", w.Size(),
		"vsync", w.Config().VSync,
	)
	return measure(os.Stdout, logger, w, cfg, scs)
}
