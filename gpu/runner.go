// SPDX-License-Identifier: Unlicense OR MIT

// Package gpu issues the fill-rate measurement on an OpenGL context:
// a full-screen triangle drawn under a scenario's clear and depth
// state, bracketed by timer queries.
package gpu

import (
	"image"
	"strings"
	"time"

	"github.com/pkg/errors"

	"gioui.org/fillrate/bench"
	"gioui.org/fillrate/internal/gl"
)

// Surface presents a finished frame.
type Surface interface {
	Present() error
}

type Options struct {
	// Samples is the size of the query pool.
	Samples int
	// Scissor, when not empty, restricts every clear.
	Scissor image.Rectangle
	// Debug checks glGetError after each sample.
	Debug bool
}

// Runner owns the GPU objects of a benchmark run: the shader program,
// an empty vertex array and the query pool.
type Runner struct {
	f      gl.Functions
	opts   Options
	prog   gl.Program
	vao    gl.VertexArray
	timers *timers
}

// minVersion is the first desktop GL with GLSL 1.50 and instanced
// draws.
var minVersion = [2]int{3, 2}

func New(f gl.Functions, opts Options) (*Runner, error) {
	if opts.Samples <= 0 {
		return nil, errors.Errorf("query pool size must be positive, got %d", opts.Samples)
	}
	glVer := f.GetString(gl.VERSION)
	ver, err := gl.ParseGLVersion(glVer)
	if err != nil {
		return nil, err
	}
	if ver[0] < minVersion[0] || ver[0] == minVersion[0] && ver[1] < minVersion[1] {
		return nil, errors.Errorf("OpenGL %d.%d or newer required, context is %q", minVersion[0], minVersion[1], glVer)
	}
	// Timer queries are core from 3.3 on.
	if ver[0] == 3 && ver[1] < 3 && !hasExtension(f, "GL_ARB_timer_query") {
		return nil, errors.Errorf("timer queries are not supported by %q", glVer)
	}
	prog, err := gl.CreateProgram(f, vertexShader, fragmentShader)
	if err != nil {
		return nil, errors.Wrap(err, "full-screen triangle")
	}
	r := &Runner{
		f:    f,
		opts: opts,
		prog: prog,
		vao:  f.CreateVertexArray(),
	}
	r.timers = newTimers(f, opts.Samples)
	f.BindVertexArray(r.vao)
	f.UseProgram(r.prog)
	if err := gl.CheckError(f, "pipeline setup"); err != nil {
		r.Release()
		return nil, err
	}

	f.ClearDepthf(1.0)
	f.Enable(gl.DEPTH_TEST)
	f.DepthFunc(gl.LESS)
	f.DepthMask(true)
	logger().Debug("fill-rate pipeline ready", "gl", glVer, "samples", opts.Samples, "scissor", opts.Scissor)
	return r, nil
}

func hasExtension(f gl.Functions, ext string) bool {
	for _, e := range strings.Fields(f.GetString(gl.EXTENSIONS)) {
		if e == ext {
			return true
		}
	}
	return false
}

// DescribeContext returns the strings identifying the current context.
func DescribeContext(f gl.Functions) bench.Info {
	return bench.Info{
		Renderer: f.GetString(gl.RENDERER),
		Version:  f.GetString(gl.VERSION),
		Vendor:   f.GetString(gl.VENDOR),
		GLSL:     f.GetString(gl.SHADING_LANGUAGE_VERSION),
	}
}

// Run issues one sample per query of the pool and presents after each
// of them. It returns the elapsed GPU time of every sample in
// submission order. Reading the results waits for the GPU.
func (r *Runner) Run(sc bench.Scenario, s Surface) ([]time.Duration, error) {
	if sc.Draws <= 0 {
		return nil, errors.Errorf("scenario %q: draw count must be positive, got %d", sc.ID, sc.Draws)
	}
	c := sc.ClearColor
	r.f.ClearColor(c[0], c[1], c[2], c[3])
	if sc.NoDepth {
		r.f.Disable(gl.DEPTH_TEST)
	} else {
		r.f.Enable(gl.DEPTH_TEST)
	}
	logger().Debug("running scenario", "id", sc.ID, "flags", sc.Flags, "draws", sc.Draws, "depth", !sc.NoDepth)
	start := time.Now()
	for i, t := range r.timers.timers {
		if err := r.sample(sc, t); err != nil {
			r.timers.reset()
			return nil, errors.Wrapf(err, "%s: sample %d", sc.ID, i)
		}
		if err := s.Present(); err != nil {
			r.timers.reset()
			return nil, errors.Wrapf(err, "%s: sample %d", sc.ID, i)
		}
	}
	r.f.Flush()
	res, err := r.timers.collect()
	if err != nil {
		return nil, errors.Wrap(err, sc.ID)
	}
	logger().Debug("scenario done", "id", sc.ID, "wall", time.Since(start))
	return res, nil
}

// sample records a single clear and draw. The query starts before the
// clear only with the Clear flag and ends after the draw only with the
// Draw flag.
func (r *Runner) sample(sc bench.Scenario, t *timer) error {
	if sc.Flags&bench.Clear != 0 {
		t.begin()
	}
	scissor := !r.opts.Scissor.Empty()
	if scissor {
		sr := r.opts.Scissor
		r.f.Enable(gl.SCISSOR_TEST)
		r.f.Scissor(sr.Min.X, sr.Min.Y, sr.Dx(), sr.Dy())
	}
	r.f.Clear(sc.ClearMask)
	if scissor {
		r.f.Disable(gl.SCISSOR_TEST)
	}
	if sc.Flags&bench.Clear == 0 {
		t.begin()
	}
	if sc.Flags&bench.Draw == 0 {
		t.end()
	}
	r.f.DrawArraysInstanced(gl.TRIANGLES, 0, 3, sc.Draws)
	if sc.Flags&bench.Draw != 0 {
		t.end()
	}
	if r.opts.Debug {
		return gl.CheckError(r.f, "draw")
	}
	return nil
}

// Measure runs sc and aggregates its samples over pixels.
func (r *Runner) Measure(sc bench.Scenario, s Surface, warmup, pixels int) (bench.Result, error) {
	samples, err := r.Run(sc, s)
	if err != nil {
		return bench.Result{}, err
	}
	return bench.Summarize(sc, samples, warmup, pixels)
}

// Release deletes the GPU objects. The Runner must not be used
// afterwards.
func (r *Runner) Release() {
	if r.timers != nil {
		r.timers.release()
		r.timers = nil
	}
	if r.vao.Valid() {
		r.f.DeleteVertexArray(r.vao)
		r.vao = gl.VertexArray{}
	}
	if r.prog.Valid() {
		r.f.DeleteProgram(r.prog)
		r.prog = gl.Program{}
	}
}
