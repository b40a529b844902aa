// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"errors"
	"image"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gioui.org/fillrate/bench"
	"gioui.org/fillrate/internal/gl"
	"gioui.org/fillrate/internal/gl/gltest"
)

type testSurface struct {
	presents int
	failAt   int
}

func (s *testSurface) Present() error {
	s.presents++
	if s.failAt > 0 && s.presents == s.failAt {
		return errors.New("window closed")
	}
	return nil
}

func newRecorder() *gltest.Recorder {
	f := gltest.New()
	f.Strings = map[gl.Enum]string{
		gl.VERSION:                  "4.6 (Core Profile) Mesa 23.1.4",
		gl.RENDERER:                 "Mesa Intel(R) UHD Graphics 620",
		gl.VENDOR:                   "Intel",
		gl.SHADING_LANGUAGE_VERSION: "4.60",
	}
	return f
}

func newTestRunner(t *testing.T, opts Options) (*Runner, *gltest.Recorder) {
	t.Helper()
	f := newRecorder()
	r, err := New(f, opts)
	require.NoError(t, err)
	f.Reset()
	return r, f
}

// names strips the arguments of recorded calls.
func names(calls []string) []string {
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = strings.Fields(c)[0]
	}
	return out
}

func TestNewSetsUpPipeline(t *testing.T) {
	f := newRecorder()
	r, err := New(f, Options{Samples: 4})
	require.NoError(t, err)
	assert.Equal(t, 1, f.Live("program"))
	assert.Equal(t, 0, f.Live("shader"))
	assert.Equal(t, 1, f.Live("vertexarray"))
	assert.Equal(t, 4, f.Live("query"))
	assert.True(t, f.Enabled(gl.DEPTH_TEST))
	assert.Equal(t, []string{"DepthFunc 0x201"}, f.Filter("DepthFunc"))
	assert.Equal(t, []string{"DepthMask true"}, f.Filter("DepthMask"))
	assert.Equal(t, []string{"ClearDepthf 1"}, f.Filter("ClearDepthf"))

	r.Release()
	assert.Equal(t, 0, f.Live("program"))
	assert.Equal(t, 0, f.Live("vertexarray"))
	assert.Equal(t, 0, f.Live("query"))
	// Releasing twice is harmless.
	r.Release()
	assert.Equal(t, 0, f.Live("query"))
}

func TestNewErrors(t *testing.T) {
	f := newRecorder()
	_, err := New(f, Options{Samples: 0})
	assert.Error(t, err)

	f = newRecorder()
	f.Strings[gl.VERSION] = "2.1 Mesa 10.0"
	_, err = New(f, Options{Samples: 4})
	assert.ErrorContains(t, err, "OpenGL 3.2 or newer required")

	f = newRecorder()
	f.Strings[gl.VERSION] = "3.2 Mesa 10.0"
	_, err = New(f, Options{Samples: 4})
	assert.ErrorContains(t, err, "timer queries are not supported")
	f.Strings[gl.EXTENSIONS] = "GL_ARB_sync GL_ARB_timer_query"
	_, err = New(f, Options{Samples: 4})
	assert.NoError(t, err)

	f = newRecorder()
	f.FailCompile = gl.VERTEX_SHADER
	f.InfoLog = "unsupported version"
	_, err = New(f, Options{Samples: 4})
	assert.ErrorContains(t, err, "full-screen triangle: vertex shader compilation failed: unsupported version")

	f = newRecorder()
	f.Errors = []gl.Enum{gl.INVALID_OPERATION}
	_, err = New(f, Options{Samples: 4})
	assert.EqualError(t, err, "pipeline setup: GL_INVALID_OPERATION")
	assert.Equal(t, 0, f.Live("query"), "objects must be released on failure")
	assert.Equal(t, 0, f.Live("program"))
}

func TestDescribeContext(t *testing.T) {
	info := DescribeContext(newRecorder())
	assert.Equal(t, "Mesa Intel(R) UHD Graphics 620", info.Renderer)
	assert.Equal(t, "4.6 (Core Profile) Mesa 23.1.4", info.Version)
	assert.Equal(t, "Intel", info.Vendor)
	assert.Equal(t, "4.60", info.GLSL)
}

func TestRunQueryPlacement(t *testing.T) {
	tests := []struct {
		flags bench.Flags
		want  []string
	}{
		{bench.Draw, []string{"Clear", "BeginQuery", "DrawArraysInstanced", "EndQuery"}},
		{bench.Clear, []string{"BeginQuery", "Clear", "EndQuery", "DrawArraysInstanced"}},
		{bench.Clear | bench.Draw, []string{"BeginQuery", "Clear", "DrawArraysInstanced", "EndQuery"}},
		{0, []string{"Clear", "BeginQuery", "EndQuery", "DrawArraysInstanced"}},
	}
	for _, tt := range tests {
		r, f := newTestRunner(t, Options{Samples: 1})
		sc := bench.Scenario{ID: "t", ClearMask: gl.COLOR_BUFFER_BIT, Draws: 5, Flags: tt.flags}
		var s testSurface
		_, err := r.Run(sc, &s)
		require.NoError(t, err, tt.flags)
		got := f.Filter("Clear", "BeginQuery", "EndQuery", "DrawArraysInstanced")
		assert.Equal(t, tt.want, names(got), tt.flags.String())
		assert.Contains(t, got, "DrawArraysInstanced 0 3 5")
		assert.Contains(t, got, "Clear 0x4000")
	}
}

func TestRunDepthState(t *testing.T) {
	r, f := newTestRunner(t, Options{Samples: 2})
	all := bench.DefaultScenarios(bench.DefaultConfig())
	colorOnly := all[3]
	require.Equal(t, bench.ScenarioColorOnly, colorOnly.ID)

	_, err := r.Run(colorOnly, new(testSurface))
	require.NoError(t, err)
	assert.False(t, f.Enabled(gl.DEPTH_TEST))
	got := f.Filter("Disable", "Clear", "BeginQuery", "EndQuery", "DrawArraysInstanced")
	want := []string{"Disable", "Clear", "BeginQuery", "DrawArraysInstanced", "EndQuery"}
	assert.Equal(t, want, names(got[:5]), "depth test goes off before the first sample")
	assert.Equal(t, "Disable 0xb71", got[0])

	// Depth scenarios turn the test back on.
	f.Reset()
	_, err = r.Run(all[0], new(testSurface))
	require.NoError(t, err)
	assert.True(t, f.Enabled(gl.DEPTH_TEST))
	assert.Equal(t, []string{"Enable 0xb71"}, f.Filter("Enable"))
}

func TestRunSamplesEveryQuery(t *testing.T) {
	r, f := newTestRunner(t, Options{Samples: 6})
	elapsed := make(map[uint]uint64)
	for i, tt := range r.timers.timers {
		elapsed[tt.obj.V] = uint64(100 * (i + 1))
	}
	f.Elapsed = func(q gl.Query) uint64 { return elapsed[q.V] }

	sc := bench.DefaultScenarios(bench.DefaultConfig())[0]
	var s testSurface
	res, err := r.Run(sc, &s)
	require.NoError(t, err)
	assert.Equal(t, 6, s.presents)
	assert.Equal(t, []time.Duration{100, 200, 300, 400, 500, 600}, res)
	assert.Len(t, f.Filter("BeginQuery"), 6)
	assert.Len(t, f.Filter("EndQuery"), 6)
	assert.Equal(t, []string{"ClearColor 0.3 0.3 0.3 1"}, f.Filter("ClearColor"))

	// Flush precedes the blocking readback.
	calls := names(f.Filter("Flush", "GetQueryObjectui64", "DrawArraysInstanced"))
	assert.Equal(t, "Flush", calls[6])

	// The pool is reused by the next scenario.
	f.Reset()
	_, err = r.Run(sc, &s)
	require.NoError(t, err)
	assert.Empty(t, f.Filter("CreateQuery"))
	assert.Len(t, f.Filter("BeginQuery"), 6)
}

func TestRunScissor(t *testing.T) {
	sr, err := bench.ScissorRect(image.Pt(800, 600))
	require.NoError(t, err)
	r, f := newTestRunner(t, Options{Samples: 1, Scissor: sr})
	sc := bench.Scenario{ID: "t", ClearMask: gl.COLOR_BUFFER_BIT, Draws: 1, Flags: bench.Draw}
	_, err = r.Run(sc, new(testSurface))
	require.NoError(t, err)
	want := []string{"Enable 0xb71", "Enable 0xc11", "Scissor 1 1 400 300", "Clear 0x4000", "Disable 0xc11"}
	assert.Equal(t, want, f.Filter("Enable", "Scissor", "Clear", "Disable"))
	assert.False(t, f.Enabled(gl.SCISSOR_TEST), "draws must not be scissored")
}

func TestRunDebugChecksErrors(t *testing.T) {
	r, f := newTestRunner(t, Options{Samples: 3, Debug: true})
	sc := bench.Scenario{ID: "reject", ClearMask: gl.COLOR_BUFFER_BIT, Draws: 1, Flags: bench.Draw}
	f.Errors = []gl.Enum{gl.NO_ERROR, gl.OUT_OF_MEMORY}
	var s testSurface
	_, err := r.Run(sc, &s)
	assert.EqualError(t, err, "reject: sample 1: draw: GL_OUT_OF_MEMORY")
	assert.Equal(t, 1, s.presents)

	// The pool is usable after an aborted run.
	res, err := r.Run(sc, &s)
	require.NoError(t, err)
	assert.Len(t, res, 3)
}

func TestRunPresentFailure(t *testing.T) {
	r, f := newTestRunner(t, Options{Samples: 5})
	sc := bench.Scenario{ID: "color", ClearMask: gl.COLOR_BUFFER_BIT, Draws: 1, Flags: bench.Draw}
	_, err := r.Run(sc, &testSurface{failAt: 3})
	assert.EqualError(t, err, "color: sample 2: window closed")
	assert.Empty(t, f.Filter("GetQueryObjectui64"), "aborted runs are not read back")
}

func TestMeasure(t *testing.T) {
	r, f := newTestRunner(t, Options{Samples: 10})
	f.Elapsed = func(gl.Query) uint64 { return 2000 }
	sc := bench.Scenario{ID: "reject", ClearMask: gl.COLOR_BUFFER_BIT, Draws: 4, Flags: bench.Draw}
	res, err := r.Measure(sc, new(testSurface), 2, 500)
	require.NoError(t, err)
	assert.Equal(t, 6, res.Measured)
	assert.Equal(t, time.Duration(12000), res.Total)
	assert.Equal(t, time.Duration(500), res.PerDraw)
	assert.Equal(t, time.Millisecond, res.PerMegapixel)

	_, err = r.Measure(sc, new(testSurface), 5, 500)
	assert.Error(t, err)
}

func TestRunRejectsEmptyDraws(t *testing.T) {
	r, _ := newTestRunner(t, Options{Samples: 1})
	_, err := r.Run(bench.Scenario{ID: "t"}, new(testSurface))
	assert.Error(t, err)
}
