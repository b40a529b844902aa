// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"time"

	"github.com/pkg/errors"

	"gioui.org/fillrate/internal/gl"
)

// timers is a fixed pool of GL_TIME_ELAPSED queries, one per sample.
// The pool is reused by every scenario.
type timers struct {
	f      gl.Functions
	timers []*timer
}

type timer struct {
	Elapsed time.Duration
	f       gl.Functions
	obj     gl.Query
	state   timerState
}

type timerState uint8

const (
	timerIdle timerState = iota
	timerRunning
	timerWaiting
)

func newTimers(f gl.Functions, n int) *timers {
	t := &timers{
		f:      f,
		timers: make([]*timer, n),
	}
	for i := range t.timers {
		t.timers[i] = &timer{
			f:   f,
			obj: f.CreateQuery(),
		}
	}
	return t
}

func (t *timer) begin() {
	if t.state != timerIdle {
		return
	}
	t.f.BeginQuery(gl.TIME_ELAPSED, t.obj)
	t.state = timerRunning
}

func (t *timer) end() {
	if t.state != timerRunning {
		return
	}
	t.f.EndQuery(gl.TIME_ELAPSED)
	t.state = timerWaiting
}

// collect blocks until every query result is available and returns
// the elapsed times in pool order.
func (t *timers) collect() ([]time.Duration, error) {
	for i, tt := range t.timers {
		if tt.state != timerWaiting {
			return nil, errors.Errorf("timer %d was not ended", i)
		}
	}
	res := make([]time.Duration, len(t.timers))
	for i, tt := range t.timers {
		tt.state = timerIdle
		tt.Elapsed = time.Duration(t.f.GetQueryObjectui64(tt.obj, gl.QUERY_RESULT))
		res[i] = tt.Elapsed
	}
	return res, nil
}

// reset marks every timer idle, dropping pending results.
func (t *timers) reset() {
	for _, tt := range t.timers {
		tt.state = timerIdle
	}
}

func (t *timers) release() {
	for _, tt := range t.timers {
		t.f.DeleteQuery(tt.obj)
	}
	t.timers = nil
}
