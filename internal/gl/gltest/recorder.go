// SPDX-License-Identifier: Unlicense OR MIT

// Package gltest provides a recording implementation of gl.Functions
// for exercising GL call sequences without a context.
package gltest

import (
	"fmt"
	"strings"

	"gioui.org/fillrate/internal/gl"
)

// Recorder implements gl.Functions by logging every call.
type Recorder struct {
	// Calls lists the issued calls, one "Name arg..." string per call.
	Calls []string

	// Strings answers GetString.
	Strings map[gl.Enum]string
	// Elapsed answers GetQueryObjectui64(q, QUERY_RESULT). A nil
	// Elapsed reports the query name as the elapsed nanoseconds.
	Elapsed func(q gl.Query) uint64
	// Errors is drained one code per GetError call.
	Errors []gl.Enum

	FailCompile gl.Enum
	FailLink    bool
	InfoLog     string

	next    uint
	live    map[string]int
	types   map[uint]gl.Enum
	enabled map[gl.Enum]bool
}

func New() *Recorder {
	return &Recorder{
		live:    make(map[string]int),
		types:   make(map[uint]gl.Enum),
		enabled: make(map[gl.Enum]bool),
	}
}

func (r *Recorder) record(name string, args ...interface{}) {
	call := name
	if len(args) > 0 {
		call += " " + strings.TrimSuffix(fmt.Sprintln(args...), "\n")
	}
	r.Calls = append(r.Calls, call)
}

func (r *Recorder) alloc(kind string) uint {
	r.next++
	r.live[kind]++
	return r.next
}

func (r *Recorder) free(kind string) {
	r.live[kind]--
}

// Live returns the number of objects of kind ("program", "shader",
// "query", "vertexarray") created and not yet deleted.
func (r *Recorder) Live(kind string) int {
	return r.live[kind]
}

// Enabled reports whether cap is currently enabled.
func (r *Recorder) Enabled(cap gl.Enum) bool {
	return r.enabled[cap]
}

// Filter returns the recorded calls whose name is one of names.
func (r *Recorder) Filter(names ...string) []string {
	var out []string
	for _, c := range r.Calls {
		name := c
		if i := strings.IndexByte(c, ' '); i >= 0 {
			name = c[:i]
		}
		for _, n := range names {
			if n == name {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// Reset forgets the recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

func (r *Recorder) AttachShader(p gl.Program, s gl.Shader) {
	r.record("AttachShader", p.V, s.V)
}

func (r *Recorder) BeginQuery(target gl.Enum, q gl.Query) {
	r.record("BeginQuery", q.V)
}

func (r *Recorder) BindVertexArray(a gl.VertexArray) {
	r.record("BindVertexArray", a.V)
}

func (r *Recorder) Clear(mask gl.Enum) {
	r.record("Clear", fmt.Sprintf("0x%x", uint(mask)))
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.record("ClearColor", red, green, blue, alpha)
}

func (r *Recorder) ClearDepthf(d float32) {
	r.record("ClearDepthf", d)
}

func (r *Recorder) CompileShader(s gl.Shader) {
	r.record("CompileShader", s.V)
}

func (r *Recorder) CreateProgram() gl.Program {
	p := gl.Program{V: r.alloc("program")}
	r.record("CreateProgram")
	return p
}

func (r *Recorder) CreateQuery() gl.Query {
	q := gl.Query{V: r.alloc("query")}
	r.record("CreateQuery")
	return q
}

func (r *Recorder) CreateShader(ty gl.Enum) gl.Shader {
	s := gl.Shader{V: r.alloc("shader")}
	r.record("CreateShader", fmt.Sprintf("0x%x", uint(ty)))
	r.types[s.V] = ty
	return s
}

func (r *Recorder) CreateVertexArray() gl.VertexArray {
	a := gl.VertexArray{V: r.alloc("vertexarray")}
	r.record("CreateVertexArray")
	return a
}

func (r *Recorder) DeleteProgram(p gl.Program) {
	r.free("program")
	r.record("DeleteProgram", p.V)
}

func (r *Recorder) DeleteQuery(q gl.Query) {
	r.free("query")
	r.record("DeleteQuery", q.V)
}

func (r *Recorder) DeleteShader(s gl.Shader) {
	r.free("shader")
	r.record("DeleteShader", s.V)
}

func (r *Recorder) DeleteVertexArray(a gl.VertexArray) {
	r.free("vertexarray")
	r.record("DeleteVertexArray", a.V)
}

func (r *Recorder) DepthFunc(f gl.Enum) {
	r.record("DepthFunc", fmt.Sprintf("0x%x", uint(f)))
}

func (r *Recorder) DepthMask(mask bool) {
	r.record("DepthMask", mask)
}

func (r *Recorder) Disable(cap gl.Enum) {
	r.enabled[cap] = false
	r.record("Disable", fmt.Sprintf("0x%x", uint(cap)))
}

func (r *Recorder) DrawArraysInstanced(mode gl.Enum, first, count, instances int) {
	r.record("DrawArraysInstanced", first, count, instances)
}

func (r *Recorder) Enable(cap gl.Enum) {
	r.enabled[cap] = true
	r.record("Enable", fmt.Sprintf("0x%x", uint(cap)))
}

func (r *Recorder) EndQuery(target gl.Enum) {
	r.record("EndQuery")
}

func (r *Recorder) Flush() {
	r.record("Flush")
}

func (r *Recorder) GetError() gl.Enum {
	if len(r.Errors) == 0 {
		return gl.NO_ERROR
	}
	e := r.Errors[0]
	r.Errors = r.Errors[1:]
	return e
}

func (r *Recorder) GetProgrami(p gl.Program, pname gl.Enum) int {
	if pname == gl.LINK_STATUS && r.FailLink {
		return gl.FALSE
	}
	return gl.TRUE
}

func (r *Recorder) GetProgramInfoLog(p gl.Program) string {
	return r.InfoLog
}

func (r *Recorder) GetQueryObjectui64(q gl.Query, pname gl.Enum) uint64 {
	r.record("GetQueryObjectui64", q.V)
	if pname == gl.QUERY_RESULT_AVAILABLE {
		return gl.TRUE
	}
	if r.Elapsed != nil {
		return r.Elapsed(q)
	}
	return uint64(q.V)
}

func (r *Recorder) GetShaderi(s gl.Shader, pname gl.Enum) int {
	if pname == gl.COMPILE_STATUS && r.FailCompile != 0 && r.types[s.V] == r.FailCompile {
		return gl.FALSE
	}
	return gl.TRUE
}

func (r *Recorder) GetShaderInfoLog(s gl.Shader) string {
	return r.InfoLog
}

func (r *Recorder) GetString(pname gl.Enum) string {
	return r.Strings[pname]
}

func (r *Recorder) LinkProgram(p gl.Program) {
	r.record("LinkProgram", p.V)
}

func (r *Recorder) Scissor(x, y, width, height int) {
	r.record("Scissor", x, y, width, height)
}

func (r *Recorder) ShaderSource(s gl.Shader, src string) {
	r.record("ShaderSource", s.V)
}

func (r *Recorder) UseProgram(p gl.Program) {
	r.record("UseProgram", p.V)
}
