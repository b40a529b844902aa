// SPDX-License-Identifier: Unlicense OR MIT

//go:build cgo && !js && !android && !ios

package app

import (
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	fillgl "gioui.org/fillrate/internal/gl"
)

// glFunctions implements gl.Functions with go-gl. It must only be used
// while the window context is current.
type glFunctions struct{}

func (f *glFunctions) AttachShader(p fillgl.Program, s fillgl.Shader) {
	gl.AttachShader(uint32(p.V), uint32(s.V))
}

func (f *glFunctions) BeginQuery(target fillgl.Enum, query fillgl.Query) {
	gl.BeginQuery(uint32(target), uint32(query.V))
}

func (f *glFunctions) BindVertexArray(a fillgl.VertexArray) {
	gl.BindVertexArray(uint32(a.V))
}

func (f *glFunctions) Clear(mask fillgl.Enum) {
	gl.Clear(uint32(mask))
}

func (f *glFunctions) ClearColor(red, green, blue, alpha float32) {
	gl.ClearColor(red, green, blue, alpha)
}

func (f *glFunctions) ClearDepthf(d float32) {
	gl.ClearDepth(float64(d))
}

func (f *glFunctions) CompileShader(s fillgl.Shader) {
	gl.CompileShader(uint32(s.V))
}

func (f *glFunctions) CreateProgram() fillgl.Program {
	return fillgl.Program{V: uint(gl.CreateProgram())}
}

func (f *glFunctions) CreateQuery() fillgl.Query {
	var q uint32
	gl.GenQueries(1, &q)
	return fillgl.Query{V: uint(q)}
}

func (f *glFunctions) CreateShader(ty fillgl.Enum) fillgl.Shader {
	return fillgl.Shader{V: uint(gl.CreateShader(uint32(ty)))}
}

func (f *glFunctions) CreateVertexArray() fillgl.VertexArray {
	var a uint32
	gl.GenVertexArrays(1, &a)
	return fillgl.VertexArray{V: uint(a)}
}

func (f *glFunctions) DeleteProgram(p fillgl.Program) {
	gl.DeleteProgram(uint32(p.V))
}

func (f *glFunctions) DeleteQuery(query fillgl.Query) {
	q := uint32(query.V)
	gl.DeleteQueries(1, &q)
}

func (f *glFunctions) DeleteShader(s fillgl.Shader) {
	gl.DeleteShader(uint32(s.V))
}

func (f *glFunctions) DeleteVertexArray(a fillgl.VertexArray) {
	v := uint32(a.V)
	gl.DeleteVertexArrays(1, &v)
}

func (f *glFunctions) DepthFunc(d fillgl.Enum) {
	gl.DepthFunc(uint32(d))
}

func (f *glFunctions) DepthMask(mask bool) {
	gl.DepthMask(mask)
}

func (f *glFunctions) Disable(cap fillgl.Enum) {
	gl.Disable(uint32(cap))
}

func (f *glFunctions) DrawArraysInstanced(mode fillgl.Enum, first, count, instances int) {
	gl.DrawArraysInstanced(uint32(mode), int32(first), int32(count), int32(instances))
}

func (f *glFunctions) Enable(cap fillgl.Enum) {
	gl.Enable(uint32(cap))
}

func (f *glFunctions) EndQuery(target fillgl.Enum) {
	gl.EndQuery(uint32(target))
}

func (f *glFunctions) Flush() {
	gl.Flush()
}

func (f *glFunctions) GetError() fillgl.Enum {
	return fillgl.Enum(gl.GetError())
}

func (f *glFunctions) GetProgrami(p fillgl.Program, pname fillgl.Enum) int {
	var i int32
	gl.GetProgramiv(uint32(p.V), uint32(pname), &i)
	return int(i)
}

func (f *glFunctions) GetProgramInfoLog(p fillgl.Program) string {
	var logLength int32
	gl.GetProgramiv(uint32(p.V), gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(uint32(p.V), logLength, nil, gl.Str(log))
	return log[:logLength]
}

// GetQueryObjectui64 reads 64-bit results; 32-bit ones wrap after
// about 4.3 seconds of GPU time.
func (f *glFunctions) GetQueryObjectui64(query fillgl.Query, pname fillgl.Enum) uint64 {
	var v uint64
	gl.GetQueryObjectui64v(uint32(query.V), uint32(pname), &v)
	return v
}

func (f *glFunctions) GetShaderi(s fillgl.Shader, pname fillgl.Enum) int {
	var i int32
	gl.GetShaderiv(uint32(s.V), uint32(pname), &i)
	return int(i)
}

func (f *glFunctions) GetShaderInfoLog(s fillgl.Shader) string {
	var logLength int32
	gl.GetShaderiv(uint32(s.V), gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(uint32(s.V), logLength, nil, gl.Str(log))
	return log[:logLength]
}

func (f *glFunctions) GetString(pname fillgl.Enum) string {
	switch {
	case pname == fillgl.EXTENSIONS:
		// OpenGL 3 core profile doesn't support glGetString(GL_EXTENSIONS).
		// Use glGetStringi(GL_EXTENSIONS, <index>).
		var exts []string
		var n int32
		gl.GetIntegerv(gl.NUM_EXTENSIONS, &n)
		for i := 0; i < int(n); i++ {
			ext := gl.GetStringi(gl.EXTENSIONS, uint32(i))
			exts = append(exts, gl.GoStr(ext))
		}
		return strings.Join(exts, " ")
	default:
		return gl.GoStr(gl.GetString(uint32(pname)))
	}
}

func (f *glFunctions) LinkProgram(p fillgl.Program) {
	gl.LinkProgram(uint32(p.V))
}

func (f *glFunctions) Scissor(x, y, width, height int) {
	gl.Scissor(int32(x), int32(y), int32(width), int32(height))
}

func (f *glFunctions) ShaderSource(s fillgl.Shader, src string) {
	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(uint32(s.V), 1, csources, nil)
	free()
}

func (f *glFunctions) UseProgram(p fillgl.Program) {
	gl.UseProgram(uint32(p.V))
}

var _ fillgl.Functions = (*glFunctions)(nil)
