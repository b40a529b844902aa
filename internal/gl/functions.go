// SPDX-License-Identifier: Unlicense OR MIT

package gl

// Functions is the set of OpenGL entry points issued by the
// fill-rate measurement. The app package implements it on top of a
// live context.
type Functions interface {
	AttachShader(p Program, s Shader)
	BeginQuery(target Enum, query Query)
	BindVertexArray(a VertexArray)
	Clear(mask Enum)
	ClearColor(red, green, blue, alpha float32)
	ClearDepthf(d float32)
	CompileShader(s Shader)
	CreateProgram() Program
	CreateQuery() Query
	CreateShader(ty Enum) Shader
	CreateVertexArray() VertexArray
	DeleteProgram(p Program)
	DeleteQuery(query Query)
	DeleteShader(s Shader)
	DeleteVertexArray(a VertexArray)
	DepthFunc(f Enum)
	DepthMask(mask bool)
	Disable(cap Enum)
	DrawArraysInstanced(mode Enum, first, count, instances int)
	Enable(cap Enum)
	EndQuery(target Enum)
	Flush()
	GetError() Enum
	GetProgrami(p Program, pname Enum) int
	GetProgramInfoLog(p Program) string
	GetQueryObjectui64(query Query, pname Enum) uint64
	GetShaderi(s Shader, pname Enum) int
	GetShaderInfoLog(s Shader) string
	GetString(pname Enum) string
	LinkProgram(p Program)
	Scissor(x, y, width, height int)
	ShaderSource(s Shader, src string)
	UseProgram(p Program)
}
