// SPDX-License-Identifier: Unlicense OR MIT

package gl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gioui.org/fillrate/internal/gl"
	"gioui.org/fillrate/internal/gl/gltest"
)

func TestCreateProgram(t *testing.T) {
	f := gltest.New()
	prog, err := gl.CreateProgram(f, "vs", "fs")
	require.NoError(t, err)
	assert.True(t, prog.Valid())
	assert.Equal(t, 1, f.Live("program"))
	assert.Equal(t, 0, f.Live("shader"), "shaders must be released after linking")
	assert.Len(t, f.Filter("AttachShader"), 2)
}

func TestCreateProgramCompileFailure(t *testing.T) {
	f := gltest.New()
	f.FailCompile = gl.FRAGMENT_SHADER
	f.InfoLog = "0:3(2): error: syntax error\n"
	_, err := gl.CreateProgram(f, "vs", "fs")
	require.Error(t, err)
	assert.Equal(t, "fragment shader compilation failed: 0:3(2): error: syntax error", err.Error())
	assert.Equal(t, 0, f.Live("shader"))
	assert.Equal(t, 0, f.Live("program"))
}

func TestCreateProgramLinkFailure(t *testing.T) {
	f := gltest.New()
	f.FailLink = true
	f.InfoLog = "missing main"
	_, err := gl.CreateProgram(f, "vs", "fs")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "program link failed: missing main")
	assert.Equal(t, 0, f.Live("program"))
	assert.Equal(t, 0, f.Live("shader"))
}

func TestCheckError(t *testing.T) {
	f := gltest.New()
	assert.NoError(t, gl.CheckError(f, "setup"))
	f.Errors = []gl.Enum{gl.INVALID_OPERATION}
	err := gl.CheckError(f, "setup")
	require.Error(t, err)
	assert.Equal(t, "setup: GL_INVALID_OPERATION", err.Error())
	assert.Equal(t, "GL error 0x1234", gl.ErrorString(0x1234))
}

func TestParseGLVersion(t *testing.T) {
	tests := []struct {
		in   string
		want [2]int
	}{
		{"4.6.0 NVIDIA 535.54.03", [2]int{4, 6}},
		{"3.3 (Core Profile) Mesa 23.1.4", [2]int{3, 3}},
		{"OpenGL ES 3.2 Mesa 22.0", [2]int{3, 2}},
		{"WebGL 2.0", [2]int{3, 0}},
	}
	for _, tt := range tests {
		got, err := gl.ParseGLVersion(tt.in)
		if assert.NoError(t, err, tt.in) {
			assert.Equal(t, tt.want, got, tt.in)
		}
	}
	_, err := gl.ParseGLVersion("garbage")
	assert.Error(t, err)
}
