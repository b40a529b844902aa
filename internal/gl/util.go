// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// CreateProgram compiles and links a vertex and fragment shader pair.
// The shader objects are released once the program is linked.
func CreateProgram(f Functions, vsSrc, fsSrc string) (Program, error) {
	vs, err := createShader(f, VERTEX_SHADER, vsSrc)
	if err != nil {
		return Program{}, err
	}
	defer f.DeleteShader(vs)
	fs, err := createShader(f, FRAGMENT_SHADER, fsSrc)
	if err != nil {
		return Program{}, err
	}
	defer f.DeleteShader(fs)
	prog := f.CreateProgram()
	if !prog.Valid() {
		return Program{}, errors.New("glCreateProgram failed")
	}
	f.AttachShader(prog, vs)
	f.AttachShader(prog, fs)
	f.LinkProgram(prog)
	if f.GetProgrami(prog, LINK_STATUS) == 0 {
		log := f.GetProgramInfoLog(prog)
		f.DeleteProgram(prog)
		return Program{}, errors.Errorf("program link failed: %s", strings.TrimSpace(log))
	}
	return prog, nil
}

func createShader(f Functions, typ Enum, src string) (Shader, error) {
	sh := f.CreateShader(typ)
	if !sh.Valid() {
		return Shader{}, errors.New("glCreateShader failed")
	}
	f.ShaderSource(sh, src)
	f.CompileShader(sh)
	if f.GetShaderi(sh, COMPILE_STATUS) == 0 {
		log := f.GetShaderInfoLog(sh)
		f.DeleteShader(sh)
		return Shader{}, errors.Errorf("%s compilation failed: %s", shaderKind(typ), strings.TrimSpace(log))
	}
	return sh, nil
}

func shaderKind(typ Enum) string {
	switch typ {
	case VERTEX_SHADER:
		return "vertex shader"
	case FRAGMENT_SHADER:
		return "fragment shader"
	default:
		return "shader"
	}
}

// CheckError reports a pending GL error, if any, as an error
// mentioning op.
func CheckError(f Functions, op string) error {
	if e := f.GetError(); e != NO_ERROR {
		return errors.Errorf("%s: %s", op, ErrorString(e))
	}
	return nil
}

// ErrorString names a glGetError code.
func ErrorString(e Enum) string {
	switch e {
	case NO_ERROR:
		return "GL_NO_ERROR"
	case INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case INVALID_FRAMEBUFFER_OP:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	default:
		return fmt.Sprintf("GL error 0x%x", uint(e))
	}
}

func ParseGLVersion(glVer string) ([2]int, error) {
	var ver [2]int
	if _, err := fmt.Sscanf(glVer, "OpenGL ES %d.%d", &ver[0], &ver[1]); err == nil {
		return ver, nil
	} else if _, err := fmt.Sscanf(glVer, "WebGL %d.%d", &ver[0], &ver[1]); err == nil {
		// WebGL major version v corresponds to OpenGL ES version v + 1
		ver[0]++
		return ver, nil
	} else if _, err := fmt.Sscanf(glVer, "%d.%d", &ver[0], &ver[1]); err == nil {
		return ver, nil
	}
	return ver, errors.Errorf("failed to parse OpenGL version (%s)", glVer)
}
