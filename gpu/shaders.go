// SPDX-License-Identifier: Unlicense OR MIT

package gpu

// The vertex shader emits one triangle covering the whole viewport
// from gl_VertexID alone, so no vertex buffers are bound.
const vertexShader = `#version 150 core

void main() {
	switch (gl_VertexID) {
	case 0: gl_Position = vec4(-1.0, -3.0, 0.0, 1.0); break;
	case 1: gl_Position = vec4(3.0, 1.0, 0.0, 1.0); break;
	case 2: gl_Position = vec4(-1.0, 1.0, 0.0, 1.0); break;
	default: gl_Position = vec4(0.0, 0.0, 0.0, 1.0);
	}
}
`

const fragmentShader = `#version 150 core

out vec4 o_Color;

void main() {
	o_Color = vec4(1.0, 1.0, 1.0, 1.0);
}
`
