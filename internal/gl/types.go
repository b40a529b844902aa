// SPDX-License-Identifier: Unlicense OR MIT

package gl

type (
	Program     struct{ V uint }
	Shader      struct{ V uint }
	Query       struct{ V uint }
	VertexArray struct{ V uint }
)

func (p Program) Valid() bool {
	return p.V != 0
}

func (s Shader) Valid() bool {
	return s.V != 0
}

func (q Query) Valid() bool {
	return q.V != 0
}

func (a VertexArray) Valid() bool {
	return a.V != 0
}
