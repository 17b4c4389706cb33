package shader

import (
	"syscall/js"

	webgl "github.com/seqsense/webgl-go"
)

// WebGL adapts a webgl-go context to Context.
type WebGL struct {
	*webgl.WebGL
}

var _ Context[webgl.Shader, webgl.Program] = WebGL{}

func (gl WebGL) CreateShader(t ShaderType) webgl.Shader {
	switch t {
	case Fragment:
		return gl.WebGL.CreateShader(gl.FRAGMENT_SHADER)
	default:
		return gl.WebGL.CreateShader(gl.VERTEX_SHADER)
	}
}

func (gl WebGL) CompileStatus(s webgl.Shader) bool {
	return gl.GetShaderParameter(s, gl.COMPILE_STATUS).(bool)
}

func (gl WebGL) ShaderInfoLog(s webgl.Shader) string {
	return gl.JS().Call("getShaderInfoLog", js.Value(s)).String()
}

func (gl WebGL) DeleteShader(s webgl.Shader) {
	gl.JS().Call("deleteShader", js.Value(s))
}

func (gl WebGL) LinkStatus(p webgl.Program) bool {
	return gl.GetProgramParameter(p, gl.LINK_STATUS).(bool)
}

func (gl WebGL) ProgramInfoLog(p webgl.Program) string {
	return gl.GetProgramInfoLog(p)
}

func (gl WebGL) DeleteProgram(p webgl.Program) {
	gl.JS().Call("deleteProgram", js.Value(p))
}
