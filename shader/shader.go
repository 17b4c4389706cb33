// Package shader compiles GLSL sources and links them into WebGL programs.
package shader

import (
	"errors"
	"fmt"
	"log/slog"
)

var ErrContextLost = errors.New("WebGL context lost")

type ShaderType int

const (
	Vertex ShaderType = iota
	Fragment
)

func (t ShaderType) String() string {
	switch t {
	case Vertex:
		return "VERTEX_SHADER"
	case Fragment:
		return "FRAGMENT_SHADER"
	default:
		return fmt.Sprintf("ShaderType(%d)", int(t))
	}
}

// Context is the part of a WebGL2 rendering context needed to build programs.
// S and P are the context's shader and program object types.
type Context[S, P any] interface {
	CreateShader(t ShaderType) S
	ShaderSource(s S, src string)
	CompileShader(s S)
	CompileStatus(s S) bool
	ShaderInfoLog(s S) string
	DeleteShader(s S)

	CreateProgram() P
	AttachShader(p P, s S)
	LinkProgram(p P)
	LinkStatus(p P) bool
	ProgramInfoLog(p P) string
	DeleteProgram(p P)

	IsContextLost() bool
}

// CompileShader creates and compiles a shader of the given stage.
// On failure the shader is deleted and the zero value is returned with
// an error containing the info log.
func CompileShader[S, P any](gl Context[S, P], t ShaderType, src string) (S, error) {
	var null S
	s := gl.CreateShader(t)
	gl.ShaderSource(s, src)
	gl.CompileShader(s)
	if gl.CompileStatus(s) {
		return s, nil
	}
	if gl.IsContextLost() {
		return null, ErrContextLost
	}
	info := gl.ShaderInfoLog(s)
	Logger().Error("compile failed", slog.String("stage", t.String()), slog.String("log", info))
	gl.DeleteShader(s)
	return null, fmt.Errorf("compile failed (%s): %s", t, info)
}

// LinkProgram links vs and fs into a new program.
// The shaders are attached as given; zero handles are passed through to
// the context unchecked.
func LinkProgram[S, P any](gl Context[S, P], vs, fs S) (P, error) {
	var null P
	p := gl.CreateProgram()
	gl.AttachShader(p, vs)
	gl.AttachShader(p, fs)
	gl.LinkProgram(p)
	if gl.LinkStatus(p) {
		return p, nil
	}
	if gl.IsContextLost() {
		return null, ErrContextLost
	}
	info := gl.ProgramInfoLog(p)
	Logger().Error("link failed", slog.String("log", info))
	gl.DeleteProgram(p)
	return null, errors.New("link failed: " + info)
}

// NewProgram compiles vsSrc and fsSrc and links them.
func NewProgram[S, P any](gl Context[S, P], vsSrc, fsSrc string) (P, error) {
	var null P
	vs, err := CompileShader(gl, Vertex, vsSrc)
	if err != nil {
		return null, err
	}
	fs, err := CompileShader(gl, Fragment, fsSrc)
	if err != nil {
		return null, err
	}
	return LinkProgram(gl, vs, fs)
}
