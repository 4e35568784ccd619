// Package opengl provides the OpenGL implementation of gfx.Driver and the
// GLFW window setup that gives it a context.
package opengl

import (
	"strings"

	"github.com/go-gl/gl/v2.1/gl"

	"github.com/go-theft-auto/gfx"
)

// Driver implements gfx.Driver using OpenGL.
// gl.Init must have succeeded on the calling thread before use.
type Driver struct{}

// NewDriver returns an OpenGL driver.
func NewDriver() *Driver {
	return &Driver{}
}

var _ gfx.Driver = (*Driver)(nil)

func shaderType(kind gfx.ShaderKind) uint32 {
	if kind == gfx.FragmentShader {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

func attribType(typ gfx.AttribType) uint32 {
	if typ == gfx.AttribUnsignedByte {
		return gl.UNSIGNED_BYTE
	}
	return gl.FLOAT
}

func (d *Driver) CreateShader(kind gfx.ShaderKind) uint32 {
	return gl.CreateShader(shaderType(kind))
}

func (d *Driver) ShaderSource(shader uint32, source string) {
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
}

func (d *Driver) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (d *Driver) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (d *Driver) ShaderStatus(shader uint32) (bool, string) {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)

	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	var info string
	if logLength > 1 {
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		info = trimLog(log)
	}

	return status == gl.TRUE, info
}

func (d *Driver) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (d *Driver) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (d *Driver) DetachShader(program, shader uint32) {
	gl.DetachShader(program, shader)
}

func (d *Driver) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (d *Driver) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (d *Driver) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (d *Driver) ProgramStatus(program uint32) (bool, string) {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)

	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	var info string
	if logLength > 1 {
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		info = trimLog(log)
	}

	return status == gl.TRUE, info
}

func (d *Driver) GetAttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (d *Driver) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (d *Driver) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (d *Driver) VertexAttribPointer(index uint32, size int32, typ gfx.AttribType, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, attribType(typ), normalized, stride, offset)
}

func (d *Driver) Uniform1f(location int32, v0 float32) { gl.Uniform1f(location, v0) }

func (d *Driver) Uniform2f(location int32, v0, v1 float32) { gl.Uniform2f(location, v0, v1) }

func (d *Driver) Uniform3f(location int32, v0, v1, v2 float32) { gl.Uniform3f(location, v0, v1, v2) }

func (d *Driver) Uniform1i(location int32, v0 int32) { gl.Uniform1i(location, v0) }

func (d *Driver) Uniform2i(location int32, v0, v1 int32) { gl.Uniform2i(location, v0, v1) }

func (d *Driver) Uniform3i(location int32, v0, v1, v2 int32) { gl.Uniform3i(location, v0, v1, v2) }

// The vector uploads skip the driver call for empty input: there is no first
// element to take the address of.

func (d *Driver) Uniform1fv(location int32, count int32, values []float32) {
	if len(values) > 0 {
		gl.Uniform1fv(location, count, &values[0])
	}
}

func (d *Driver) Uniform2fv(location int32, count int32, values []float32) {
	if len(values) > 0 {
		gl.Uniform2fv(location, count, &values[0])
	}
}

func (d *Driver) Uniform3fv(location int32, count int32, values []float32) {
	if len(values) > 0 {
		gl.Uniform3fv(location, count, &values[0])
	}
}

func (d *Driver) Uniform1iv(location int32, count int32, values []int32) {
	if len(values) > 0 {
		gl.Uniform1iv(location, count, &values[0])
	}
}

func (d *Driver) Uniform2iv(location int32, count int32, values []int32) {
	if len(values) > 0 {
		gl.Uniform2iv(location, count, &values[0])
	}
}

func (d *Driver) Uniform3iv(location int32, count int32, values []int32) {
	if len(values) > 0 {
		gl.Uniform3iv(location, count, &values[0])
	}
}

func (d *Driver) UniformMatrix3fv(location int32, count int32, transpose bool, values []float32) {
	if len(values) > 0 {
		gl.UniformMatrix3fv(location, count, transpose, &values[0])
	}
}

func (d *Driver) UniformMatrix4fv(location int32, count int32, transpose bool, values []float32) {
	if len(values) > 0 {
		gl.UniformMatrix4fv(location, count, transpose, &values[0])
	}
}

// trimLog converts a NUL-terminated info log to a string.
func trimLog(log []byte) string {
	return strings.TrimRight(string(log), "\x00\n ")
}
