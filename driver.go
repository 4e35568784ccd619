package gfx

// ShaderKind selects the pipeline stage a Shader is compiled for.
type ShaderKind uint8

const (
	VertexShader ShaderKind = iota
	FragmentShader
)

func (k ShaderKind) String() string {
	switch k {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	default:
		return "unknown"
	}
}

// AttribType is the component type of a vertex attribute.
type AttribType uint8

const (
	AttribFloat AttribType = iota
	AttribUnsignedByte
)

// Driver is the GPU context the shader machinery talks to.
// Every method must be called on the goroutine that owns the context.
//
// The method set mirrors the OpenGL entry points used by shaders and programs;
// see backend/opengl for the real implementation.
type Driver interface {
	CreateShader(kind ShaderKind) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	DeleteShader(shader uint32)
	// ShaderStatus reports GL_COMPILE_STATUS and the shader info log.
	ShaderStatus(shader uint32) (ok bool, info string)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	DeleteProgram(program uint32)
	UseProgram(program uint32)
	// ProgramStatus reports GL_LINK_STATUS and the program info log.
	ProgramStatus(program uint32) (ok bool, info string)

	GetAttribLocation(program uint32, name string) int32
	GetUniformLocation(program uint32, name string) int32
	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, typ AttribType, normalized bool, stride int32, offset uintptr)

	Uniform1f(location int32, v0 float32)
	Uniform2f(location int32, v0, v1 float32)
	Uniform3f(location int32, v0, v1, v2 float32)
	Uniform1i(location int32, v0 int32)
	Uniform2i(location int32, v0, v1 int32)
	Uniform3i(location int32, v0, v1, v2 int32)

	Uniform1fv(location int32, count int32, values []float32)
	Uniform2fv(location int32, count int32, values []float32)
	Uniform3fv(location int32, count int32, values []float32)
	Uniform1iv(location int32, count int32, values []int32)
	Uniform2iv(location int32, count int32, values []int32)
	Uniform3iv(location int32, count int32, values []int32)

	UniformMatrix3fv(location int32, count int32, transpose bool, values []float32)
	UniformMatrix4fv(location int32, count int32, transpose bool, values []float32)
}
