package gfx

import "fmt"

// Uniform setters only make sense for the active program, so every setter
// panics unless p is the program most recently bound. Vector setters also
// panic when the value count is not a whole number of vectors.

func (p *ShaderProgram) mustBeBound() {
	if p.g.bound != p {
		panic("gfx: setting a uniform for a shader program that is not currently bound")
	}
}

// vectorCount returns n/components, panicking if n is not a multiple.
func vectorCount(n, components int) int32 {
	if n%components != 0 {
		panic(fmt.Sprintf("gfx: values size %d must be a multiple of %d", n, components))
	}
	return int32(n / components)
}

func (p *ShaderProgram) SetUniform1f(location int32, v0 float32) {
	p.mustBeBound()
	p.g.driver.Uniform1f(location, v0)
}

func (p *ShaderProgram) SetUniform2f(location int32, v0, v1 float32) {
	p.mustBeBound()
	p.g.driver.Uniform2f(location, v0, v1)
}

func (p *ShaderProgram) SetUniform3f(location int32, v0, v1, v2 float32) {
	p.mustBeBound()
	p.g.driver.Uniform3f(location, v0, v1, v2)
}

func (p *ShaderProgram) SetUniform1i(location int32, v0 int32) {
	p.mustBeBound()
	p.g.driver.Uniform1i(location, v0)
}

func (p *ShaderProgram) SetUniform2i(location int32, v0, v1 int32) {
	p.mustBeBound()
	p.g.driver.Uniform2i(location, v0, v1)
}

func (p *ShaderProgram) SetUniform3i(location int32, v0, v1, v2 int32) {
	p.mustBeBound()
	p.g.driver.Uniform3i(location, v0, v1, v2)
}

// SetUniform1fv uploads a float array.
func (p *ShaderProgram) SetUniform1fv(location int32, values []float32) {
	p.mustBeBound()
	p.g.driver.Uniform1fv(location, vectorCount(len(values), 1), values)
}

// SetUniform2fv uploads an array of vec2. len(values) must be even.
func (p *ShaderProgram) SetUniform2fv(location int32, values []float32) {
	p.mustBeBound()
	p.g.driver.Uniform2fv(location, vectorCount(len(values), 2), values)
}

// SetUniform3fv uploads an array of vec3. len(values) must be a multiple of 3.
func (p *ShaderProgram) SetUniform3fv(location int32, values []float32) {
	p.mustBeBound()
	p.g.driver.Uniform3fv(location, vectorCount(len(values), 3), values)
}

func (p *ShaderProgram) SetUniform1iv(location int32, values []int32) {
	p.mustBeBound()
	p.g.driver.Uniform1iv(location, vectorCount(len(values), 1), values)
}

func (p *ShaderProgram) SetUniform2iv(location int32, values []int32) {
	p.mustBeBound()
	p.g.driver.Uniform2iv(location, vectorCount(len(values), 2), values)
}

func (p *ShaderProgram) SetUniform3iv(location int32, values []int32) {
	p.mustBeBound()
	p.g.driver.Uniform3iv(location, vectorCount(len(values), 3), values)
}

// SetUniformMatrix3f uploads a single matrix as a mat3.
func (p *ShaderProgram) SetUniformMatrix3f(location int32, transpose bool, m Matrix) {
	p.SetUniformMatrix3fv(location, transpose, []Matrix{m})
}

// SetUniformMatrix3fv uploads an array of mat3, 9 floats per matrix.
func (p *ShaderProgram) SetUniformMatrix3fv(location int32, transpose bool, matrices []Matrix) {
	p.mustBeBound()

	values := make([]float32, 9*len(matrices))
	for i, m := range matrices {
		m.CopyToMatrix3f(values[i*9:])
	}
	p.g.driver.UniformMatrix3fv(location, int32(len(matrices)), transpose, values)
}

// SetUniformMatrix4f uploads a single matrix as a mat4.
func (p *ShaderProgram) SetUniformMatrix4f(location int32, transpose bool, m Matrix) {
	p.SetUniformMatrix4fv(location, transpose, []Matrix{m})
}

// SetUniformMatrix4fv uploads an array of mat4, 16 floats per matrix.
func (p *ShaderProgram) SetUniformMatrix4fv(location int32, transpose bool, matrices []Matrix) {
	p.mustBeBound()

	values := make([]float32, 16*len(matrices))
	for i, m := range matrices {
		m.CopyToMatrix4f(values[i*16:])
	}
	p.g.driver.UniformMatrix4fv(location, int32(len(matrices)), transpose, values)
}
