package gfx

import "fmt"

// ShaderRegistry caches named shaders so that programs built from the same
// source asset share one compiled object.
//
// The registry does not own its shaders. An entry is a plain reference whose
// liveness is checked with Shader.Alive at lookup time; entries whose shader
// has been torn down are dropped lazily by Get.
//
// The registry is not safe for concurrent use. Keep it on the graphics thread.
type ShaderRegistry struct {
	entries map[string]*Shader
}

// NewShaderRegistry creates an empty registry.
func NewShaderRegistry() *ShaderRegistry {
	return &ShaderRegistry{entries: make(map[string]*Shader)}
}

// Add registers shader under name. Registering a name twice is a programming
// error and panics.
func (r *ShaderRegistry) Add(name string, shader *Shader) {
	if _, ok := r.entries[name]; ok {
		panic(fmt.Sprintf("gfx: shader %s already present in shader list", name))
	}
	r.entries[name] = shader
}

// Get returns the live shader registered under name.
// A dead entry is removed and reported as absent.
func (r *ShaderRegistry) Get(name string) (*Shader, bool) {
	shader, ok := r.entries[name]
	if !ok {
		return nil, false
	}
	if !shader.Alive() {
		delete(r.entries, name)
		return nil, false
	}
	return shader, true
}

// Remove drops the entry for name. Removing an unknown name is a no-op.
func (r *ShaderRegistry) Remove(name string) {
	delete(r.entries, name)
}

// Len returns the number of entries, including dead ones not yet purged.
func (r *ShaderRegistry) Len() int {
	return len(r.entries)
}
