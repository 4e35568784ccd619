package gfx

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest lists the named programs an application builds from shader assets.
//
//	programs:
//	  - name: sprite
//	    vertex: shaders/sprite.vert
//	    fragment: shaders/sprite.frag
type Manifest struct {
	Programs []ProgramSpec `yaml:"programs"`
}

// ProgramSpec names one program and the assets of its two shaders.
type ProgramSpec struct {
	Name     string `yaml:"name"`
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

// LoadManifest reads and validates a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ParseManifest decodes and validates manifest YAML.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	seen := make(map[string]bool, len(m.Programs))
	for i, p := range m.Programs {
		switch {
		case p.Name == "":
			return fmt.Errorf("program %d: missing name", i)
		case p.Vertex == "":
			return fmt.Errorf("program %s: missing vertex shader", p.Name)
		case p.Fragment == "":
			return fmt.Errorf("program %s: missing fragment shader", p.Name)
		case seen[p.Name]:
			return fmt.Errorf("program %s: duplicate name", p.Name)
		}
		seen[p.Name] = true
	}
	return nil
}

// Build loads every program in the manifest through LoadFromAssets, so shaders
// named by several programs compile once. Programs that fail to link are still
// returned, unlinked, alongside an error naming them; hot reload can repair
// them later.
func (m *Manifest) Build(g *Graphics) (map[string]*ShaderProgram, error) {
	programs := make(map[string]*ShaderProgram, len(m.Programs))
	var errs []error

	for _, spec := range m.Programs {
		p := NewShaderProgram(g)
		if !p.LoadFromAssets(spec.Vertex, spec.Fragment) {
			errs = append(errs, fmt.Errorf("program %s: link failed", spec.Name))
		}
		programs[spec.Name] = p
	}

	return programs, errors.Join(errs...)
}
