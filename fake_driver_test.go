package gfx_test

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/go-theft-auto/gfx"
	"github.com/go-theft-auto/gfx/assets"
)

// badSource marks shader text the fake driver refuses to compile.
const badSource = "#error"

// fakeDriver records GL calls and tracks live objects so tests can check
// for leaks. Shader source containing badSource fails to compile.
//
// With reuseNames set, new objects get the lowest name not currently in use,
// the way real GL implementations recycle deleted names.
type fakeDriver struct {
	nextID     uint32
	reuseNames bool

	sources  map[uint32]string
	shaders  map[uint32]bool
	programs map[uint32]bool
	attached map[uint32][]uint32

	failLink bool
	attribs  map[string]int32

	calls []string

	compiles int
	links    int
	used     []uint32
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		sources:  make(map[uint32]string),
		shaders:  make(map[uint32]bool),
		programs: make(map[uint32]bool),
		attached: make(map[uint32][]uint32),
		attribs: map[string]int32{
			"a_position":  0,
			"a_color0":    1,
			"a_texcoord0": 2,
		},
	}
}

func (d *fakeDriver) record(format string, args ...any) {
	d.calls = append(d.calls, fmt.Sprintf(format, args...))
}

func (d *fakeDriver) resetCalls() { d.calls = nil }

func (d *fakeDriver) newName() uint32 {
	if !d.reuseNames {
		d.nextID++
		return d.nextID
	}
	for id := uint32(1); ; id++ {
		if !d.shaders[id] && !d.programs[id] {
			return id
		}
	}
}

func (d *fakeDriver) CreateShader(kind gfx.ShaderKind) uint32 {
	id := d.newName()
	d.shaders[id] = true
	return id
}

func (d *fakeDriver) ShaderSource(shader uint32, source string) { d.sources[shader] = source }
func (d *fakeDriver) CompileShader(shader uint32)               { d.compiles++ }
func (d *fakeDriver) DeleteShader(shader uint32)                { delete(d.shaders, shader) }

func (d *fakeDriver) ShaderStatus(shader uint32) (bool, string) {
	if strings.Contains(d.sources[shader], badSource) {
		return false, "0:1: syntax error"
	}
	return true, ""
}

func (d *fakeDriver) CreateProgram() uint32 {
	id := d.newName()
	d.programs[id] = true
	return id
}

func (d *fakeDriver) AttachShader(program, shader uint32) {
	d.attached[program] = append(d.attached[program], shader)
}

func (d *fakeDriver) DetachShader(program, shader uint32) {
	list := d.attached[program]
	for i, s := range list {
		if s == shader {
			d.attached[program] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

func (d *fakeDriver) LinkProgram(program uint32) { d.links++ }

func (d *fakeDriver) DeleteProgram(program uint32) {
	delete(d.programs, program)
	delete(d.attached, program)
}

func (d *fakeDriver) UseProgram(program uint32) { d.used = append(d.used, program) }

func (d *fakeDriver) ProgramStatus(program uint32) (bool, string) {
	if d.failLink {
		return false, ""
	}
	return true, ""
}

func (d *fakeDriver) GetAttribLocation(program uint32, name string) int32 {
	if loc, ok := d.attribs[name]; ok {
		return loc
	}
	return -1
}

func (d *fakeDriver) GetUniformLocation(program uint32, name string) int32 {
	switch name {
	case "u_texture":
		return 10
	case "u_mvp":
		return 11
	}
	return -1
}

func (d *fakeDriver) EnableVertexAttribArray(index uint32) { d.record("enable %d", index) }

func (d *fakeDriver) VertexAttribPointer(index uint32, size int32, typ gfx.AttribType, normalized bool, stride int32, offset uintptr) {
	d.record("attrib %d size=%d normalized=%t stride=%d offset=%d", index, size, normalized, stride, offset)
}

func (d *fakeDriver) Uniform1f(location int32, v0 float32) { d.record("1f %d %v", location, v0) }
func (d *fakeDriver) Uniform2f(location int32, v0, v1 float32) {
	d.record("2f %d %v %v", location, v0, v1)
}
func (d *fakeDriver) Uniform3f(location int32, v0, v1, v2 float32) {
	d.record("3f %d %v %v %v", location, v0, v1, v2)
}
func (d *fakeDriver) Uniform1i(location int32, v0 int32) { d.record("1i %d %d", location, v0) }
func (d *fakeDriver) Uniform2i(location int32, v0, v1 int32) {
	d.record("2i %d %d %d", location, v0, v1)
}
func (d *fakeDriver) Uniform3i(location int32, v0, v1, v2 int32) {
	d.record("3i %d %d %d %d", location, v0, v1, v2)
}

func (d *fakeDriver) Uniform1fv(location int32, count int32, values []float32) {
	d.record("1fv %d count=%d %v", location, count, values)
}
func (d *fakeDriver) Uniform2fv(location int32, count int32, values []float32) {
	d.record("2fv %d count=%d %v", location, count, values)
}
func (d *fakeDriver) Uniform3fv(location int32, count int32, values []float32) {
	d.record("3fv %d count=%d %v", location, count, values)
}
func (d *fakeDriver) Uniform1iv(location int32, count int32, values []int32) {
	d.record("1iv %d count=%d %v", location, count, values)
}
func (d *fakeDriver) Uniform2iv(location int32, count int32, values []int32) {
	d.record("2iv %d count=%d %v", location, count, values)
}
func (d *fakeDriver) Uniform3iv(location int32, count int32, values []int32) {
	d.record("3iv %d count=%d %v", location, count, values)
}

func (d *fakeDriver) UniformMatrix3fv(location int32, count int32, transpose bool, values []float32) {
	d.record("m3fv %d count=%d transpose=%t %v", location, count, transpose, values)
}
func (d *fakeDriver) UniformMatrix4fv(location int32, count int32, transpose bool, values []float32) {
	d.record("m4fv %d count=%d transpose=%t %v", location, count, transpose, values)
}

// newTestGraphics returns a Graphics wired to a fake driver and an in-memory
// asset store, logging nowhere.
func newTestGraphics(t *testing.T) (*gfx.Graphics, *fakeDriver, *assets.MemStore) {
	t.Helper()
	d := newFakeDriver()
	store := assets.NewMemStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return gfx.New(d, store, gfx.WithLogger(logger)), d, store
}

// mustPanic fails the test unless fn panics.
func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}
