package gfx_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-theft-auto/gfx"
)

func boundProgram(t *testing.T) (*gfx.ShaderProgram, *fakeDriver, *gfx.Graphics) {
	t.Helper()
	g, d, _ := newTestGraphics(t)
	p := gfx.NewShaderProgram(g)
	if !p.Load(testVS, testFS) {
		t.Fatal("Load failed")
	}
	p.Bind()
	d.resetCalls()
	return p, d, g
}

func TestUniform_RequiresBoundProgram(t *testing.T) {
	p, d, g := boundProgram(t)

	other := gfx.NewShaderProgram(g)
	other.Load(testVS, testFS)

	p.SetUniform1f(3, 0.5)
	if diff := cmp.Diff([]string{"1f 3 0.5"}, d.calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}

	other.Bind()

	tests := []struct {
		name string
		set  func()
	}{
		{"1f", func() { p.SetUniform1f(0, 1) }},
		{"2f", func() { p.SetUniform2f(0, 1, 2) }},
		{"3f", func() { p.SetUniform3f(0, 1, 2, 3) }},
		{"1i", func() { p.SetUniform1i(0, 1) }},
		{"2i", func() { p.SetUniform2i(0, 1, 2) }},
		{"3i", func() { p.SetUniform3i(0, 1, 2, 3) }},
		{"1fv", func() { p.SetUniform1fv(0, []float32{1}) }},
		{"2fv", func() { p.SetUniform2fv(0, []float32{1, 2}) }},
		{"3fv", func() { p.SetUniform3fv(0, []float32{1, 2, 3}) }},
		{"1iv", func() { p.SetUniform1iv(0, []int32{1}) }},
		{"2iv", func() { p.SetUniform2iv(0, []int32{1, 2}) }},
		{"3iv", func() { p.SetUniform3iv(0, []int32{1, 2, 3}) }},
		{"matrix3", func() { p.SetUniformMatrix3f(0, false, gfx.Identity()) }},
		{"matrix4", func() { p.SetUniformMatrix4f(0, false, gfx.Identity()) }},
		{"matrix3v", func() { p.SetUniformMatrix3fv(0, false, []gfx.Matrix{gfx.Identity()}) }},
		{"matrix4v", func() { p.SetUniformMatrix4fv(0, false, []gfx.Matrix{gfx.Identity()}) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mustPanic(t, tt.name, tt.set)
		})
	}
}

func TestUniform_VectorLength(t *testing.T) {
	p, d, _ := boundProgram(t)

	mustPanic(t, "3 floats as vec2", func() { p.SetUniform2fv(0, []float32{1, 2, 3}) })
	mustPanic(t, "4 floats as vec3", func() { p.SetUniform3fv(0, []float32{1, 2, 3, 4}) })
	mustPanic(t, "3 ints as ivec2", func() { p.SetUniform2iv(0, []int32{1, 2, 3}) })
	mustPanic(t, "2 ints as ivec3", func() { p.SetUniform3iv(0, []int32{1, 2}) })
	if len(d.calls) != 0 {
		t.Fatalf("rejected uploads reached the driver: %v", d.calls)
	}

	p.SetUniform2fv(4, []float32{1, 2, 3, 4})
	p.SetUniform3fv(5, []float32{1, 2, 3, 4, 5, 6})
	p.SetUniform1iv(6, []int32{7, 8, 9})
	p.SetUniform3iv(7, []int32{1, 2, 3})

	want := []string{
		"2fv 4 count=2 [1 2 3 4]",
		"3fv 5 count=2 [1 2 3 4 5 6]",
		"1iv 6 count=3 [7 8 9]",
		"3iv 7 count=1 [1 2 3]",
	}
	if diff := cmp.Diff(want, d.calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestUniform_MatrixFlattening(t *testing.T) {
	p, d, _ := boundProgram(t)

	m := gfx.Matrix{A: 1, B: 2, C: 3, D: 4, TX: 5, TY: 6}
	p.SetUniformMatrix3fv(1, true, []gfx.Matrix{m, gfx.Identity()})
	p.SetUniformMatrix4f(2, false, m)

	want := []string{
		"m3fv 1 count=2 transpose=true [1 2 0 3 4 0 5 6 1 1 0 0 0 1 0 0 0 1]",
		"m4fv 2 count=1 transpose=false [1 2 0 0 3 4 0 0 0 0 1 0 5 6 0 1]",
	}
	if diff := cmp.Diff(want, d.calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
}
