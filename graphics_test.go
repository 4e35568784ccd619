package gfx_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/go-theft-auto/gfx"
	"github.com/go-theft-auto/gfx/assets"
)

func TestGraphics_RunPending(t *testing.T) {
	g := gfx.New(newFakeDriver(), assets.NewMemStore())

	if n := g.RunPending(); n != 0 {
		t.Fatalf("empty queue ran %d tasks", n)
	}

	var order []int
	for i := range 3 {
		g.Post(func() { order = append(order, i) })
	}

	if n := g.RunPending(); n != 3 {
		t.Errorf("ran %d tasks, want 3", n)
	}
	for i, v := range order {
		if v != i {
			t.Fatalf("tasks ran out of order: %v", order)
		}
	}
}

func TestGraphics_PostFromOtherGoroutines(t *testing.T) {
	g := gfx.New(newFakeDriver(), assets.NewMemStore())

	ran := 0
	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g.Post(func() { ran++ })
		}()
	}
	wg.Wait()

	g.RunPending()
	if ran != 10 {
		t.Errorf("ran %d tasks, want 10", ran)
	}
}

func TestGraphics_ReloadFromWatcherGoroutine(t *testing.T) {
	g, _, store := newTestGraphics(t)
	store.Set("a.vert", testVS)

	s := gfx.NewShader(g, "a.vert", gfx.VertexShader)
	oldID := s.ID()

	done := make(chan struct{})
	go func() {
		store.Set("a.vert", testVS+"// v2")
		close(done)
	}()
	<-done

	if s.ID() != oldID {
		t.Fatal("shader changed off the graphics thread")
	}
	g.RunPending()
	if s.ID() == oldID {
		t.Error("reload did not run")
	}
}

func TestGraphics_PostFromGraphicsThreadDoesNotBlock(t *testing.T) {
	g := gfx.New(newFakeDriver(), assets.NewMemStore())

	const n = 1000
	ran := 0
	for range n {
		g.Post(func() { ran++ })
	}

	if got := g.RunPending(); got != n {
		t.Fatalf("ran %d tasks, want %d", got, n)
	}
	if ran != n {
		t.Errorf("ran %d tasks, want %d", ran, n)
	}
}

func TestGraphics_TaskPostedDuringRunWaitsForNextCall(t *testing.T) {
	g := gfx.New(newFakeDriver(), assets.NewMemStore())

	second := false
	g.Post(func() {
		g.Post(func() { second = true })
	})

	if n := g.RunPending(); n != 1 {
		t.Fatalf("first run ran %d tasks, want 1", n)
	}
	if second {
		t.Fatal("task posted during RunPending ran in the same call")
	}
	if n := g.RunPending(); n != 1 || !second {
		t.Errorf("second run ran %d tasks, second=%t", n, second)
	}
}

func TestGraphics_TouchAllOnGraphicsThreadCoalescesReloads(t *testing.T) {
	g, d, store := newTestGraphics(t)

	const n = 100
	shaders := make([]*gfx.Shader, n)
	for i := range shaders {
		name := fmt.Sprintf("s%03d.frag", i)
		store.Set(name, testFS)
		shaders[i] = gfx.NewShader(g, name, gfx.FragmentShader)
	}
	compiles := d.compiles

	// Two reload requests per shader, both from this goroutine.
	store.TouchAll()
	store.TouchAll()

	if got := g.RunPending(); got != n {
		t.Fatalf("ran %d reloads, want one per shader (%d)", got, n)
	}
	if d.compiles != compiles+n {
		t.Errorf("compiled %d times, want %d", d.compiles-compiles, n)
	}
	for _, s := range shaders {
		if s.ID() == 0 {
			t.Fatalf("shader %s not recompiled", s.Name())
		}
	}

	store.TouchAll()
	if got := g.RunPending(); got != n {
		t.Errorf("reload after the queue drained ran %d tasks, want %d", got, n)
	}
}
