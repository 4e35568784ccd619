// Package assets provides gfx.AssetStore implementations: MemStore keeps
// sources in memory, DirStore reads them from a directory and watches it for
// changes.
package assets

import (
	"sync"

	"github.com/go-theft-auto/gfx"
)

// subscribers tracks change callbacks per asset name.
type subscribers struct {
	mu     sync.Mutex
	nextID gfx.SubscriptionID
	byName map[string]map[gfx.SubscriptionID]gfx.AssetCallback
}

func (s *subscribers) add(name string, cb gfx.AssetCallback) gfx.SubscriptionID {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.byName == nil {
		s.byName = make(map[string]map[gfx.SubscriptionID]gfx.AssetCallback)
	}
	s.nextID++
	if s.byName[name] == nil {
		s.byName[name] = make(map[gfx.SubscriptionID]gfx.AssetCallback)
	}
	s.byName[name][s.nextID] = cb
	return s.nextID
}

func (s *subscribers) remove(name string, id gfx.SubscriptionID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.byName[name], id)
	if len(s.byName[name]) == 0 {
		delete(s.byName, name)
	}
}

func (s *subscribers) count(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byName[name])
}

func (s *subscribers) names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.byName))
	for name := range s.byName {
		names = append(names, name)
	}
	return names
}

// notify calls every callback for name. Callbacks run without the lock held
// so they may subscribe or unsubscribe.
func (s *subscribers) notify(name string) {
	s.mu.Lock()
	cbs := make([]gfx.AssetCallback, 0, len(s.byName[name]))
	for _, cb := range s.byName[name] {
		cbs = append(cbs, cb)
	}
	s.mu.Unlock()

	for _, cb := range cbs {
		cb(name)
	}
}
