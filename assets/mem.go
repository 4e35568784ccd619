package assets

import (
	"sync"

	"github.com/go-theft-auto/gfx"
)

// MemStore is an in-memory asset store. Set replaces an asset and notifies
// its subscribers on the calling goroutine.
type MemStore struct {
	mu    sync.Mutex
	data  map[string][]byte
	locks map[string]int
	subs  subscribers
}

// NewMemStore creates an empty store.
func NewMemStore() *MemStore {
	return &MemStore{
		data:  make(map[string][]byte),
		locks: make(map[string]int),
	}
}

// Set stores text under name and notifies subscribers if the asset existed.
func (s *MemStore) Set(name, text string) {
	s.mu.Lock()
	_, existed := s.data[name]
	s.data[name] = []byte(text)
	s.mu.Unlock()

	if existed {
		s.subs.notify(name)
	}
}

// Touch notifies subscribers of name without changing it.
func (s *MemStore) Touch(name string) {
	s.subs.notify(name)
}

// TouchAll notifies every subscribed asset.
func (s *MemStore) TouchAll() {
	for _, name := range s.subs.names() {
		s.subs.notify(name)
	}
}

// Lock implements gfx.AssetStore.
func (s *MemStore) Lock(name string, kind gfx.AssetKind) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.data[name]
	if !ok {
		return nil, false
	}
	s.locks[name]++
	return data, true
}

// Unlock implements gfx.AssetStore.
func (s *MemStore) Unlock(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.locks[name] > 0 {
		s.locks[name]--
	}
}

// Locked returns how many outstanding locks name has.
func (s *MemStore) Locked(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locks[name]
}

// Subscribe implements gfx.AssetStore.
func (s *MemStore) Subscribe(name string, cb gfx.AssetCallback) gfx.SubscriptionID {
	return s.subs.add(name, cb)
}

// Unsubscribe implements gfx.AssetStore.
func (s *MemStore) Unsubscribe(name string, id gfx.SubscriptionID) {
	s.subs.remove(name, id)
}

// Subscribers returns how many callbacks are registered for name.
func (s *MemStore) Subscribers(name string) int {
	return s.subs.count(name)
}
