package assets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/go-theft-auto/gfx"
)

// DirStore serves assets from files under a root directory.
// Asset names are slash-separated paths relative to the root.
type DirStore struct {
	root   string
	logger *slog.Logger
	subs   subscribers

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	dirs    map[string]bool
}

// NewDirStore creates a store rooted at dir.
func NewDirStore(dir string, logger *slog.Logger) (*DirStore, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("asset root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("asset root %s: not a directory", dir)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &DirStore{
		root:   filepath.Clean(dir),
		logger: logger,
		dirs:   make(map[string]bool),
	}, nil
}

func (s *DirStore) path(name string) string {
	return filepath.Join(s.root, filepath.FromSlash(name))
}

// assetName maps a file path reported by the watcher back to an asset name.
func (s *DirStore) assetName(path string) (string, bool) {
	rel, err := filepath.Rel(s.root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

// Lock implements gfx.AssetStore. The file is read on every call.
func (s *DirStore) Lock(name string, kind gfx.AssetKind) ([]byte, bool) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		s.logger.Warn("asset read failed", "asset", name, "err", err)
		return nil, false
	}
	return data, true
}

// Unlock implements gfx.AssetStore. Files are not pinned, so it does nothing.
func (s *DirStore) Unlock(name string) {}

// Subscribe implements gfx.AssetStore. While Watch is running the asset's
// directory is added to the watch list.
func (s *DirStore) Subscribe(name string, cb gfx.AssetCallback) gfx.SubscriptionID {
	id := s.subs.add(name, cb)

	s.mu.Lock()
	if s.watcher != nil {
		s.watchDir(name)
	}
	s.mu.Unlock()

	return id
}

// Unsubscribe implements gfx.AssetStore.
func (s *DirStore) Unsubscribe(name string, id gfx.SubscriptionID) {
	s.subs.remove(name, id)
}

// Subscribers returns how many callbacks are registered for name.
func (s *DirStore) Subscribers(name string) int {
	return s.subs.count(name)
}

// TouchAll notifies every subscribed asset as if it had changed.
func (s *DirStore) TouchAll() {
	for _, name := range s.subs.names() {
		s.subs.notify(name)
	}
}

// Watch starts watching the directories of subscribed assets and returns once
// they are registered. Writes to a subscribed file, and files created or
// renamed over one, notify its subscribers on the watching goroutine.
// Watching stops when ctx is done.
func (s *DirStore) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("asset watcher: %w", err)
	}

	s.mu.Lock()
	if s.watcher != nil {
		s.mu.Unlock()
		w.Close()
		return errors.New("asset watcher already running")
	}
	s.watcher = w
	for _, name := range s.subs.names() {
		s.watchDir(name)
	}
	s.mu.Unlock()

	go s.run(ctx, w)
	return nil
}

// watchDir watches the directory holding name. Editors that save by writing
// a temporary file and renaming it over the original replace the inode, so
// the directory is watched rather than the file. Callers hold s.mu.
func (s *DirStore) watchDir(name string) {
	dir := filepath.Dir(s.path(name))
	if s.dirs[dir] {
		return
	}
	if err := s.watcher.Add(dir); err != nil {
		s.logger.Warn("asset directory not watched", "asset", name, "dir", dir, "err", err)
		return
	}
	s.dirs[dir] = true
}

func (s *DirStore) run(ctx context.Context, w *fsnotify.Watcher) {
	defer func() {
		s.mu.Lock()
		s.watcher = nil
		clear(s.dirs)
		s.mu.Unlock()
		w.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			name, ok := s.assetName(ev.Name)
			if !ok || s.subs.count(name) == 0 {
				continue
			}
			s.logger.Debug("asset changed", "asset", name, "op", ev.Op.String())
			s.subs.notify(name)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			s.logger.Warn("asset watcher error", "err", err)
		}
	}
}
