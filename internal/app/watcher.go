package app

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce batches bursts of file system events. Launchers create
// many entries while installing a pack; one refresh at the end is enough.
const watchDebounce = 300 * time.Millisecond

// rootWatcher monitors one instance root for instances appearing or
// disappearing while the app is open. Only the root directory itself
// is watched; instance contents are irrelevant until a warm starts.
type rootWatcher struct {
	fsWatcher *fsnotify.Watcher
	root      string
	events    chan struct{}
	stop      chan struct{}
	debounce  *time.Timer
	mu        sync.Mutex
	closed    bool
}

// newRootWatcher creates a watcher for the given instance root.
func newRootWatcher(root string) (*rootWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(root); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &rootWatcher{
		fsWatcher: fsw,
		root:      root,
		events:    make(chan struct{}, 1),
		stop:      make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *rootWatcher) run() {
	defer func() {
		w.mu.Lock()
		w.closed = true
		if w.debounce != nil {
			w.debounce.Stop()
		}
		w.mu.Unlock()
		close(w.events)
	}()

	for {
		select {
		case <-w.stop:
			return
		case _, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.mu.Lock()
			if w.debounce != nil {
				w.debounce.Stop()
			}
			w.debounce = time.AfterFunc(watchDebounce, func() {
				w.mu.Lock()
				defer w.mu.Unlock()
				if w.closed {
					return
				}
				select {
				case w.events <- struct{}{}:
				default:
				}
			})
			w.mu.Unlock()
		case _, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// Events returns a channel that signals when the root's entries change.
func (w *rootWatcher) Events() <-chan struct{} {
	return w.events
}

// Stop shuts down the watcher.
func (w *rootWatcher) Stop() {
	close(w.stop)
	w.fsWatcher.Close()
}
