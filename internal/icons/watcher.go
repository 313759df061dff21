package icons

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/justyntemme/chrometabs/internal/debug"
)

// Watcher watches icon directories and reports each one after its changes settle
type Watcher struct {
	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	watching map[string]bool
	notify   chan string
	done     chan struct{}
	closed   sync.Once
	debounce time.Duration
}

// NewWatcher starts a watcher that waits debounce after the last event
// in a directory before notifying. Non-positive debounce means 200ms.
func NewWatcher(debounce time.Duration) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = 200 * time.Millisecond
	}

	iw := &Watcher{
		watcher:  w,
		watching: make(map[string]bool),
		notify:   make(chan string, 10),
		done:     make(chan struct{}),
		debounce: debounce,
	}
	go iw.run()
	return iw, nil
}

func (w *Watcher) run() {
	lastEvent := make(map[string]time.Time)
	tick := w.debounce / 2
	if tick < 10*time.Millisecond {
		tick = 10 * time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !(event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) ||
				event.Has(fsnotify.Rename) || event.Has(fsnotify.Write)) {
				continue
			}

			dir := filepath.Dir(event.Name)
			w.mu.Lock()
			if w.watching[dir] {
				lastEvent[dir] = time.Now()
				debug.Log(debug.ICONS, "fsnotify: %s on %s", event.Op, event.Name)
			} else if w.watching[event.Name] {
				lastEvent[event.Name] = time.Now()
				debug.Log(debug.ICONS, "fsnotify: %s on watched dir %s", event.Op, event.Name)
			}
			w.mu.Unlock()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			debug.Log(debug.ICONS, "fsnotify error: %v", err)

		case now := <-ticker.C:
			for dir, at := range lastEvent {
				if now.Sub(at) < w.debounce {
					continue
				}
				select {
				case w.notify <- dir:
					debug.Log(debug.ICONS, "icon directory changed: %s", dir)
				default:
					// Consumer is behind; it will rescan anyway
				}
				delete(lastEvent, dir)
			}
		}
	}
}

// Watch adds a directory to the watch list
func (w *Watcher) Watch(path string) error {
	path = filepath.Clean(path)
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.watching[path] {
		return nil
	}
	if err := w.watcher.Add(path); err != nil {
		return err
	}
	w.watching[path] = true
	debug.Log(debug.ICONS, "watching %s", path)
	return nil
}

// Notify returns the channel that receives changed directory paths
func (w *Watcher) Notify() <-chan string {
	return w.notify
}

// Close shuts down the watcher. Safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closed.Do(func() {
		close(w.done)
		err = w.watcher.Close()
	})
	return err
}
