// Package watcher notifies the caller when loaded macro files change on
// disk. It exists for the CLI's watch mode; the core session stays
// synchronous and reloads only when told to.
package watcher

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher errors.
var (
	ErrWatcherClosed   = errors.New("watcher is closed")
	ErrPathNotExist    = errors.New("path does not exist")
	ErrAlreadyWatching = errors.New("path is already watched")
)

// Event reports that a watched file changed.
type Event struct {
	// Path is the absolute path of the changed file.
	Path string
}

// Watcher watches individual files and emits a debounced Event when one is
// written to or replaced.
type Watcher struct {
	mu sync.Mutex

	fsw   *fsnotify.Watcher
	paths map[string]bool

	events   chan Event
	debounce time.Duration
	timers   map[string]*time.Timer

	closed  bool
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// DefaultDebounce separates bursts of write events for the same file.
const DefaultDebounce = 250 * time.Millisecond

// New creates a watcher with the default debounce interval.
func New() (*Watcher, error) {
	return NewWithDebounce(DefaultDebounce)
}

// NewWithDebounce creates a watcher with a custom debounce interval.
func NewWithDebounce(debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		paths:    make(map[string]bool),
		events:   make(chan Event, 16),
		debounce: debounce,
		timers:   make(map[string]*time.Timer),
		closeCh:  make(chan struct{}),
	}

	w.wg.Add(1)
	go w.processLoop()

	return w, nil
}

// Watch starts watching a file path.
func (w *Watcher) Watch(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	if _, err := os.Stat(absPath); err != nil {
		if os.IsNotExist(err) {
			return ErrPathNotExist
		}
		return err
	}

	if w.paths[absPath] {
		return ErrAlreadyWatching
	}

	// Watch the containing directory so editors that replace the file
	// (write temp + rename) are still observed.
	dir := filepath.Dir(absPath)
	if err := w.fsw.Add(dir); err != nil {
		return err
	}

	w.paths[absPath] = true
	return nil
}

// Events returns the channel of change events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Close stops the watcher and releases its resources.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	for _, t := range w.timers {
		t.Stop()
	}
	w.mu.Unlock()

	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

// processLoop forwards fsnotify events for watched files, debounced per path.
func (w *Watcher) processLoop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.closeCh:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.schedule(ev.Name)
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}

// schedule arms (or re-arms) the debounce timer for a watched path.
func (w *Watcher) schedule(name string) {
	absPath, err := filepath.Abs(name)
	if err != nil {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || !w.paths[absPath] {
		return
	}

	if t, ok := w.timers[absPath]; ok {
		t.Reset(w.debounce)
		return
	}

	w.timers[absPath] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.timers, absPath)
		closed := w.closed
		w.mu.Unlock()

		if closed {
			return
		}
		select {
		case w.events <- Event{Path: absPath}:
		case <-w.closeCh:
		}
	})
}
