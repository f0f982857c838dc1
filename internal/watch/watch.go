// Package watch monitors the backend script file for changes. The runtime
// lifecycle is one-shot, so a change cannot be hot-reloaded; the watcher's
// job is to log a restart advisory the moment the installed script no
// longer matches the running one.
package watch

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/lupkg/lupkg/internal/log"
)

// ErrWatcherClosed is returned when the watcher has been closed.
var ErrWatcherClosed = errors.New("watch: watcher closed")

// Handler is called when the watched script changes.
type Handler func(path string)

// Watcher watches a single script file through its parent directory, so
// editors that replace the file by rename are still observed.
type Watcher struct {
	mu      sync.Mutex
	watcher *fsnotify.Watcher
	script  string
	handler Handler
	closed  bool

	// debounce collapses rapid write bursts into one notification
	debounce time.Duration
	lastFire time.Time

	done   chan struct{}
	logger *slog.Logger
}

// New creates a watcher for the given script path. The handler runs on the
// watcher's goroutine; it must not block.
func New(script string, handler Handler) (*Watcher, error) {
	abs, err := filepath.Abs(script)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher:  fsw,
		script:   abs,
		handler:  handler,
		debounce: 200 * time.Millisecond,
		done:     make(chan struct{}),
		logger:   log.WithComponent("watch"),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(ev)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(ev fsnotify.Event) {
	if filepath.Clean(ev.Name) != w.script {
		return
	}
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
		return
	}

	w.mu.Lock()
	now := time.Now()
	fire := now.Sub(w.lastFire) >= w.debounce
	if fire {
		w.lastFire = now
	}
	handler := w.handler
	w.mu.Unlock()

	if !fire {
		return
	}

	w.logger.Warn("backend script changed on disk; running state is unchanged, restart required",
		slog.String("script", w.script))
	if handler != nil {
		handler(w.script)
	}
}

// Close stops the watcher. Safe to call once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrWatcherClosed
	}
	w.closed = true
	w.mu.Unlock()

	err := w.watcher.Close()
	<-w.done
	return err
}
