// Package watch reloads the site when its override files change on disk.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/mrsuber/ResultInstitudeWeb/pkg/logger"
)

const defaultDebounce = 300 * time.Millisecond

// Watcher watches a set of files and calls onChange once their writes settle.
// Parent directories are watched so editors that replace files are caught.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	files    map[string]bool
	onChange func(paths []string)
	log      *slog.Logger

	debounce time.Duration
	pending  map[string]time.Time

	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
}

func New(files []string, onChange func(paths []string), log *slog.Logger) (*Watcher, error) {
	if log == nil {
		log = logger.Nop()
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	set := make(map[string]bool, len(files))
	for _, f := range files {
		if f == "" {
			continue
		}
		abs, err := filepath.Abs(f)
		if err != nil {
			w.Close()
			return nil, fmt.Errorf("resolve %s: %w", f, err)
		}
		set[abs] = true
	}

	return &Watcher{
		watcher:  w,
		files:    set,
		onChange: onChange,
		log:      log.With(logger.Scope("watch")),
		debounce: defaultDebounce,
		pending:  make(map[string]time.Time),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Files returns the watched files.
func (w *Watcher) Files() []string {
	out := make([]string, 0, len(w.files))
	for f := range w.files {
		out = append(out, f)
	}
	return out
}

// Start adds the watches and runs the event loop until Stop or ctx is done.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	dirs := make(map[string]bool)
	for f := range w.files {
		dirs[filepath.Dir(f)] = true
	}
	for dir := range dirs {
		if err := w.watcher.Add(dir); err != nil {
			w.mu.Lock()
			w.running = false
			w.mu.Unlock()
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		w.log.Info("watching directory", slog.String("dir", dir))
	}

	go w.run(ctx)
	return nil
}

// Stop ends the event loop and releases the watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	running := w.running
	w.running = false
	w.mu.Unlock()

	if running {
		close(w.stopCh)
		<-w.doneCh
	}
	if err := w.watcher.Close(); err != nil {
		w.log.Warn("closing watcher", logger.Error(err))
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.debounce / 3)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watcher error", logger.Error(err))
		case now := <-ticker.C:
			w.flush(now)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	path, err := filepath.Abs(event.Name)
	if err != nil || !w.files[path] {
		return
	}
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
		return
	}
	w.log.Debug("file changed", slog.String("path", path), slog.String("op", event.Op.String()))
	w.pending[path] = time.Now()
}

// flush reports the files whose last event is older than the debounce window.
func (w *Watcher) flush(now time.Time) {
	var settled []string
	for path, at := range w.pending {
		if now.Sub(at) >= w.debounce {
			settled = append(settled, path)
			delete(w.pending, path)
		}
	}
	if len(settled) > 0 && w.onChange != nil {
		w.onChange(settled)
	}
}
