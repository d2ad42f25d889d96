package library

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"tunegrip/internal/eventbus"
	"tunegrip/internal/logging"
)

// DefaultReloadInterval is the minimum time between two reloads
const DefaultReloadInterval = 500 * time.Millisecond

// Watcher reloads a library whenever its YAML file changes on disk
type Watcher struct {
	path    string
	target  Replacer
	bus     eventbus.EventBus
	limiter *rate.Limiter
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for the library file at path. Reloads go to
// target and are announced on bus.
func NewWatcher(path string, target Replacer, bus eventbus.EventBus, interval time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to resolve library path: %w", err)
	}

	// Editors often replace the file instead of writing it, so watch the
	// directory and filter by name.
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	if interval <= 0 {
		interval = DefaultReloadInterval
	}

	return &Watcher{
		path:    abs,
		target:  target,
		bus:     bus,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		watcher: fw,
	}, nil
}

// Run processes file events until ctx is cancelled
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()
	log := logging.WithPrefix("watcher")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			if err := w.limiter.Wait(ctx); err != nil {
				return err
			}
			w.drain()
			if err := w.Reload(ctx); err != nil {
				log.Error("reload failed", "path", w.path, "error", err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			// Overflows and transient errors lose events, not the watch.
			log.Error("watch error", "path", w.path, "error", err)
			w.bus.Publish(eventbus.ErrorEvent{Message: "library watch error", Err: err})
		}
	}
}

// Reload reads the library file and replaces the target's tracks
func (w *Watcher) Reload(ctx context.Context) error {
	tracks, err := LoadFile(w.path)
	if err != nil {
		w.bus.Publish(eventbus.ErrorEvent{Message: "library reload failed", Err: err})
		return err
	}
	if err := w.target.Replace(ctx, tracks); err != nil {
		w.bus.Publish(eventbus.ErrorEvent{Message: "library reload failed", Err: err})
		return err
	}

	logging.Info("library reloaded", "path", w.path, "tracks", len(tracks))
	w.bus.Publish(eventbus.LibraryChangedEvent{Source: w.path, TrackCount: len(tracks)})
	return nil
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

// drain discards events queued while waiting for the limiter; one reload
// covers all of them.
func (w *Watcher) drain() {
	for {
		select {
		case <-w.watcher.Events:
		default:
			return
		}
	}
}
