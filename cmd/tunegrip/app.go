package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tunegrip/internal/config"
	"tunegrip/internal/eventbus"
	"tunegrip/internal/library"
	"tunegrip/internal/logging"
	"tunegrip/internal/search"
)

// app is the wiring shared by every command
type app struct {
	bus     eventbus.EventBus
	cfg     *config.Config
	lib     library.Library
	service *search.Service
	closers []func() error
}

// resolveConfigPath prefers --config, then a config file in the working
// directory, then the user config file.
func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	if _, err := os.Stat(config.FileName); err == nil {
		return config.FileName
	}
	return ""
}

func loadConfig(bus eventbus.EventBus) (*config.Config, error) {
	svc := config.NewConfigServiceWithBus(bus, resolveConfigPath())
	cfg, err := svc.Load()
	if err != nil {
		return nil, err
	}
	if libraryPath != "" {
		cfg.Library = libraryPath
	}
	if backend != "" {
		cfg.Backend = backend
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", svc.Path(), err)
	}
	return cfg, nil
}

// newApp loads config and starts logging. The library is opened by open,
// so callers can subscribe to its events first.
func newApp() (*app, error) {
	bus := eventbus.New()

	cfg, err := loadConfig(bus)
	if err != nil {
		bus.Close()
		return nil, err
	}

	if err := logging.Init(config.Dir(), cfg.LogLevel); err != nil {
		// Logging is best effort; the app works without a log file.
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	return &app{bus: bus, cfg: cfg}, nil
}

// open opens the library, announces it and builds the search service
func (a *app) open(ctx context.Context) error {
	if err := a.openLibrary(ctx); err != nil {
		return err
	}
	a.service = search.NewService(a.lib, a.bus, search.Options{
		GroupBy:    a.cfg.Search.GroupBy,
		MaxResults: a.cfg.Search.MaxResults,
	})
	return nil
}

// openLibrary opens the configured backend. The memory backend is filled
// from the library file; the sqlite backend is searched as it is and only
// refreshed from the file when the file exists.
func (a *app) openLibrary(ctx context.Context) error {
	switch a.cfg.Backend {
	case config.BackendSQLite:
		db, err := library.OpenSQLite(a.cfg.Database)
		if err != nil {
			return err
		}
		a.lib = db
		a.closers = append(a.closers, db.Close)

	default:
		tracks, err := library.LoadFile(a.cfg.Library)
		if err != nil && !errors.Is(err, library.ErrNoLibrary) {
			return err
		}
		a.lib = library.NewMemoryLibrary(tracks)
	}

	count, err := a.lib.Count(ctx)
	if err != nil {
		return err
	}
	logging.Info("library opened", "backend", a.cfg.Backend, "library", a.cfg.Library, "tracks", count)
	a.bus.Publish(eventbus.LibraryLoadedEvent{Source: a.cfg.Library, TrackCount: count})
	return nil
}

// watch starts reloading the library when its file changes. It returns
// without error when there is no file to watch.
func (a *app) watch(ctx context.Context) error {
	if a.cfg.Library == "" {
		return nil
	}
	if _, err := os.Stat(a.cfg.Library); err != nil {
		logging.Warn("not watching library", "path", a.cfg.Library, "err", err)
		return nil
	}

	w, err := library.NewWatcher(a.cfg.Library, a.lib, a.bus, library.DefaultReloadInterval)
	if err != nil {
		return err
	}
	go func() {
		if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logging.Error("library watcher stopped", "err", err)
		}
	}()
	return nil
}

// Close releases the library and stops the bus
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			logging.Warn("close failed", "err", err)
		}
	}
	a.bus.Close()
	logging.Close()
}
