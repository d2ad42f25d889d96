package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tunegrip/internal/eventbus"
	"tunegrip/internal/logging"
	"tunegrip/internal/search"
	"tunegrip/internal/ui"
)

// forwardedEvents are the bus events the TUI reacts to
var forwardedEvents = []eventbus.EventType{
	eventbus.EventLibraryLoaded,
	eventbus.EventLibraryChanged,
	eventbus.EventError,
}

// subscribeEvents buffers the events the TUI reacts to until pumpEvents
// hands them to the program. Subscribe before opening the library so
// LibraryLoaded is not missed.
func subscribeEvents(bus eventbus.EventBus) (<-chan eventbus.DomainEvent, func()) {
	eventChan := make(chan eventbus.DomainEvent, 100)
	unsubscribes := make([]func(), 0, len(forwardedEvents))
	for _, t := range forwardedEvents {
		unsubscribes = append(unsubscribes, bus.Subscribe(t, func(e eventbus.DomainEvent) {
			select {
			case eventChan <- e:
			default:
				logging.Warn("event channel full, dropping event", "type", e.Type())
			}
		}))
	}
	return eventChan, func() {
		for _, unsubscribe := range unsubscribes {
			unsubscribe()
		}
	}
}

// pumpEvents sends buffered events to the UI until ctx is done
func pumpEvents(ctx context.Context, events <-chan eventbus.DomainEvent, send func(tea.Msg)) {
	for {
		select {
		case event := <-events:
			send(ui.EventMsg{Event: event})
		case <-ctx.Done():
			return
		}
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	events, unsubscribe := subscribeEvents(a.bus)
	defer unsubscribe()

	if err := a.open(ctx); err != nil {
		return err
	}

	store := search.NewStore()
	model := ui.NewModel(a.cfg, store, a.service)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)

	go pumpEvents(ctx, events, p.Send)

	if err := a.watch(ctx); err != nil {
		logging.Error("cannot watch library", "err", err)
	}

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
