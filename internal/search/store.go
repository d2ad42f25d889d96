// Package search holds the current search results and notifies views
// when they change.
package search

import (
	"sync"

	"tunegrip/internal/domain"
)

// ChangeListener is notified after every change to a Store's results.
// The notification carries no payload; listeners re-read Results.
//
// Listeners are identified by their interface value, so implementations
// must be comparable (in practice, pointers).
type ChangeListener interface {
	ResultsChanged()
}

// Source is the read side of a Store as seen by views
type Source interface {
	Results() domain.ResultSet
	AddChangeListener(l ChangeListener)
	RemoveChangeListener(l ChangeListener)
}

// Store owns the current result set and its change listeners
type Store struct {
	mu         sync.Mutex
	query      string
	results    domain.ResultSet
	listeners  []ChangeListener
	generation uint64
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{results: domain.ResultSet{}}
}

var _ Source = (*Store)(nil)

// Results returns the current result set. The returned slice is the
// caller's own; the groups it points to are shared and must not be modified.
func (s *Store) Results() domain.ResultSet {
	s.mu.Lock()
	defer s.mu.Unlock()

	rs := make(domain.ResultSet, len(s.results))
	copy(rs, s.results)
	return rs
}

// Query returns the query the current results answer
func (s *Store) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// Generation counts result replacements
func (s *Store) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// AddChangeListener registers l. Registering the same listener twice keeps
// a single registration.
func (s *Store) AddChangeListener(l ChangeListener) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(l) >= 0 {
		return
	}
	s.listeners = append(s.listeners, l)
}

// RemoveChangeListener deregisters l. Removing an unknown listener is a no-op.
func (s *Store) RemoveChangeListener(l ChangeListener) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(l)
	if i < 0 {
		return
	}
	s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
}

// ListenerCount returns the number of registered listeners
func (s *Store) ListenerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.listeners)
}

// SetResults replaces the results wholesale and notifies every listener
func (s *Store) SetResults(query string, rs domain.ResultSet) {
	own := make(domain.ResultSet, len(rs))
	copy(own, rs)

	s.mu.Lock()
	s.query = query
	s.results = own
	s.generation++
	s.mu.Unlock()

	s.emit()
}

// Clear replaces the results with an empty set and notifies listeners
func (s *Store) Clear() {
	s.SetResults("", nil)
}

// emit calls listeners in registration order without holding the lock, so
// listeners may read results or (de)register during the call. A listener
// removed mid-emission is skipped.
func (s *Store) emit() {
	s.mu.Lock()
	snapshot := make([]ChangeListener, len(s.listeners))
	copy(snapshot, s.listeners)
	s.mu.Unlock()

	for _, l := range snapshot {
		s.mu.Lock()
		registered := s.indexOf(l) >= 0
		s.mu.Unlock()
		if registered {
			l.ResultsChanged()
		}
	}
}

func (s *Store) indexOf(l ChangeListener) int {
	for i, x := range s.listeners {
		if x == l {
			return i
		}
	}
	return -1
}
