package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tunegrip/internal/domain"
	"tunegrip/internal/eventbus"
	"tunegrip/internal/library"
)

type failingSearcher struct{ err error }

func (f failingSearcher) Search(context.Context, string, int) ([]domain.Track, error) {
	return nil, f.err
}

func testLibrary() *library.MemoryLibrary {
	return library.NewMemoryLibrary([]domain.Track{
		{ID: "1", Name: "Sarabande", Album: "Suites", Composer: "Bach", TrackNumber: 4},
		{ID: "2", Name: "Prelude", Album: "Suites", Composer: "Bach", TrackNumber: 1},
		{ID: "3", Name: "Aria", Album: "Goldberg", Composer: "Bach", TrackNumber: 1},
		{ID: "4", Name: "Clair de Lune", Album: "Suite bergamasque", Composer: "Debussy", TrackNumber: 3},
	})
}

func TestServiceSearchGroupsAndSorts(t *testing.T) {
	svc := NewService(testLibrary(), nil, Options{GroupBy: "Album", MaxResults: 100})

	rs, err := svc.Search(context.Background(), "bach")
	require.NoError(t, err)
	require.Len(t, rs, 2)
	assert.Equal(t, "Goldberg", rs[0].Name)
	assert.Equal(t, "Suites", rs[1].Name)
	assert.Equal(t, "Prelude", rs[1].Tracks[0].Name)
	assert.Equal(t, "Sarabande", rs[1].Tracks[1].Name)
}

func TestServiceSearchGroupByComposer(t *testing.T) {
	svc := NewService(testLibrary(), nil, Options{GroupBy: "Composer"})

	rs, err := svc.Search(context.Background(), "suite")
	require.NoError(t, err)
	require.Len(t, rs, 2)
	assert.Equal(t, "Bach", rs[0].Name)
	assert.Equal(t, "Debussy", rs[1].Name)
}

func TestServiceEmptyQuery(t *testing.T) {
	svc := NewService(testLibrary(), nil, Options{})

	rs, err := svc.Search(context.Background(), "   ")
	require.NoError(t, err)
	assert.NotNil(t, rs)
	assert.Empty(t, rs)
}

func TestServiceNoMatchesIsEmptyNotNil(t *testing.T) {
	svc := NewService(testLibrary(), nil, Options{})

	rs, err := svc.Search(context.Background(), "mahler")
	require.NoError(t, err)
	assert.NotNil(t, rs)
	assert.Empty(t, rs)
}

func TestServiceMaxResults(t *testing.T) {
	svc := NewService(testLibrary(), nil, Options{MaxResults: 1})

	rs, err := svc.Search(context.Background(), "bach")
	require.NoError(t, err)
	assert.Equal(t, 1, rs.TrackCount())
}

func TestServicePublishesEvents(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	completed := make(chan eventbus.DomainEvent, 1)
	failed := make(chan eventbus.DomainEvent, 1)
	bus.Subscribe(eventbus.EventSearchCompleted, func(e eventbus.DomainEvent) { completed <- e })
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) { failed <- e })

	_, err := NewService(testLibrary(), bus, Options{}).Search(context.Background(), "bach")
	require.NoError(t, err)

	select {
	case e := <-completed:
		ev := e.(eventbus.SearchCompletedEvent)
		assert.Equal(t, "bach", ev.Query)
		assert.Equal(t, 2, ev.GroupCount)
		assert.Equal(t, 3, ev.TrackCount)
	case <-time.After(2 * time.Second):
		t.Fatal("SearchCompletedEvent not published")
	}

	boom := errors.New("disk on fire")
	_, err = NewService(failingSearcher{err: boom}, bus, Options{}).Search(context.Background(), "bach")
	require.ErrorIs(t, err, boom)

	select {
	case e := <-failed:
		assert.ErrorIs(t, e.(eventbus.ErrorEvent).Err, boom)
	case <-time.After(2 * time.Second):
		t.Fatal("ErrorEvent not published")
	}
}
