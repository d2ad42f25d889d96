package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tunegrip/internal/domain"
	"tunegrip/internal/eventbus"
	"tunegrip/internal/index"
	"tunegrip/internal/library"
	"tunegrip/internal/logging"
)

// Options configures a Service
type Options struct {
	GroupBy    string
	MaxResults int
}

// Service turns queries into grouped result sets
type Service struct {
	searcher   library.Searcher
	collector  index.Collector
	maxResults int
	bus        eventbus.EventBus
}

// NewService creates a new search service
func NewService(searcher library.Searcher, bus eventbus.EventBus, opts Options) *Service {
	groupBy := opts.GroupBy
	if groupBy == "" {
		groupBy = "Album"
	}
	return &Service{
		searcher:   searcher,
		collector:  index.By(groupBy),
		maxResults: opts.MaxResults,
		bus:        bus,
	}
}

// Search runs query against the library. Results are grouped, groups are
// sorted by name and tracks by disc and track number. An empty query gives
// an empty, non-nil result set.
func (s *Service) Search(ctx context.Context, query string) (domain.ResultSet, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return domain.ResultSet{}, nil
	}

	start := time.Now()
	tracks, err := s.searcher.Search(ctx, query, s.maxResults)
	if err != nil {
		s.publish(eventbus.ErrorEvent{Message: fmt.Sprintf("search %q failed", query), Err: err})
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	rs := s.collector.Collect(tracks)
	if rs == nil {
		rs = domain.ResultSet{}
	}
	index.SortByName(rs)
	index.SortTracks(rs)

	logging.Debug("search completed", "query", query, "groups", len(rs), "tracks", len(tracks), "took", time.Since(start))
	s.publish(eventbus.SearchCompletedEvent{
		Query:      query,
		GroupCount: len(rs),
		TrackCount: len(tracks),
	})
	return rs, nil
}

func (s *Service) publish(e eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(e)
	}
}
