package ui

import (
	"tunegrip/internal/domain"
	"tunegrip/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// searchResultMsg carries the answer to one query
type searchResultMsg struct {
	seq     uint64
	query   string
	results domain.ResultSet
	err     error
}

// pagerMsg is returned once the results pager exits
type pagerMsg struct {
	err error
}

type pauseRenderingMsg struct{}

type resumeRenderingMsg struct{}
