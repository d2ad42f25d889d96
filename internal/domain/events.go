package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventLibraryLoaded   EventType = "LibraryLoaded"
	EventLibraryChanged  EventType = "LibraryChanged"
	EventSearchCompleted EventType = "SearchCompleted"
	EventError           EventType = "Error"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// LibraryLoadedEvent is emitted once the library is first opened
type LibraryLoadedEvent struct {
	Source     string
	TrackCount int
}

func (e LibraryLoadedEvent) Type() EventType { return EventLibraryLoaded }

// LibraryChangedEvent is emitted when the library file was modified and reloaded
type LibraryChangedEvent struct {
	Source     string
	TrackCount int
}

func (e LibraryChangedEvent) Type() EventType { return EventLibraryChanged }

// SearchCompletedEvent is emitted after each search
type SearchCompletedEvent struct {
	Query      string
	GroupCount int
	TrackCount int
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path    string
	Library string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
