package views

import (
	"fmt"

	"tunegrip/internal/domain"
	"tunegrip/internal/search"
)

const (
	// EmptyIcon is the icon drawn in front of EmptyMessage
	EmptyIcon = "audiotrack"
	// EmptyMessage is shown when a search has no results
	EmptyMessage = "No results found"
)

// ListRenderer draws a non-empty result set
type ListRenderer interface {
	RenderList(path domain.Path, list domain.ResultSet, depth int) string
}

// IconRenderer draws a named icon
type IconRenderer interface {
	RenderIcon(name string) string
}

// DisplayState is the snapshot of results a ResultsView last pulled
type DisplayState struct {
	Results domain.ResultSet
}

// ResultsView shows the results held by a search.Source and follows the
// source while mounted.
//
// Lifecycle: NewResultsView pulls the initial state without subscribing,
// Mount subscribes, Unmount unsubscribes. Hosts call Mount and Unmount
// exactly once per mount, from the goroutine that mutates the source, and
// should defer Unmount so the subscription is released on every exit path.
// After Unmount returns the source never calls the view again.
type ResultsView struct {
	source   search.Source
	state    DisplayState
	styles   *Styles
	list     ListRenderer
	icons    IconRenderer
	onRender func(string)
}

// Option configures a ResultsView
type Option func(*ResultsView)

// WithStyles sets the styles used for the empty state and default renderers
func WithStyles(s *Styles) Option {
	return func(v *ResultsView) { v.styles = s }
}

// WithListRenderer replaces the default GroupList renderer
func WithListRenderer(r ListRenderer) Option {
	return func(v *ResultsView) { v.list = r }
}

// WithIconRenderer replaces the default icon renderer
func WithIconRenderer(r IconRenderer) Option {
	return func(v *ResultsView) { v.icons = r }
}

// WithRenderHook registers fn to receive the output of every re-render
// caused by a source change
func WithRenderHook(fn func(string)) Option {
	return func(v *ResultsView) { v.onRender = fn }
}

// NewResultsView creates a view over source and pulls its current results.
// It does not subscribe; call Mount for that.
func NewResultsView(source search.Source, opts ...Option) *ResultsView {
	v := &ResultsView{source: source}
	for _, opt := range opts {
		opt(v)
	}
	if v.styles == nil {
		v.styles = NewStyles()
	}
	if v.icons == nil {
		v.icons = NewIcons(v.styles)
	}
	if v.list == nil {
		v.list = NewGroupList(v.styles, v.icons, GroupListOptions{})
	}

	v.state = v.pull()
	return v
}

// Mount subscribes the view to source changes
func (v *ResultsView) Mount() {
	v.source.AddChangeListener(v)
}

// Unmount releases the subscription made by Mount
func (v *ResultsView) Unmount() {
	v.source.RemoveChangeListener(v)
}

// ResultsChanged implements search.ChangeListener. It replaces the display
// state with a fresh pull and re-renders once.
func (v *ResultsView) ResultsChanged() {
	v.state = v.pull()
	out := v.Render()
	if v.onRender != nil {
		v.onRender(out)
	}
}

// State returns the current display state
func (v *ResultsView) State() DisplayState {
	return v.state
}

// Render draws the display state: the empty state for an empty result set,
// otherwise the group list rooted at depth 0.
func (v *ResultsView) Render() string {
	if len(v.state.Results) == 0 {
		return v.styles.NoResults.Render(v.icons.RenderIcon(EmptyIcon) + " " + EmptyMessage)
	}
	return v.list.RenderList(domain.RootPath(), v.state.Results, 0)
}

// pull reads the source. A nil group breaks the source contract and is
// not recoverable here.
func (v *ResultsView) pull() DisplayState {
	rs := v.source.Results()
	for i, g := range rs {
		if g == nil {
			panic(fmt.Sprintf("views: result source returned a nil group at index %d", i))
		}
	}
	return DisplayState{Results: rs}
}
