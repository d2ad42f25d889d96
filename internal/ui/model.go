package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tunegrip/internal/config"
	"tunegrip/internal/domain"
	"tunegrip/internal/eventbus"
	"tunegrip/internal/logging"
	"tunegrip/internal/search"
	"tunegrip/internal/ui/views"
)

// SearchTimeout bounds a single search
const SearchTimeout = 5 * time.Second

// rows taken by the title, input and help lines
const chromeHeight = 5

// Searcher runs a query and returns grouped results
type Searcher interface {
	Search(ctx context.Context, query string) (domain.ResultSet, error)
}

// Model represents the UI state
type Model struct {
	config   *config.Config
	store    *search.Store
	searcher Searcher

	styles  *views.Styles
	icons   *views.Icons
	list    *views.GroupList
	results *views.ResultsView // nil while unmounted
	body    string             // last output of the results view

	width    int
	height   int
	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model
	help     help.Model
	keys     keyMap
	helpText *HelpRenderer

	searching   bool
	searchSeq   uint64 // id of the latest search issued
	showHelp    bool
	inPagerMode bool
	status      string
	statusErr   bool

	pager Pager
}

// NewModel creates a new UI model. The results view is constructed and
// mounted by Init.
func NewModel(cfg *config.Config, store *search.Store, searcher Searcher) *Model {
	styles := views.NewStyles()
	icons := views.NewIcons(styles)

	in := textinput.New()
	in.Placeholder = "search tracks, artists, albums"
	in.Prompt = "> "
	in.PromptStyle = styles.Prompt
	in.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Icon

	return &Model{
		config:   cfg,
		store:    store,
		searcher: searcher,
		styles:   styles,
		icons:    icons,
		list: views.NewGroupList(styles, icons, views.GroupListOptions{
			ShowTrackNumbers: cfg.UI.ShowTrackNumbers,
			ShowDurations:    cfg.UI.ShowDurations,
		}),
		input:    in,
		viewport: viewport.New(80, 20),
		spinner:  sp,
		help:     help.New(),
		keys:     newKeyMap(),
		helpText: NewHelpRenderer(),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pager.SetProgram(p)
}

// Init mounts the results view and starts the cursor blink
func (m *Model) Init() tea.Cmd {
	m.mountResults()
	return textinput.Blink
}

// Close unmounts the results view. Safe to call more than once.
func (m *Model) Close() {
	m.unmountResults()
}

// Mounted reports whether a results view is currently subscribed
func (m *Model) Mounted() bool {
	return m.results != nil
}

func (m *Model) mountResults() {
	if m.results != nil {
		return
	}
	m.results = views.NewResultsView(m.store,
		views.WithStyles(m.styles),
		views.WithListRenderer(m.list),
		views.WithIconRenderer(m.icons),
		views.WithRenderHook(m.setBody),
	)
	m.results.Mount()
	m.setBody(m.results.Render())
}

func (m *Model) unmountResults() {
	if m.results == nil {
		return
	}
	m.results.Unmount()
	m.results = nil
}

func (m *Model) setBody(out string) {
	m.body = out
	m.viewport.SetContent(out)
	m.viewport.GotoTop()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = msg.Width - 4
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-chromeHeight)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case searchResultMsg:
		return m.handleSearchResult(msg)

	case EventMsg:
		return m.handleEvent(msg.Event)

	case spinner.TickMsg:
		if !m.searching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case pagerMsg:
		if msg.err != nil {
			logging.Error("pager failed", "err", msg.err)
			m.setStatus(fmt.Sprintf("pager: %v", msg.err), true)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Help), msg.String() == "esc", msg.String() == "q":
			m.showHelp = false
			m.mountResults()
		case msg.String() == "ctrl+c":
			m.unmountResults()
			return m, tea.Quit
		}
		return m, nil
	}

	// printable keys belong to the query while it has focus
	typing := m.input.Focused() && msg.Type == tea.KeyRunes

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.unmountResults()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Focus):
		if m.input.Focused() {
			m.input.Blur()
		} else {
			return m, m.input.Focus()
		}
		return m, nil

	case !typing && key.Matches(msg, m.keys.Help):
		m.showHelp = true
		m.unmountResults()
		return m, nil

	case !typing && key.Matches(msg, m.keys.Pager):
		return m, m.showPager(m.body)

	case key.Matches(msg, m.keys.Clear):
		m.input.SetValue("")
		m.searchSeq++
		m.searching = false
		m.list.SetHighlight("")
		m.store.Clear()
		return m, nil

	case !typing && key.Matches(msg, m.keys.Up):
		m.viewport.LineUp(1)
		return m, nil

	case !typing && key.Matches(msg, m.keys.Down):
		m.viewport.LineDown(1)
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.HalfViewDown()
		return m, nil
	}

	if !m.input.Focused() {
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.startSearch(m.input.Value()))
}

// startSearch issues a search for query. Replies to earlier searches are
// dropped once this one is issued.
func (m *Model) startSearch(query string) tea.Cmd {
	m.searchSeq++
	m.searching = true
	return tea.Batch(m.runSearch(m.searchSeq, query), m.spinner.Tick)
}

func (m *Model) runSearch(seq uint64, query string) tea.Cmd {
	searcher := m.searcher
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), SearchTimeout)
		defer cancel()
		rs, err := searcher.Search(ctx, query)
		return searchResultMsg{seq: seq, query: strings.TrimSpace(query), results: rs, err: err}
	}
}

func (m *Model) handleSearchResult(msg searchResultMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.searchSeq {
		logging.Debug("dropping stale search reply", "query", msg.query, "seq", msg.seq, "latest", m.searchSeq)
		return m, nil
	}
	m.searching = false

	if msg.err != nil {
		m.setStatus(fmt.Sprintf("search failed: %v", msg.err), true)
		return m, nil
	}

	m.list.SetHighlight(msg.query)
	m.store.SetResults(msg.query, msg.results)
	logging.Debug("results replaced", "query", msg.query, "seq", msg.seq, "generation", m.store.Generation())
	if msg.query == "" {
		m.setStatus("", false)
	} else {
		m.setStatus(fmt.Sprintf("%d tracks in %d groups", msg.results.TrackCount(), len(msg.results)), false)
	}
	return m, nil
}

// handleEvent processes domain events forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) (tea.Model, tea.Cmd) {
	switch e := event.(type) {
	case eventbus.LibraryLoadedEvent:
		m.setStatus(fmt.Sprintf("library loaded: %d tracks", e.TrackCount), false)

	case eventbus.LibraryChangedEvent:
		m.setStatus(fmt.Sprintf("library reloaded: %d tracks", e.TrackCount), false)
		if q := m.input.Value(); strings.TrimSpace(q) != "" {
			return m, m.startSearch(q)
		}

	case eventbus.ErrorEvent:
		m.setStatus(e.Message, true)
	}
	return m, nil
}

// showPager returns a command that pages content through ov, pausing and
// resuming rendering around it
func (m *Model) showPager(content string) tea.Cmd {
	program := m.pager.program
	if program == nil {
		return func() tea.Msg { return pagerMsg{err: fmt.Errorf("program not set")} }
	}
	pager := m.pager
	return func() tea.Msg {
		program.Send(pauseRenderingMsg{})
		err := pager.Show(content)
		program.Send(resumeRenderingMsg{})
		return pagerMsg{err: err}
	}
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	if m.showHelp {
		overlay := m.styles.Overlay.Render(m.helpText.RenderHelpContent())
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlay)
	}

	title := m.styles.Title.Render("tunegrip")
	if m.searching {
		title += " " + m.spinner.View()
	}
	if m.status != "" {
		style := m.styles.Dim
		if m.statusErr {
			style = m.styles.StatusError
		}
		title += "  " + style.Render(m.status)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.input.View(),
		"",
		m.viewport.View(),
		m.styles.Help.Render(m.help.View(m.keys)),
	)
}
