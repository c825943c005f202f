// Package search provides the query and result view for the TUI.
package search

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/lovsok/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/lovsok/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/lovsok/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/lovsok/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/lovsok/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/lovsok/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/lovsok/internal/core/domain"
	"github.com/custodia-labs/lovsok/internal/core/ports/driving"
)

// ErrNoSearchService indicates that no search service was provided.
var ErrNoSearchService = errors.New("search service is required")

// View is the search view: query input, result list and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	list      *list.ResultList
	statusbar *status.Bar

	searchService driving.SearchService
	ctx           context.Context
	limit         int

	// seq numbers searches; only the latest one's response is shown.
	seq uint64

	width      int
	height     int
	ready      bool
	err        error
	focusInput bool
}

// NewView creates a search view. A limit of 0 uses the service default.
func NewView(s *styles.Styles, km *keymap.KeyMap, searchService driving.SearchService, limit int) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:        s,
		keymap:        km,
		input:         input.NewSearchInput(s),
		list:          list.NewResultList(s),
		statusbar:     status.NewBar(s),
		searchService: searchService,
		ctx:           context.Background(),
		limit:         limit,
		width:         80,
		height:        24,
		focusInput:    true,
	}
	v.statusbar.SetHints(km.InputHelp())
	return v
}

// WithContext sets the context searches run under.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SearchCompleted:
		v.handleSearchCompleted(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	var cmd tea.Cmd
	if v.focusInput {
		v.input, cmd = v.input.Update(msg)
	}
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if key.Matches(msg, v.keymap.Kind) {
		v.input.CycleKind()
		if !v.focusInput && v.input.Value() != "" {
			return v, v.submit()
		}
		return v, nil
	}

	if v.focusInput {
		switch {
		case key.Matches(msg, v.keymap.Back):
			if v.list.Count() > 0 {
				v.focusResults()
				return v, nil
			}
			return v, func() tea.Msg { return messages.Quit{} }
		case key.Matches(msg, v.keymap.Search):
			if v.input.Value() == "" {
				return v, nil
			}
			return v, v.submit()
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	switch {
	case key.Matches(msg, v.keymap.Open):
		if result := v.list.SelectedResult(); result != nil {
			id := result.ID
			return v, func() tea.Msg { return messages.DocumentSelected{ID: id} }
		}
		return v, nil
	case key.Matches(msg, v.keymap.NewSearch):
		v.focusInput = true
		v.input.SetValue("")
		v.statusbar.SetHints(v.keymap.InputHelp())
		return v, v.input.Focus()
	case key.Matches(msg, v.keymap.Back):
		return v, func() tea.Msg { return messages.Quit{} }
	}

	v.list, _ = v.list.Update(msg)
	return v, nil
}

// submit starts a search for the current query and filter.
func (v *View) submit() tea.Cmd {
	v.statusbar.SetState(status.StateSearching)
	v.input.Blur()
	v.focusInput = false
	return v.performSearch(v.input.Value(), domain.SearchOptions{Kind: v.input.Kind(), Limit: v.limit})
}

func (v *View) performSearch(query string, opts domain.SearchOptions) tea.Cmd {
	v.seq++
	seq := v.seq
	ctx := v.ctx
	svc := v.searchService
	return func() tea.Msg {
		if svc == nil {
			return messages.ErrorOccurred{Err: ErrNoSearchService}
		}
		resp, err := svc.Search(ctx, query, opts)
		return messages.SearchCompleted{Seq: seq, Response: resp, Err: err}
	}
}

func (v *View) handleSearchCompleted(msg messages.SearchCompleted) {
	if msg.Seq != v.seq {
		return
	}
	if msg.Err != nil {
		v.setError(msg.Err)
		return
	}

	v.err = nil
	var results []domain.SearchResult
	if msg.Response != nil {
		results = msg.Response.Results
	}
	v.list.SetResults(results)
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetResultCount(len(results))
	v.focusResults()
}

func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(describe(err))
	v.focusInput = true
	v.statusbar.SetHints(v.keymap.InputHelp())
	v.input.Focus()
}

func (v *View) focusResults() {
	v.focusInput = false
	v.input.Blur()
	v.statusbar.SetHints(v.keymap.ResultsHelp())
}

// describe turns a service error into a short status message.
func describe(err error) string {
	switch {
	case errors.Is(err, domain.ErrCorpusEmpty):
		return "no documents are loaded"
	case errors.Is(err, domain.ErrInvalidKind):
		return "invalid document kind"
	default:
		return err.Error()
	}
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Starting..."
	}

	sections := make([]string, 0, 8)
	sections = append(sections, v.styles.Title.Render("lovsok"), "", v.input.View(), "")

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+describe(v.err)), "")
	}

	sections = append(sections, v.list.View(), "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-8)
	v.statusbar.SetWidth(width)
}

// SetStatus shows a message in the status bar while idle.
func (v *View) SetStatus(message string) {
	v.statusbar.SetMessage(message)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the current search query.
func (v *View) Query() string {
	return v.input.Value()
}

// SetQuery sets the search query.
func (v *View) SetQuery(query string) {
	v.input.SetValue(query)
}

// Kind returns the active kind filter.
func (v *View) Kind() domain.Kind {
	return v.input.Kind()
}

// Results returns the current search results.
func (v *View) Results() []domain.SearchResult {
	return v.list.Results()
}

// SelectedIndex returns the index of the selected result.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}
