package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/lovsok/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/lovsok/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/lovsok/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/lovsok/internal/adapters/driving/tui/views/reader"
	"github.com/custodia-labs/lovsok/internal/adapters/driving/tui/views/search"
)

// App is the root Bubbletea model. It routes messages between the search
// view and the reader.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	searchView *search.View
	readerView *reader.View

	currentView messages.ViewType
	width       int
	height      int
	ready       bool
}

var _ tea.Model = (*App)(nil)

// NewApp creates the browser over the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	searchView := search.NewView(s, km, ports.Search, ports.SearchLimit)
	searchView.SetStatus(ports.Status)

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		searchView:  searchView,
		readerView:  reader.NewView(s, km, ports.Document),
		currentView: messages.ViewSearch,
	}, nil
}

// WithContext sets the context service calls run under.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.searchView.WithContext(ctx)
	a.readerView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("lovsok"),
		a.searchView.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.searchView.SetDimensions(msg.Width, msg.Height)
		a.readerView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case messages.Quit:
		return a, tea.Quit

	case messages.DocumentSelected:
		a.currentView = messages.ViewReader
		return a, a.readerView.Open(msg.ID)

	case messages.DocumentLoaded:
		a.readerView, cmd = a.readerView.Update(msg)
		return a, cmd

	case messages.SearchCompleted:
		a.searchView, cmd = a.searchView.Update(msg)
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil
	}

	switch a.currentView {
	case messages.ViewSearch:
		a.searchView, cmd = a.searchView.Update(msg)
	case messages.ViewReader:
		a.readerView, cmd = a.readerView.Update(msg)
	}
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Starting..."
	}

	if a.currentView == messages.ViewReader {
		return a.readerView.View()
	}
	return a.searchView.View()
}

// Run starts the browser in the alternate screen and blocks until it exits.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the active view.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Ready returns whether the app has received its first window size.
func (a *App) Ready() bool {
	return a.ready
}
