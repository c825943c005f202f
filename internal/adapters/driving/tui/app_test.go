package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lovsok/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/lovsok/internal/core/domain"
)

type mockSearchService struct {
	response *domain.SearchResponse
}

func (m *mockSearchService) Search(context.Context, string, domain.SearchOptions) (*domain.SearchResponse, error) {
	return m.response, nil
}

type mockDocumentService struct {
	doc *domain.Document
}

func (m *mockDocumentService) List(context.Context, domain.ListOptions) (*domain.ListPage, error) {
	return nil, nil
}

func (m *mockDocumentService) Get(_ context.Context, id string) (*domain.Document, error) {
	if m.doc == nil || m.doc.ID != id {
		return nil, domain.ErrNotFound
	}
	return m.doc, nil
}

func (m *mockDocumentService) GetSection(context.Context, string, string) (*domain.SectionMatch, error) {
	return nil, nil
}

func (m *mockDocumentService) GetRawView(context.Context, string, domain.Format) (*domain.RawView, error) {
	return nil, nil
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	doc := &domain.Document{ID: "nl-1", Kind: domain.KindLaw, Title: "Lov om fiske"}
	doc.SetCanonicalText("Fiske i sjø.")
	ports := &Ports{
		Search: &mockSearchService{response: &domain.SearchResponse{
			Results: []domain.SearchResult{{ID: "nl-1", Kind: domain.KindLaw, Title: "Lov om fiske", Score: 1}},
		}},
		Document: &mockDocumentService{doc: doc},
		Status:   "2 documents",
	}
	app, err := NewApp(ports)
	require.NoError(t, err)
	_, _ = app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return app
}

// drain runs cmd and feeds its message back into the app once.
func drain(app *App, cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	_, next := app.Update(cmd())
	return next
}

func TestPorts_Validate(t *testing.T) {
	var nilPorts *Ports
	assert.ErrorIs(t, nilPorts.Validate(), ErrMissingSearchService)
	assert.ErrorIs(t, (&Ports{}).Validate(), ErrMissingSearchService)
	assert.ErrorIs(t, (&Ports{Search: &mockSearchService{}}).Validate(), ErrMissingDocumentService)
	assert.NoError(t, (&Ports{Search: &mockSearchService{}, Document: &mockDocumentService{}}).Validate())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	_, err := NewApp(&Ports{})

	assert.ErrorIs(t, err, ErrMissingSearchService)
}

func TestApp_InitialState(t *testing.T) {
	app, err := NewApp(&Ports{Search: &mockSearchService{}, Document: &mockDocumentService{}})
	require.NoError(t, err)

	assert.False(t, app.Ready())
	assert.Equal(t, "Starting...", app.View())
	assert.Equal(t, messages.ViewSearch, app.CurrentView())
	assert.NotNil(t, app.Init())
}

func TestApp_StatusShownBeforeSearch(t *testing.T) {
	app := newTestApp(t)

	assert.Contains(t, app.View(), "2 documents")
}

func TestApp_SearchOpenAndBack(t *testing.T) {
	app := newTestApp(t)

	_, _ = app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("fiske")})
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	drain(app, cmd)
	assert.Contains(t, app.View(), "Lov om fiske")

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	load := drain(app, cmd)
	assert.Equal(t, messages.ViewReader, app.CurrentView())

	drain(app, load)
	assert.Contains(t, app.View(), "Fiske i sjø.")

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	drain(app, cmd)
	assert.Equal(t, messages.ViewSearch, app.CurrentView())
}

func TestApp_Quit(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = app.Update(messages.Quit{})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_WithContext(t *testing.T) {
	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "v")
	app := newTestApp(t)

	assert.Same(t, app, app.WithContext(ctx))
	assert.Equal(t, ctx, app.ctx)
}
