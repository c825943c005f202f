package reader

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lovsok/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/lovsok/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/lovsok/internal/core/domain"
)

// mockDocumentService serves Get from a map.
type mockDocumentService struct {
	docs  map[string]*domain.Document
	gotID string
}

func (m *mockDocumentService) List(context.Context, domain.ListOptions) (*domain.ListPage, error) {
	return nil, nil
}

func (m *mockDocumentService) Get(_ context.Context, id string) (*domain.Document, error) {
	m.gotID = id
	doc, ok := m.docs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return doc, nil
}

func (m *mockDocumentService) GetSection(context.Context, string, string) (*domain.SectionMatch, error) {
	return nil, nil
}

func (m *mockDocumentService) GetRawView(context.Context, string, domain.Format) (*domain.RawView, error) {
	return nil, nil
}

func strPtr(s string) *string { return &s }

func testDocument(paragraphs int) *domain.Document {
	ps := make([]string, paragraphs)
	for i := range ps {
		ps[i] = fmt.Sprintf("Ledd %d om fiske.", i+1)
	}
	return &domain.Document{
		ID:       "nl-19830603-040",
		Kind:     domain.KindLaw,
		Title:    "Lov om saltvannsfiske",
		Metadata: map[string]string{"korttittel": "Saltvannsfiskeloven", "datokode": "LOV-1983-06-03-40"},
		Sections: []domain.Section{
			domain.NewSection(strPtr("§ 1. Formål"), ps),
		},
	}
}

func openAndLoad(t *testing.T, v *View, id string) *View {
	t.Helper()
	cmd := v.Open(id)
	require.NotNil(t, cmd)
	v, _ = v.Update(cmd())
	return v
}

func TestNewView(t *testing.T) {
	view := NewView(nil, nil, nil)

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
	assert.NotNil(t, view.keymap)
	assert.Nil(t, view.Document())
}

func TestView_OpenLoadsDocument(t *testing.T) {
	doc := testDocument(2)
	svc := &mockDocumentService{docs: map[string]*domain.Document{doc.ID: doc}}
	view := NewView(nil, nil, svc)
	view.SetDimensions(100, 30)

	cmd := view.Open(doc.ID)
	assert.True(t, view.Loading())
	assert.Contains(t, view.View(), "Loading document...")

	view, _ = view.Update(cmd())

	assert.Equal(t, doc.ID, svc.gotID)
	assert.False(t, view.Loading())
	assert.Same(t, doc, view.Document())

	out := view.View()
	assert.Contains(t, out, "Lov om saltvannsfiske")
	assert.Contains(t, out, "nl-19830603-040  law")
	assert.Contains(t, out, "korttittel: Saltvannsfiskeloven")
	assert.Contains(t, out, "§ 1. Formål")
	assert.Contains(t, out, "Ledd 2 om fiske.")
}

func TestView_NotFound(t *testing.T) {
	view := NewView(nil, nil, &mockDocumentService{})
	view.SetDimensions(100, 30)

	view = openAndLoad(t, view, "nl-missing")

	assert.ErrorIs(t, view.Err(), domain.ErrNotFound)
	assert.Contains(t, view.View(), `document "nl-missing" not found`)
}

func TestView_NoService(t *testing.T) {
	view := NewView(nil, nil, nil)

	view = openAndLoad(t, view, "nl-1")

	assert.ErrorIs(t, view.Err(), ErrNoDocumentService)
}

func TestView_IgnoresStaleLoad(t *testing.T) {
	view := NewView(nil, nil, &mockDocumentService{})
	view.Open("nl-2")

	view, _ = view.Update(messages.DocumentLoaded{ID: "nl-1", Document: testDocument(1)})

	assert.Nil(t, view.Document())
	assert.True(t, view.Loading())
}

func TestView_Scrolling(t *testing.T) {
	doc := testDocument(50)
	view := NewView(nil, nil, &mockDocumentService{docs: map[string]*domain.Document{doc.ID: doc}})
	view.SetDimensions(80, 15)
	view = openAndLoad(t, view, doc.ID)

	view, _ = view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	assert.Equal(t, 1, view.YOffset())

	view, _ = view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	assert.Greater(t, view.YOffset(), 1)

	view, _ = view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	assert.Equal(t, 0, view.YOffset())
}

func TestView_EscReturnsToSearch(t *testing.T) {
	view := NewView(nil, nil, nil)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewSearch}, cmd())
}

func TestRender_WithoutSectionsUsesCanonicalText(t *testing.T) {
	doc := &domain.Document{ID: "x", Title: "Untitled"}
	doc.SetCanonicalText("Bare tekst")

	out := Render(doc, styles.DefaultStyles(), 80)

	assert.Contains(t, out, "Bare tekst")
}

func TestRender_SortsMetadata(t *testing.T) {
	out := Render(testDocument(1), styles.DefaultStyles(), 80)

	assert.Less(t, strings.Index(out, "datokode"), strings.Index(out, "korttittel"))
}
