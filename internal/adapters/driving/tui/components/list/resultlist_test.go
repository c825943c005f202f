package list

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lovsok/internal/core/domain"
)

func testResults(n int) []domain.SearchResult {
	results := make([]domain.SearchResult, n)
	for i := range results {
		results[i] = domain.SearchResult{
			ID:      fmt.Sprintf("nl-%d", i),
			Kind:    domain.KindLaw,
			Title:   fmt.Sprintf("Lov nummer %d", i),
			Score:   n - i,
			Snippet: "...om fiske\n  i sjø...",
		}
	}
	return results
}

func TestNewResultList(t *testing.T) {
	r := NewResultList(nil)

	require.NotNil(t, r)
	assert.NotNil(t, r.styles)
	assert.Equal(t, 0, r.Count())
	assert.Nil(t, r.SelectedResult())
}

func TestResultList_EmptyView(t *testing.T) {
	assert.Contains(t, NewResultList(nil).View(), "No results")
}

func TestResultList_View(t *testing.T) {
	r := NewResultList(nil)
	r.SetDimensions(80, 20)
	r.SetResults(testResults(2))

	view := r.View()

	assert.Contains(t, view, "Results (2)")
	assert.Contains(t, view, "> Lov nummer 0")
	assert.Contains(t, view, "(2)")
	assert.Contains(t, view, "nl-1  law")
	assert.Contains(t, view, "...om fiske i sjø...")
}

func TestResultList_Navigation(t *testing.T) {
	r := NewResultList(nil)
	r.SetResults(testResults(3))

	r.MoveUp()
	assert.Equal(t, 0, r.Selected())

	r, _ = r.Update(tea.KeyMsg{Type: tea.KeyDown})
	r, _ = r.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	assert.Equal(t, 2, r.Selected())

	r.MoveDown()
	assert.Equal(t, 2, r.Selected())
	assert.Equal(t, "nl-2", r.SelectedResult().ID)

	r, _ = r.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	assert.Equal(t, 1, r.Selected())
}

func TestResultList_SetResultsResetsSelection(t *testing.T) {
	r := NewResultList(nil)
	r.SetResults(testResults(3))
	r.MoveDown()

	r.SetResults(testResults(1))

	assert.Equal(t, 0, r.Selected())
	assert.Len(t, r.Results(), 1)
}

func TestResultList_ScrollsToSelection(t *testing.T) {
	r := NewResultList(nil)
	r.SetDimensions(80, 8)
	r.SetResults(testResults(5))
	for range 4 {
		r.MoveDown()
	}

	view := r.View()

	assert.Contains(t, view, "> Lov nummer 4")
	assert.NotContains(t, view, "Lov nummer 0")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "kort", truncate("kort", 10))
	assert.Equal(t, "særs...", truncate("særskilt lang", 7))
	assert.Equal(t, "ab", truncate("abcdef", 2))
	assert.Equal(t, 7, len([]rune(truncate(strings.Repeat("å", 20), 7))))
}
