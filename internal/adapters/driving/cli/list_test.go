package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lovsok/internal/core/domain"
)

func strPtr(s string) *string { return &s }

func TestListCmd_PrintsItems(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.document.page = &domain.ListPage{
		Kind: "all", Offset: 0, Limit: 50, Total: 2,
		Items: []domain.ListItem{
			{ID: "nl-1", Kind: domain.KindLaw, Title: "Lov om fiske", ShortTitle: strPtr("Fiskeloven")},
			{ID: "sf-2", Kind: domain.KindRegulation, Title: "Forskrift"},
		},
	}

	out, err := run("list")
	require.NoError(t, err)

	assert.Contains(t, out, "nl-1  law  Lov om fiske (Fiskeloven)")
	assert.Contains(t, out, "sf-2  regulation  Forskrift")
	assert.Contains(t, out, "Showing 1-2 of 2")
	assert.Equal(t, domain.ListOptions{Limit: domain.DefaultListLimit}, ts.document.gotList)
}

func TestListCmd_Flags(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.document.page = &domain.ListPage{Items: []domain.ListItem{}}

	_, err := run("list", "--kind", "law", "--limit", "0", "--offset", "40")
	require.NoError(t, err)

	assert.Equal(t, domain.ListOptions{Kind: domain.KindLaw, Limit: 1, Offset: 40}, ts.document.gotList)
}

func TestListCmd_Empty(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.document.page = &domain.ListPage{Total: 3, Offset: 10, Items: []domain.ListItem{}}

	out, err := run("list", "--offset", "10")
	require.NoError(t, err)

	assert.Contains(t, out, "No documents (total 3, offset 10).")
}

func TestListCmd_JSON(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.document.page = &domain.ListPage{
		Kind: "law", Limit: 50, Total: 1,
		Items: []domain.ListItem{{ID: "nl-1", Kind: domain.KindLaw, Title: "Lov"}},
	}

	out, err := run("list", "--json")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	items := decoded["items"].([]any)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, "nl-1", item["id"])
	assert.Contains(t, item, "korttittel")
	assert.Nil(t, item["korttittel"])
}

func TestListCmd_InvalidKind(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.document.err = domain.ErrInvalidKind

	_, err := run("list", "--kind", "treaty")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "kind must be one of")
}
