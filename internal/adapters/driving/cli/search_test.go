package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lovsok/internal/core/domain"
)

func TestSearchCmd_Use(t *testing.T) {
	assert.Equal(t, "search [query]", searchCmd.Use)
}

func TestSearchCmd_RequiresQuery(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := run("search")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg(s)")
}

func TestSearchCmd_HasLimitFlag(t *testing.T) {
	flag := searchCmd.Flags().Lookup("limit")
	require.NotNil(t, flag, "limit flag should exist")
	assert.Equal(t, "n", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)
}

func TestSearchCmd_PrintsResults(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.search.response = &domain.SearchResponse{
		Query: "fiske", Kind: "all", Limit: 10, Count: 1,
		Results: []domain.SearchResult{{
			ID: "nl-1", Kind: domain.KindLaw, Title: "Lov om fiske", Score: 3,
			Snippet: "...Fiske i\n  sjø...",
		}},
	}

	out, err := run("search", "fiske", "i", "sjø")
	require.NoError(t, err)

	assert.Equal(t, "fiske i sjø", ts.search.gotQuery)
	assert.Contains(t, out, "[1] Lov om fiske (3)")
	assert.Contains(t, out, "nl-1 law")
	assert.Contains(t, out, "...Fiske i sjø...")
}

func TestSearchCmd_Flags(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	_, err := run("search", "--kind", "regulation", "-n", "500", "fisk")
	require.NoError(t, err)

	assert.Equal(t, domain.KindRegulation, ts.search.gotOpts.Kind)
	assert.Equal(t, domain.MaxSearchLimit, ts.search.gotOpts.Limit)
}

func TestSearchCmd_LimitUnsetLeavesConfiguredDefault(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	_, err := run("search", "fisk")
	require.NoError(t, err)

	assert.Zero(t, ts.search.gotOpts.Limit)
}

func TestSearchCmd_ExplicitZeroLimitClampsToOne(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	_, err := run("search", "-n", "0", "fisk")
	require.NoError(t, err)

	assert.Equal(t, 1, ts.search.gotOpts.Limit)
}

func TestSearchCmd_LimitFlagDoesNotLeakBetweenRuns(t *testing.T) {
	ts, cleanup := setupTestServices()
	_, err := run("search", "-n", "5", "fisk")
	require.NoError(t, err)
	require.Equal(t, 5, ts.search.gotOpts.Limit)
	cleanup()

	ts, cleanup = setupTestServices()
	defer cleanup()
	_, err = run("search", "fisk")
	require.NoError(t, err)

	assert.Zero(t, ts.search.gotOpts.Limit)
}

func TestSearchCmd_NoResults(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := run("search", "romfart")
	require.NoError(t, err)

	assert.Contains(t, out, "No results found.")
}

func TestSearchCmd_JSON(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.search.response = &domain.SearchResponse{Query: "fisk", Kind: "all", Limit: 10, Results: []domain.SearchResult{}}

	out, err := run("search", "--json", "fisk")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "fisk", decoded["query"])
	assert.Equal(t, "all", decoded["kind"])
}

func TestSearchCmd_CorpusEmpty(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.search.err = domain.ErrCorpusEmpty

	_, err := run("search", "--data-root", "/srv/empty", "fisk")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no documents loaded from /srv/empty/xml_pretty")
}

func TestOneLine(t *testing.T) {
	assert.Equal(t, "a b c", oneLine("  a\n\tb   c "))
}
