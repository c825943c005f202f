package cli

import (
	"bytes"
	"context"
	"sort"

	"github.com/custodia-labs/lovsok/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	response *domain.SearchResponse
	err      error
	gotQuery string
	gotOpts  domain.SearchOptions
}

func (m *mockSearchService) Search(_ context.Context, query string, opts domain.SearchOptions) (*domain.SearchResponse, error) {
	m.gotQuery = query
	m.gotOpts = opts
	return m.response, m.err
}

// mockDocumentService is a mock implementation of driving.DocumentService.
type mockDocumentService struct {
	page     *domain.ListPage
	document *domain.Document
	section  *domain.SectionMatch
	view     *domain.RawView
	err      error

	gotList    domain.ListOptions
	gotID      string
	gotHeading string
	gotFormat  domain.Format
}

func (m *mockDocumentService) List(_ context.Context, opts domain.ListOptions) (*domain.ListPage, error) {
	m.gotList = opts
	return m.page, m.err
}

func (m *mockDocumentService) Get(_ context.Context, id string) (*domain.Document, error) {
	m.gotID = id
	return m.document, m.err
}

func (m *mockDocumentService) GetSection(_ context.Context, id, heading string) (*domain.SectionMatch, error) {
	m.gotID = id
	m.gotHeading = heading
	return m.section, m.err
}

func (m *mockDocumentService) GetRawView(_ context.Context, id string, format domain.Format) (*domain.RawView, error) {
	m.gotID = id
	m.gotFormat = format
	return m.view, m.err
}

// mockCorpusService is a mock implementation of driving.CorpusService.
type mockCorpusService struct {
	stats    *domain.CorpusStats
	err      error
	rebuilds int
}

func (m *mockCorpusService) Build(_ context.Context) (*domain.Corpus, error) {
	return nil, m.err
}

func (m *mockCorpusService) Rebuild(_ context.Context) error {
	m.rebuilds++
	return m.err
}

func (m *mockCorpusService) Snapshot() *domain.Corpus { return nil }

func (m *mockCorpusService) Stats(_ context.Context) (*domain.CorpusStats, error) {
	return m.stats, m.err
}

// mockConfigStore implements driven.ConfigStore for testing.
type mockConfigStore struct {
	values map[string]any
	setErr error
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *mockConfigStore) GetString(key string) string {
	s, _ := m.values[key].(string)
	return s
}

func (m *mockConfigStore) GetInt(key string) int {
	n, _ := m.values[key].(int)
	return n
}

func (m *mockConfigStore) Keys() []string {
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m *mockConfigStore) Set(key string, value any) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

func (m *mockConfigStore) Load() error { return nil }

func (m *mockConfigStore) Path() string { return "/home/test/.lovsok/config.toml" }

// testServices holds the mocks installed by setupTestServices.
type testServices struct {
	search   *mockSearchService
	document *mockDocumentService
	corpus   *mockCorpusService
	config   *mockConfigStore

	bootErr error
	gotOpts []Options
}

// setupTestServices installs mock services and returns them with a cleanup
// function that restores global state.
func setupTestServices() (*testServices, func()) {
	ts := &testServices{
		search:   &mockSearchService{response: &domain.SearchResponse{Results: []domain.SearchResult{}}},
		document: &mockDocumentService{},
		corpus:   &mockCorpusService{stats: &domain.CorpusStats{ByKind: map[domain.Kind]int{}}},
		config:   &mockConfigStore{values: map[string]any{}},
	}

	original := bootstrap
	bootstrap = func(_ context.Context, opts Options) (*Services, error) {
		ts.gotOpts = append(ts.gotOpts, opts)
		if ts.bootErr != nil {
			return nil, ts.bootErr
		}
		settings := domain.DefaultCorpusSettings()
		if opts.DataRoot != "" {
			settings.DataRoot = opts.DataRoot
		}
		return &Services{
			Search:   ts.search,
			Document: ts.document,
			Corpus:   ts.corpus,
			Config:   ts.config,
			Settings: settings,
		}, nil
	}

	return ts, func() {
		bootstrap = original
		resetFlags()
	}
}

// resetFlags restores flag variables changed by earlier executions.
func resetFlags() {
	verbose, configPath, dataRoot = false, "", ""
	searchKind, searchLimit, searchJSON = "", 0, false
	searchCmd.Flags().Lookup("limit").Changed = false
	listKind, listLimit, listOffset, listJSON = "", domain.DefaultListLimit, 0, false
	documentJSON, documentFormat = false, string(domain.FormatXML)
	statsJSON, versionJSON = false, false
	_ = mcpServeCmd.Flags().Set("port", "0")
	_ = mcpServeCmd.Flags().Set("watch", "false")
	_ = mcpServeCmd.Flags().Set("rate", "0")
	rootCmd.SetArgs(nil)
}

// run executes the root command with args and returns its output.
func run(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}
