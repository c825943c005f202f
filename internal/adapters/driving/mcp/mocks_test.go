package mcp

import (
	"context"

	"github.com/custodia-labs/lovsok/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	response *domain.SearchResponse
	err      error

	gotQuery string
	gotOpts  domain.SearchOptions
}

func (m *mockSearchService) Search(
	_ context.Context,
	query string,
	opts domain.SearchOptions,
) (*domain.SearchResponse, error) {
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
	corpus *domain.Corpus
	stats  *domain.CorpusStats
	err    error
}

func (m *mockCorpusService) Build(_ context.Context) (*domain.Corpus, error) {
	return m.corpus, m.err
}

func (m *mockCorpusService) Rebuild(_ context.Context) error {
	return m.err
}

func (m *mockCorpusService) Snapshot() *domain.Corpus {
	return m.corpus
}

func (m *mockCorpusService) Stats(_ context.Context) (*domain.CorpusStats, error) {
	return m.stats, m.err
}

// newTestServer creates a server over the given mocks, filling nil ports.
func newTestServer(search *mockSearchService, docs *mockDocumentService, corpus *mockCorpusService) *Server {
	if search == nil {
		search = &mockSearchService{}
	}
	if docs == nil {
		docs = &mockDocumentService{}
	}
	if corpus == nil {
		corpus = &mockCorpusService{}
	}
	s, err := NewServer(&Ports{Search: search, Document: docs, Corpus: corpus})
	if err != nil {
		panic(err)
	}
	return s
}

func intPtr(n int) *int { return &n }

func strPtr(s string) *string { return &s }
