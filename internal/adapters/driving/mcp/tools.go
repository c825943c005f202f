package mcp

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/lovsok/internal/core/domain"
	"github.com/custodia-labs/lovsok/internal/logger"
)

// SearchInput is the input schema for the search_lovdata tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"free-text query, Norwegian or English"`
	Kind  string `json:"kind,omitempty" jsonschema:"optional filter: law, regulation or other"`
	Limit *int   `json:"limit,omitempty" jsonschema:"maximum number of results, 1 to 100 (default 20)"`
}

// ListInput is the input schema for the list_documents tool.
type ListInput struct {
	Kind   string `json:"kind,omitempty" jsonschema:"optional filter: law, regulation or other"`
	Limit  *int   `json:"limit,omitempty" jsonschema:"maximum number of items, 1 to 200 (default 50)"`
	Offset int    `json:"offset,omitempty" jsonschema:"start offset for paging, 0-based"`
}

// DocumentInput is the input schema for the get_document tool.
type DocumentInput struct {
	DocID string `json:"doc_id" jsonschema:"document id, e.g. nl-19990226-013"`
}

// SectionInput is the input schema for the get_section tool.
type SectionInput struct {
	DocID        string `json:"doc_id" jsonschema:"document id"`
	HeadingQuery string `json:"heading_query" jsonschema:"text to find in a section heading, case-insensitive"`
}

// RawViewInput is the input schema for the get_raw_view tool.
type RawViewInput struct {
	DocID string  `json:"doc_id" jsonschema:"document id"`
	Fmt   *string `json:"fmt,omitempty" jsonschema:"one of xml, html, markdown, json (default xml)"`
}

// StatsInput is the input schema for the corpus_stats tool.
type StatsInput struct{}

// registerTools registers all tool handlers with the MCP server.
// Handlers return either the result payload or a ToolError.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_lovdata",
		Description: "Search across the local Lovdata corpus of Norwegian laws and regulations",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_documents",
		Description: "List documents in the corpus with light metadata",
	}, s.handleList)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_document",
		Description: "Return a full parsed document: metadata, sections, canonical text and paths",
	}, s.handleGetDocument)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_section",
		Description: "Return the first section of a document whose heading contains heading_query",
	}, s.handleGetSection)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_raw_view",
		Description: "Return a raw on-disk representation of a document (xml, html, markdown or json)",
	}, s.handleGetRawView)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "corpus_stats",
		Description: "Summarise the loaded corpus snapshot",
	}, s.handleStats)
}

// handleSearch handles the search_lovdata tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, any, error) {
	opts := domain.SearchOptions{Kind: domain.Kind(input.Kind)}
	if input.Limit != nil {
		opts.Limit = domain.ClampLimit(*input.Limit, domain.MaxSearchLimit)
	}

	resp, err := s.ports.Search.Search(ctx, input.Query, opts)
	if err != nil {
		return nil, s.fail("search_lovdata", err, errorSubject{}), nil
	}
	return nil, resp, nil
}

// handleList handles the list_documents tool invocation.
func (s *Server) handleList(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListInput,
) (*mcp.CallToolResult, any, error) {
	opts := domain.ListOptions{Kind: domain.Kind(input.Kind), Offset: input.Offset}
	if input.Limit != nil {
		opts.Limit = domain.ClampLimit(*input.Limit, domain.MaxListLimit)
	}

	page, err := s.ports.Document.List(ctx, opts)
	if err != nil {
		return nil, s.fail("list_documents", err, errorSubject{}), nil
	}
	return nil, page, nil
}

// handleGetDocument handles the get_document tool invocation.
func (s *Server) handleGetDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DocumentInput,
) (*mcp.CallToolResult, any, error) {
	doc, err := s.ports.Document.Get(ctx, input.DocID)
	if err != nil {
		return nil, s.fail("get_document", err, errorSubject{DocID: input.DocID}), nil
	}
	return nil, doc, nil
}

// handleGetSection handles the get_section tool invocation.
func (s *Server) handleGetSection(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SectionInput,
) (*mcp.CallToolResult, any, error) {
	match, err := s.ports.Document.GetSection(ctx, input.DocID, input.HeadingQuery)
	if err != nil {
		subj := errorSubject{DocID: input.DocID, Heading: input.HeadingQuery}
		return nil, s.fail("get_section", err, subj), nil
	}
	return nil, match, nil
}

// handleGetRawView handles the get_raw_view tool invocation.
func (s *Server) handleGetRawView(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RawViewInput,
) (*mcp.CallToolResult, any, error) {
	format := string(domain.FormatXML)
	if input.Fmt != nil {
		format = strings.ToLower(*input.Fmt)
	}

	view, err := s.ports.Document.GetRawView(ctx, input.DocID, domain.Format(format))
	if err != nil {
		subj := errorSubject{DocID: input.DocID, Format: format}
		return nil, s.fail("get_raw_view", err, subj), nil
	}
	return nil, view, nil
}

// handleStats handles the corpus_stats tool invocation.
func (s *Server) handleStats(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ StatsInput,
) (*mcp.CallToolResult, any, error) {
	stats, err := s.ports.Corpus.Stats(ctx)
	if err != nil {
		return nil, s.fail("corpus_stats", err, errorSubject{}), nil
	}
	return nil, stats, nil
}

// fail logs a tool failure and converts it to a payload.
func (s *Server) fail(tool string, err error, subj errorSubject) ToolError {
	te := toolError(err, subj)
	if te.Error == CodeInternal {
		logger.Error("%s: %v", tool, err)
	} else {
		logger.Debug("%s: %s: %v", tool, te.Error, err)
	}
	return te
}
