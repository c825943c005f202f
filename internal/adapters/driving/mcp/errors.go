// Package mcp provides an MCP (Model Context Protocol) server adapter for lovsok.
// It exposes search and document access over the local Lovdata corpus to AI
// assistants.
package mcp

import (
	"errors"
	"fmt"

	"github.com/custodia-labs/lovsok/internal/core/domain"
)

// Port validation errors.
var (
	ErrMissingSearchService   = errors.New("mcp: search service is required")
	ErrMissingDocumentService = errors.New("mcp: document service is required")
	ErrMissingCorpusService   = errors.New("mcp: corpus service is required")
)

// Error codes reported to clients.
const (
	CodeCorpusEmpty         = "corpus_empty"
	CodeInvalidKind         = "invalid_kind"
	CodeNotFound            = "not_found"
	CodeInvalidHeadingQuery = "invalid_heading_query"
	CodeSectionNotFound     = "section_not_found"
	CodeInvalidFormat       = "invalid_format"
	CodeFormatNotAvailable  = "format_not_available"
	CodeFileMissing         = "file_missing"
	CodeInternal            = "internal"
)

// ToolError is the payload returned by a tool call that failed.
type ToolError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// errorSubject carries the call arguments used in error messages.
type errorSubject struct {
	DocID   string
	Heading string
	Format  string
}

// toolError maps a service error to a client payload.
func toolError(err error, subj errorSubject) ToolError {
	switch {
	case errors.Is(err, domain.ErrCorpusEmpty):
		return ToolError{CodeCorpusEmpty, "No documents loaded from the corpus."}
	case errors.Is(err, domain.ErrInvalidKind):
		return ToolError{CodeInvalidKind, "kind must be one of: law, regulation, other."}
	case errors.Is(err, domain.ErrNotFound):
		return ToolError{CodeNotFound, fmt.Sprintf("Document '%s' not found in corpus.", subj.DocID)}
	case errors.Is(err, domain.ErrInvalidInput):
		return ToolError{CodeInvalidHeadingQuery, "heading_query must be a non-empty string."}
	case errors.Is(err, domain.ErrSectionNotFound):
		return ToolError{CodeSectionNotFound, fmt.Sprintf(
			"No section whose heading matches '%s' was found in '%s'.", subj.Heading, subj.DocID)}
	case errors.Is(err, domain.ErrInvalidFormat):
		return ToolError{CodeInvalidFormat, "fmt must be one of: xml, html, markdown, json."}
	case errors.Is(err, domain.ErrFormatNotAvailable):
		return ToolError{CodeFormatNotAvailable, fmt.Sprintf(
			"Format '%s' not available for '%s'.", subj.Format, subj.DocID)}
	case errors.Is(err, domain.ErrFileMissing):
		return ToolError{CodeFileMissing, err.Error()}
	default:
		return ToolError{CodeInternal, err.Error()}
	}
}
