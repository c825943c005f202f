package mcp

import (
	"github.com/custodia-labs/lovsok/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search ranks documents against a query.
	Search driving.SearchService

	// Document gives access to single documents and their renderings.
	Document driving.DocumentService

	// Corpus reports on the loaded snapshot.
	Corpus driving.CorpusService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	switch {
	case p.Search == nil:
		return ErrMissingSearchService
	case p.Document == nil:
		return ErrMissingDocumentService
	case p.Corpus == nil:
		return ErrMissingCorpusService
	}
	return nil
}
