// Package tui provides an interactive terminal browser for the corpus.
// It is a driving adapter over the search and document services.
package tui

import (
	"errors"

	"github.com/custodia-labs/lovsok/internal/core/ports/driving"
)

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("tui: search service is required")

// ErrMissingDocumentService is returned when the document service is not provided.
var ErrMissingDocumentService = errors.New("tui: document service is required")

// Ports aggregates the driving ports the TUI needs.
type Ports struct {
	Search   driving.SearchService
	Document driving.DocumentService

	// SearchLimit is the result count per query; 0 uses the service default.
	SearchLimit int

	// Status is shown in the status bar before the first search.
	Status string
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Document == nil {
		return ErrMissingDocumentService
	}
	return nil
}
