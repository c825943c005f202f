package driving

import (
	"context"

	"github.com/custodia-labs/lovsok/internal/core/domain"
)

// DocumentService gives read-only access to indexed documents.
type DocumentService interface {
	// List returns one page of document summaries in insertion order.
	List(ctx context.Context, opts domain.ListOptions) (*domain.ListPage, error)

	// Get retrieves a document by ID.
	Get(ctx context.Context, documentID string) (*domain.Document, error)

	// GetSection returns the first section whose heading matches headingQuery.
	GetSection(ctx context.Context, documentID, headingQuery string) (*domain.SectionMatch, error)

	// GetRawView reads one alternate representation from disk.
	GetRawView(ctx context.Context, documentID string, format domain.Format) (*domain.RawView, error)
}
