package driving

import (
	"context"

	"github.com/custodia-labs/lovsok/internal/core/domain"
)

// SearchService provides search capabilities to external actors.
type SearchService interface {
	// Search ranks every indexed document against a free-text query.
	// It returns domain.ErrCorpusEmpty when nothing was loaded.
	Search(ctx context.Context, query string, opts domain.SearchOptions) (*domain.SearchResponse, error)
}
