package driven

import (
	"context"

	"github.com/custodia-labs/lovsok/internal/core/domain"
)

// Normaliser transforms one raw source file into a Document.
// Implementations are pure: they perform no I/O and never panic on malformed
// markup. A wholly unreadable input is reported as an error wrapping
// domain.ErrParse.
type Normaliser interface {
	// Normalise parses raw.Content into a Document identified by raw.ID.
	// The returned Document has no Paths; the caller fills them in.
	Normalise(ctx context.Context, raw *domain.RawDocument) (*domain.Document, error)
}
