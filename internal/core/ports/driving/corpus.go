package driving

import (
	"context"

	"github.com/custodia-labs/lovsok/internal/core/domain"
)

// CorpusService owns the corpus snapshot lifecycle.
type CorpusService interface {
	// Build scans the source tree, parses every file and publishes the result
	// as the current snapshot.
	Build(ctx context.Context) (*domain.Corpus, error)

	// Rebuild builds a fresh snapshot and swaps it in. The previous snapshot
	// stays current if the build fails.
	Rebuild(ctx context.Context) error

	// Snapshot returns the current snapshot; nil before the first Build.
	Snapshot() *domain.Corpus

	// Stats summarises the current snapshot.
	Stats(ctx context.Context) (*domain.CorpusStats, error)
}
