package driven

import (
	"context"

	"github.com/custodia-labs/lovsok/internal/core/domain"
)

// CorpusSource provides the source files of a corpus.
type CorpusSource interface {
	// Root returns the directory scanned for source files.
	Root() string

	// List enumerates every source file under Root, recursively, in a stable
	// order. A missing root yields an empty list and no error.
	// Returned documents carry no Content.
	List(ctx context.Context) ([]domain.RawDocument, error)

	// Read loads the content of a listed file.
	Read(ctx context.Context, raw *domain.RawDocument) ([]byte, error)

	// Related probes the alternate renderings of a source file. Only paths
	// that exist are set; XML is always the source path itself.
	Related(raw *domain.RawDocument) domain.RelatedPaths
}

// FileStore gives read access to files recorded in RelatedPaths.
type FileStore interface {
	// Exists reports whether path currently exists as a regular file.
	Exists(path string) bool

	// ReadFile returns the file content.
	ReadFile(path string) ([]byte, error)
}
