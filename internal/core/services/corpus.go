package services

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/lovsok/internal/core/domain"
	"github.com/custodia-labs/lovsok/internal/core/ports/driven"
	"github.com/custodia-labs/lovsok/internal/core/ports/driving"
	"github.com/custodia-labs/lovsok/internal/logger"
)

// Ensure CorpusIndex implements the interface.
var _ driving.CorpusService = (*CorpusIndex)(nil)

// snapshotter provides the current corpus snapshot to read-only services.
type snapshotter interface {
	Snapshot() *domain.Corpus
}

// CorpusIndex builds the corpus from a source and publishes it as an
// immutable snapshot.
type CorpusIndex struct {
	source     driven.CorpusSource
	normaliser driven.Normaliser
	workers    int

	current atomic.Pointer[domain.Corpus]
	buildMu sync.Mutex
}

// NewCorpusIndex creates a corpus index. Workers bounds parallel parsing;
// zero or less means one worker per CPU.
func NewCorpusIndex(source driven.CorpusSource, normaliser driven.Normaliser, workers int) *CorpusIndex {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &CorpusIndex{
		source:     source,
		normaliser: normaliser,
		workers:    workers,
	}
}

// Build scans the source, parses every file and publishes the result.
// Files that cannot be read or parsed are logged and skipped.
func (c *CorpusIndex) Build(ctx context.Context) (*domain.Corpus, error) {
	c.buildMu.Lock()
	defer c.buildMu.Unlock()

	logger.Section("Corpus Build")
	start := time.Now()
	root := c.source.Root()

	files, err := c.source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing source files: %w", err)
	}
	logger.Debug("Found %d source files under %s", len(files), root)

	results, failed, err := c.parseAll(ctx, files)
	if err != nil {
		return nil, err
	}

	corpus := domain.NewCorpus(uuid.NewString(), root)
	duplicates := 0
	for _, doc := range results {
		if doc == nil {
			continue
		}
		if corpus.Put(doc) {
			logger.Debug("Duplicate id %s, later file wins", doc.ID)
			duplicates++
		}
	}

	corpus.BuiltAt = time.Now()
	corpus.Stats = domain.IngestStats{
		Scanned:    len(files),
		Indexed:    corpus.Len(),
		Failed:     failed,
		Duplicates: duplicates,
		Duration:   time.Since(start),
		Checksum:   checksum(corpus),
	}

	c.current.Store(corpus)
	logger.Info("Indexed %d documents from %s (%d scanned, %d failed) in %s",
		corpus.Stats.Indexed, root, corpus.Stats.Scanned, failed, corpus.Stats.Duration.Round(time.Millisecond))

	return corpus, nil
}

// Rebuild builds a new snapshot and swaps it in. On failure the previous
// snapshot stays in place.
func (c *CorpusIndex) Rebuild(ctx context.Context) error {
	previous := c.Snapshot()
	corpus, err := c.Build(ctx)
	if err != nil {
		logger.Warn("Rebuild failed, keeping previous snapshot: %v", err)
		return err
	}
	if previous != nil && previous.Stats.Checksum == corpus.Stats.Checksum {
		logger.Debug("Rebuild produced identical content")
	}
	return nil
}

// Snapshot returns the current corpus, or nil before the first build.
func (c *CorpusIndex) Snapshot() *domain.Corpus {
	return c.current.Load()
}

// Stats summarises the current snapshot.
func (c *CorpusIndex) Stats(_ context.Context) (*domain.CorpusStats, error) {
	corpus := c.Snapshot()
	if corpus == nil {
		return &domain.CorpusStats{
			Root:   c.source.Root(),
			ByKind: corpus.CountByKind(),
		}, nil
	}
	return &domain.CorpusStats{
		SnapshotID: corpus.ID,
		Root:       corpus.Root,
		BuiltAt:    corpus.BuiltAt,
		Documents:  corpus.Len(),
		ByKind:     corpus.CountByKind(),
		Ingest:     corpus.Stats,
	}, nil
}

// parseAll reads and parses files concurrently. Results keep the order of
// files; a nil slot marks a failure.
func (c *CorpusIndex) parseAll(ctx context.Context, files []domain.RawDocument) ([]*domain.Document, int, error) {
	results := make([]*domain.Document, len(files))
	var failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for i := range files {
		raw := files[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			doc, err := c.parseOne(gctx, &raw)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				logger.Warn("Skipping %s: %v", raw.Path, err)
				failed.Add(1)
				return nil
			}
			results[i] = doc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, 0, fmt.Errorf("building corpus: %w", err)
	}
	return results, int(failed.Load()), nil
}

func (c *CorpusIndex) parseOne(ctx context.Context, raw *domain.RawDocument) (*domain.Document, error) {
	content, err := c.source.Read(ctx, raw)
	if err != nil {
		return nil, err
	}
	raw.Content = content

	doc, err := c.normaliser.Normalise(ctx, raw)
	if err != nil {
		return nil, err
	}
	doc.Paths = c.source.Related(raw)
	return doc, nil
}

// checksum fingerprints the ids and canonical texts of a corpus in order.
func checksum(corpus *domain.Corpus) string {
	h := xxhash.New()
	for _, id := range corpus.IDs() {
		doc, _ := corpus.Get(id)
		_, _ = h.WriteString(id)
		_, _ = h.Write([]byte{0})
		_, _ = h.WriteString(doc.CanonicalText)
		_, _ = h.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
