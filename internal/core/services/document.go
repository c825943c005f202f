package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/custodia-labs/lovsok/internal/core/domain"
	"github.com/custodia-labs/lovsok/internal/core/ports/driven"
	"github.com/custodia-labs/lovsok/internal/core/ports/driving"
	"github.com/custodia-labs/lovsok/internal/logger"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService gives access to single documents of the current snapshot
// and their on-disk representations.
type DocumentService struct {
	corpus snapshotter
	files  driven.FileStore
}

// NewDocumentService creates a new document service.
func NewDocumentService(corpus snapshotter, files driven.FileStore) *DocumentService {
	return &DocumentService{
		corpus: corpus,
		files:  files,
	}
}

// List returns a page of document summaries in corpus order.
func (s *DocumentService) List(_ context.Context, opts domain.ListOptions) (*domain.ListPage, error) {
	corpus := s.corpus.Snapshot()
	if corpus.IsEmpty() {
		return nil, domain.ErrCorpusEmpty
	}
	if opts.Kind != "" && !opts.Kind.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidKind, opts.Kind)
	}

	limit := domain.DefaultListLimit
	if opts.Limit != 0 {
		limit = domain.ClampLimit(opts.Limit, domain.MaxListLimit)
	}
	offset := max(0, opts.Offset)

	docs := corpus.Documents(opts.Kind)
	page := &domain.ListPage{
		Kind:   opts.Kind.Label(),
		Offset: offset,
		Limit:  limit,
		Total:  len(docs),
		Items:  []domain.ListItem{},
	}
	if offset >= len(docs) {
		return page, nil
	}

	for _, doc := range docs[offset:min(len(docs), offset+limit)] {
		page.Items = append(page.Items, domain.ListItem{
			ID:         doc.ID,
			Kind:       doc.Kind,
			Title:      doc.Title,
			ShortTitle: metadataRef(doc, domain.MetadataShortTitle),
			DateCode:   metadataRef(doc, domain.MetadataDateCode),
		})
	}
	return page, nil
}

// Get returns the full document record.
func (s *DocumentService) Get(_ context.Context, id string) (*domain.Document, error) {
	doc, ok := s.corpus.Snapshot().Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	return doc, nil
}

// GetSection returns the first section whose heading contains the query,
// compared case-insensitively.
func (s *DocumentService) GetSection(ctx context.Context, id, headingQuery string) (*domain.SectionMatch, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(headingQuery))
	if needle == "" {
		return nil, fmt.Errorf("%w: heading query is empty", domain.ErrInvalidInput)
	}

	for _, section := range doc.Sections {
		if strings.Contains(strings.ToLower(section.HeadingText()), needle) {
			return &domain.SectionMatch{
				DocumentID:   doc.ID,
				HeadingQuery: headingQuery,
				Section:      section,
			}, nil
		}
	}
	return nil, fmt.Errorf("%w: %q in %s", domain.ErrSectionNotFound, headingQuery, id)
}

// GetRawView reads one alternate representation of a document from disk.
// JSON content is decoded; other formats are returned as text.
func (s *DocumentService) GetRawView(ctx context.Context, id string, format domain.Format) (*domain.RawView, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	format, err = domain.ParseFormat(string(format))
	if err != nil {
		return nil, err
	}

	path := doc.Paths.Path(format)
	if path == "" {
		return nil, fmt.Errorf("%w: %s has no %s rendering", domain.ErrFormatNotAvailable, id, format)
	}
	if !s.files.Exists(path) {
		return nil, fmt.Errorf("%w: %s", domain.ErrFileMissing, path)
	}

	data, err := s.files.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	view := &domain.RawView{DocID: doc.ID, Format: format, Path: path}
	if format == domain.FormatJSON {
		var content any
		if err := json.Unmarshal(data, &content); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
		view.Content = content
	} else {
		view.Content = string(data)
	}

	logger.Debug("Raw view %s/%s: %d bytes from %s", id, format, len(data), path)
	return view, nil
}

// metadataRef returns a pointer to a metadata value, or nil when absent.
func metadataRef(doc *domain.Document, key string) *string {
	v, ok := doc.MetadataValue(key)
	if !ok {
		return nil
	}
	return &v
}
