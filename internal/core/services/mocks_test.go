package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/custodia-labs/lovsok/internal/core/domain"
)

// --- Mock implementations ---

// mockSource implements driven.CorpusSource for testing.
type mockSource struct {
	root    string
	files   map[string]string // path -> content
	order   []string
	listErr error
	readErr map[string]error
	related map[string]domain.RelatedPaths
}

func newMockSource(root string) *mockSource {
	return &mockSource{
		root:    root,
		files:   make(map[string]string),
		readErr: make(map[string]error),
		related: make(map[string]domain.RelatedPaths),
	}
}

func (m *mockSource) add(id, content string) {
	path := m.root + "/" + id + ".xml"
	m.files[path] = content
	m.order = append(m.order, path)
}

func (m *mockSource) Root() string { return m.root }

func (m *mockSource) List(_ context.Context) ([]domain.RawDocument, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]domain.RawDocument, 0, len(m.order))
	for _, path := range m.order {
		rel := strings.TrimPrefix(path, m.root+"/")
		// The same id may appear under several paths.
		id := rel[strings.LastIndex(rel, "/")+1:]
		out = append(out, domain.RawDocument{
			ID:      strings.TrimSuffix(id, ".xml"),
			Path:    path,
			RelPath: rel,
		})
	}
	return out, nil
}

func (m *mockSource) Read(_ context.Context, raw *domain.RawDocument) ([]byte, error) {
	if err := m.readErr[raw.Path]; err != nil {
		return nil, err
	}
	return []byte(m.files[raw.Path]), nil
}

func (m *mockSource) Related(raw *domain.RawDocument) domain.RelatedPaths {
	if p, ok := m.related[raw.ID]; ok {
		return p
	}
	return domain.RelatedPaths{XML: raw.Path}
}

// mockNormaliser implements driven.Normaliser for testing.
// Content "FAIL" is rejected; otherwise the content becomes the canonical text
// and the first line the title.
type mockNormaliser struct {
	mu    sync.Mutex
	calls int
}

func (m *mockNormaliser) Normalise(ctx context.Context, raw *domain.RawDocument) (*domain.Document, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	content := string(raw.Content)
	if content == "FAIL" {
		return nil, domain.ErrParse
	}
	title, _, _ := strings.Cut(content, "\n")
	doc := &domain.Document{
		ID:       raw.ID,
		Kind:     domain.KindFromID(raw.ID),
		Title:    title,
		Metadata: map[string]string{},
		Sections: []domain.Section{},
	}
	doc.SetCanonicalText(content)
	return doc, nil
}

// staticCorpus implements snapshotter with a fixed corpus.
type staticCorpus struct {
	corpus *domain.Corpus
}

func (s staticCorpus) Snapshot() *domain.Corpus { return s.corpus }

// newTestCorpus builds a corpus from documents in order.
func newTestCorpus(docs ...*domain.Document) *domain.Corpus {
	c := domain.NewCorpus("test", "/data")
	for _, d := range docs {
		c.Put(d)
	}
	return c
}

// newTestDoc creates a document with the given canonical text.
func newTestDoc(id, title, text string) *domain.Document {
	doc := &domain.Document{
		ID:       id,
		Kind:     domain.KindFromID(id),
		Title:    title,
		Metadata: map[string]string{},
		Sections: []domain.Section{},
	}
	doc.SetCanonicalText(text)
	return doc
}

// mockFileStore implements driven.FileStore for testing.
type mockFileStore struct {
	files   map[string]string
	readErr error
}

func (m *mockFileStore) Exists(path string) bool {
	_, ok := m.files[path]
	return ok
}

func (m *mockFileStore) ReadFile(path string) ([]byte, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	content, ok := m.files[path]
	if !ok {
		return nil, errors.New("no such file")
	}
	return []byte(content), nil
}

// mockConfigStore implements driven.ConfigStore for testing.
type mockConfigStore struct {
	values map[string]any
}

func newMockConfigStore() *mockConfigStore {
	return &mockConfigStore{values: make(map[string]any)}
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *mockConfigStore) GetString(key string) string {
	s, _ := m.values[key].(string)
	return s
}

func (m *mockConfigStore) GetInt(key string) int {
	switch v := m.values[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	default:
		return 0
	}
}

func (m *mockConfigStore) Keys() []string {
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m *mockConfigStore) Set(key string, value any) error {
	m.values[key] = value
	return nil
}

func (m *mockConfigStore) Load() error { return nil }

func (m *mockConfigStore) Path() string { return "/tmp/config.toml" }
