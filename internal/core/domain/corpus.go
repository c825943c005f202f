package domain

import "time"

// IngestStats reports how a corpus build went. Diagnostics only.
type IngestStats struct {
	// Scanned is the number of source files found.
	Scanned int `json:"scanned"`

	// Indexed is the number of documents in the corpus.
	Indexed int `json:"indexed"`

	// Failed is the number of files that could not be read or parsed.
	Failed int `json:"failed"`

	// Duplicates counts files whose id overwrote an earlier document.
	Duplicates int `json:"duplicates"`

	// Duration is the wall time of the build.
	Duration time.Duration `json:"duration"`

	// Checksum fingerprints ids and canonical texts; equal corpora hash equal.
	Checksum string `json:"checksum"`
}

// Corpus is an immutable snapshot of every indexed document.
// It is built once and then only read; a rebuild produces a new Corpus.
type Corpus struct {
	// ID identifies this snapshot.
	ID string

	// Root is the source directory the snapshot was built from.
	Root string

	// BuiltAt is when the build finished.
	BuiltAt time.Time

	// Stats describes the build.
	Stats IngestStats

	order []string
	docs  map[string]*Document
}

// NewCorpus creates an empty corpus. Documents are added with Put
// before the corpus is published.
func NewCorpus(id, root string) *Corpus {
	return &Corpus{
		ID:   id,
		Root: root,
		docs: make(map[string]*Document),
	}
}

// Put inserts a document. A duplicate id overwrites the earlier record but keeps
// its original position. It reports whether an existing document was replaced.
func (c *Corpus) Put(doc *Document) bool {
	if _, exists := c.docs[doc.ID]; exists {
		c.docs[doc.ID] = doc
		return true
	}
	c.order = append(c.order, doc.ID)
	c.docs[doc.ID] = doc
	return false
}

// Get returns the document with the given id.
func (c *Corpus) Get(id string) (*Document, bool) {
	if c == nil {
		return nil, false
	}
	doc, ok := c.docs[id]
	return doc, ok
}

// Len returns the number of documents.
func (c *Corpus) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}

// IsEmpty reports whether nothing was loaded.
func (c *Corpus) IsEmpty() bool {
	return c.Len() == 0
}

// IDs returns document ids in insertion order.
func (c *Corpus) IDs() []string {
	if c == nil {
		return nil
	}
	ids := make([]string, len(c.order))
	copy(ids, c.order)
	return ids
}

// Documents returns documents of the given kind in insertion order.
// An empty kind returns every document.
func (c *Corpus) Documents(kind Kind) []*Document {
	if c == nil {
		return nil
	}
	docs := make([]*Document, 0, len(c.order))
	for _, id := range c.order {
		doc := c.docs[id]
		if kind != "" && doc.Kind != kind {
			continue
		}
		docs = append(docs, doc)
	}
	return docs
}

// CountByKind returns the number of documents per kind.
func (c *Corpus) CountByKind() map[Kind]int {
	counts := make(map[Kind]int, len(Kinds))
	for _, k := range Kinds {
		counts[k] = 0
	}
	if c == nil {
		return counts
	}
	for _, doc := range c.docs {
		counts[doc.Kind]++
	}
	return counts
}

// CorpusStats is the public summary of the current snapshot.
type CorpusStats struct {
	SnapshotID string       `json:"snapshot_id"`
	Root       string       `json:"root"`
	BuiltAt    time.Time    `json:"built_at"`
	Documents  int          `json:"documents"`
	ByKind     map[Kind]int `json:"by_kind"`
	Ingest     IngestStats  `json:"ingest"`
}
