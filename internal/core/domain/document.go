package domain

import (
	"strings"
	"unicode"
)

// UntitledTitle is used when a source file carries no usable <title>.
const UntitledTitle = "Untitled"

// Document is the unit of retrieval: one parsed law or regulation.
// It is the canonical representation after normalisation.
type Document struct {
	// ID is derived from the source filename stem (e.g. "sf-20061027-1196").
	ID string `json:"id"`

	// Kind is derived from the ID prefix, see KindFromID.
	Kind Kind `json:"kind"`

	// Title is the trimmed <title> text, or UntitledTitle.
	Title string `json:"title"`

	// Metadata holds header label/value pairs keyed by NormaliseKey.
	Metadata map[string]string `json:"metadata"`

	// Sections are the legal articles in document order.
	Sections []Section `json:"sections"`

	// CanonicalText is the full-text body used for search and snippets.
	CanonicalText string `json:"canonical_text"`

	// Paths points at alternate on-disk representations.
	Paths RelatedPaths `json:"paths"`

	// canonicalTextLower mirrors CanonicalText for matching only.
	canonicalTextLower string
}

// SetCanonicalText sets the canonical text and its lowercase index form together
// so the two never diverge.
func (d *Document) SetCanonicalText(text string) {
	d.CanonicalText = text
	d.canonicalTextLower = strings.ToLower(text)
}

// LowerText returns the lowercase form of the canonical text.
func (d *Document) LowerText() string {
	return d.canonicalTextLower
}

// MetadataValue returns the metadata value for a normalised key and whether
// the header carried it. A present but empty value reports true.
func (d *Document) MetadataValue(key string) (string, bool) {
	v, ok := d.Metadata[key]
	return v, ok
}

// Section is one legal article within a Document.
type Section struct {
	// Heading is the article heading text; nil when the article has none.
	Heading *string `json:"heading"`

	// Paragraphs are the non-empty paragraph texts in order.
	Paragraphs []string `json:"paragraphs"`
}

// NewSection builds a Section, dropping empty paragraphs.
func NewSection(heading *string, paragraphs []string) Section {
	kept := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return Section{Heading: heading, Paragraphs: kept}
}

// HeadingText returns the heading or "" when absent.
func (s Section) HeadingText() string {
	if s.Heading == nil {
		return ""
	}
	return *s.Heading
}

// Metadata keys read by the document listing.
const (
	MetadataShortTitle = "korttittel"
	MetadataDateCode   = "datokode"
)

// NormaliseKey turns a header label into a metadata key:
// lowercased, with every whitespace run replaced by a single underscore.
// Leading and trailing whitespace is dropped.
func NormaliseKey(label string) string {
	fields := strings.FieldsFunc(strings.ToLower(label), unicode.IsSpace)
	return strings.Join(fields, "_")
}
