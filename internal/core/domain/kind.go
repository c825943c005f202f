package domain

import (
	"fmt"
	"strings"
)

// Kind is the coarse category of a document.
type Kind string

// Available kinds.
const (
	KindLaw        Kind = "law"
	KindRegulation Kind = "regulation"
	KindOther      Kind = "other"
)

// KindAll is the label reported when no kind filter is applied.
const KindAll = "all"

// Kinds lists every valid kind in display order.
var Kinds = []Kind{KindLaw, KindRegulation, KindOther}

// KindFromID classifies a document id by its prefix.
func KindFromID(id string) Kind {
	switch {
	case strings.HasPrefix(id, "nl-"):
		return KindLaw
	case strings.HasPrefix(id, "sf-"):
		return KindRegulation
	default:
		return KindOther
	}
}

// IsValid returns true if the kind is recognised.
func (k Kind) IsValid() bool {
	switch k {
	case KindLaw, KindRegulation, KindOther:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k Kind) String() string {
	return string(k)
}

// Label returns the kind, or KindAll for the empty filter.
func (k Kind) Label() string {
	if k == "" {
		return KindAll
	}
	return string(k)
}

// ParseKind validates a kind filter. The empty string means no filter.
func ParseKind(s string) (Kind, error) {
	if s == "" {
		return "", nil
	}
	k := Kind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
	return k, nil
}

// Format identifies one on-disk representation of a document.
type Format string

// Available formats.
const (
	FormatXML      Format = "xml"
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// Formats lists every valid format.
var Formats = []Format{FormatXML, FormatHTML, FormatMarkdown, FormatJSON}

// IsValid returns true if the format is recognised.
func (f Format) IsValid() bool {
	switch f {
	case FormatXML, FormatHTML, FormatMarkdown, FormatJSON:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f Format) String() string {
	return string(f)
}

// ParseFormat lowercases and validates a format selector.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	if !f.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return f, nil
}

// RelatedPaths holds the on-disk locations of a document's representations.
// An empty field means that representation was not found at ingestion time.
type RelatedPaths struct {
	XML      string `json:"xml,omitempty"`
	HTML     string `json:"html,omitempty"`
	Markdown string `json:"markdown,omitempty"`
	JSON     string `json:"json,omitempty"`
}

// Path returns the recorded path for a format, or "".
func (p RelatedPaths) Path(f Format) string {
	switch f {
	case FormatXML:
		return p.XML
	case FormatHTML:
		return p.HTML
	case FormatMarkdown:
		return p.Markdown
	case FormatJSON:
		return p.JSON
	default:
		return ""
	}
}
