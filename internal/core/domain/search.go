package domain

// Search limits.
const (
	DefaultSearchLimit = 20
	MaxSearchLimit     = 100
)

// Listing limits.
const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// SearchOptions configures a search query.
type SearchOptions struct {
	// Kind filters to a single kind; empty means all kinds.
	Kind Kind

	// Limit is the maximum number of results, clamped to [1, MaxSearchLimit].
	Limit int
}

// SearchResult is a single ranked hit.
type SearchResult struct {
	ID      string `json:"id"`
	Kind    Kind   `json:"kind"`
	Title   string `json:"title"`
	Score   int    `json:"score"`
	Snippet string `json:"snippet"`
}

// SearchResponse is the outcome of a search, echoing the effective parameters.
type SearchResponse struct {
	Query   string         `json:"query"`
	Kind    string         `json:"kind"`
	Limit   int            `json:"limit"`
	Count   int            `json:"count"`
	Results []SearchResult `json:"results"`
}

// ListOptions configures a document listing.
type ListOptions struct {
	Kind   Kind
	Limit  int
	Offset int
}

// ListItem is a light document summary.
type ListItem struct {
	ID         string  `json:"id"`
	Kind       Kind    `json:"kind"`
	Title      string  `json:"title"`
	ShortTitle *string `json:"korttittel"`
	DateCode   *string `json:"datokode"`
}

// ListPage is one page of a document listing.
type ListPage struct {
	Kind   string     `json:"kind"`
	Offset int        `json:"offset"`
	Limit  int        `json:"limit"`
	Total  int        `json:"total"`
	Items  []ListItem `json:"items"`
}

// SectionMatch is the result of a heading lookup.
type SectionMatch struct {
	DocumentID   string  `json:"document_id"`
	HeadingQuery string  `json:"heading_query"`
	Section      Section `json:"section"`
}

// RawView is the content of one alternate representation of a document.
// Content is a string for text formats and decoded JSON for FormatJSON.
type RawView struct {
	DocID   string `json:"doc_id"`
	Format  Format `json:"format"`
	Path    string `json:"path"`
	Content any    `json:"content"`
}

// ClampLimit bounds n to [1, upper]; non-positive input becomes 1.
func ClampLimit(n, upper int) int {
	return max(1, min(n, upper))
}
