package services

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/custodia-labs/lovsok/internal/core/domain"
	"github.com/custodia-labs/lovsok/internal/core/ports/driving"
	"github.com/custodia-labs/lovsok/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// Snippet window sizes, in characters.
const (
	snippetRadius   = 120
	snippetFallback = 240
	ellipsis        = "..."
)

// tokenPattern matches runs of Unicode letters, digits and underscore.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// SearchService ranks documents of the current snapshot against a query.
type SearchService struct {
	corpus       snapshotter
	defaultLimit int
}

// NewSearchService creates a new search service. A defaultLimit of zero or
// less uses domain.DefaultSearchLimit.
func NewSearchService(corpus snapshotter, defaultLimit int) *SearchService {
	if defaultLimit <= 0 {
		defaultLimit = domain.DefaultSearchLimit
	}
	return &SearchService{
		corpus:       corpus,
		defaultLimit: domain.ClampLimit(defaultLimit, domain.MaxSearchLimit),
	}
}

// Search scores every document by summed substring occurrences of the query
// tokens and returns the best matches with snippets.
func (s *SearchService) Search(
	ctx context.Context, query string, opts domain.SearchOptions,
) (*domain.SearchResponse, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	corpus := s.corpus.Snapshot()
	if corpus.IsEmpty() {
		return nil, domain.ErrCorpusEmpty
	}
	if opts.Kind != "" && !opts.Kind.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidKind, opts.Kind)
	}

	limit := s.defaultLimit
	if opts.Limit != 0 {
		limit = domain.ClampLimit(opts.Limit, domain.MaxSearchLimit)
	}
	logger.Debug("Kind: %s, Limit: %d", opts.Kind.Label(), limit)

	resp := &domain.SearchResponse{
		Query:   query,
		Kind:    opts.Kind.Label(),
		Limit:   limit,
		Results: []domain.SearchResult{},
	}

	tokens := Tokenize(query)
	if len(tokens) == 0 {
		logger.Debug("No tokens in query, returning no results")
		return resp, nil
	}
	logger.Debug("Tokens: %v", tokens)

	type hit struct {
		doc   *domain.Document
		score int
	}
	var hits []hit
	for _, doc := range corpus.Documents(opts.Kind) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if score := Score(doc.LowerText(), tokens); score > 0 {
			hits = append(hits, hit{doc: doc, score: score})
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		a, b := hits[i], hits[j]
		if a.score != b.score {
			return a.score > b.score
		}
		if a.doc.Title != b.doc.Title {
			return a.doc.Title < b.doc.Title
		}
		return a.doc.ID < b.doc.ID
	})

	if len(hits) > limit {
		hits = hits[:limit]
	}
	for _, h := range hits {
		resp.Results = append(resp.Results, domain.SearchResult{
			ID:      h.doc.ID,
			Kind:    h.doc.Kind,
			Title:   h.doc.Title,
			Score:   h.score,
			Snippet: Snippet(h.doc.CanonicalText, h.doc.LowerText(), tokens),
		})
	}
	resp.Count = len(resp.Results)

	logger.Info("Search %q: %d results", query, resp.Count)
	return resp, nil
}

// Tokenize lowercases query and splits it into word runs.
func Tokenize(query string) []string {
	return tokenPattern.FindAllString(strings.ToLower(query), -1)
}

// Score sums the non-overlapping occurrences of each token in lower.
func Score(lower string, tokens []string) int {
	score := 0
	for _, tok := range tokens {
		score += strings.Count(lower, tok)
	}
	return score
}

// Snippet returns a window of text around the first occurrence of the first
// token. Offsets are in characters. Text without a match yields its opening.
func Snippet(text, lower string, tokens []string) string {
	runes := []rune(text)

	if len(tokens) > 0 {
		if idx := strings.Index(lower, tokens[0]); idx >= 0 {
			at := len([]rune(lower[:idx]))
			start := max(0, at-snippetRadius)
			end := min(len(runes), at+snippetRadius)

			snippet := strings.TrimFunc(string(runes[start:end]), unicode.IsSpace)
			if start > 0 {
				snippet = ellipsis + snippet
			}
			if end < len(runes) {
				snippet += ellipsis
			}
			return snippet
		}
	}

	if len(runes) <= snippetFallback {
		return text
	}
	return string(runes[:snippetFallback]) + ellipsis
}
