package lovdata

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"

	"github.com/custodia-labs/lovsok/internal/core/domain"
	"github.com/custodia-labs/lovsok/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Selectors for the Lovdata document structure.
const (
	selTitle     = "title"
	selHeaderDT  = "header dt"
	selArticle   = "article.legalArticle"
	selHeading   = "h2"
	selParagraph = "article.legalP"
)

// Normaliser parses Lovdata HTML into domain documents.
type Normaliser struct{}

// New creates a new Lovdata normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Normalise converts one source file into a Document.
// Malformed markup is recovered from; only empty or undecodable input fails.
func (n *Normaliser) Normalise(ctx context.Context, raw *domain.RawDocument) (*domain.Document, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(bytes.TrimSpace(raw.Content)) == 0 {
		return nil, fmt.Errorf("%s: %w: empty document", raw.ID, domain.ErrParse)
	}

	r, err := decode(raw.Content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", raw.ID, domain.ErrParse, err)
	}

	page, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", raw.ID, domain.ErrParse, err)
	}
	if page.Find("html").Length() == 0 {
		return nil, fmt.Errorf("%s: %w: no root element", raw.ID, domain.ErrParse)
	}

	doc := &domain.Document{
		ID:       raw.ID,
		Kind:     domain.KindFromID(raw.ID),
		Title:    extractTitle(page),
		Metadata: extractMetadata(page),
		Sections: extractSections(page),
	}
	doc.SetCanonicalText(canonicalText(page, doc.Sections))

	return doc, nil
}

// decode returns a UTF-8 reader over src. Valid UTF-8 is passed through;
// anything else is transcoded using the <meta> charset or the HTML5 default.
func decode(src []byte) (io.Reader, error) {
	if utf8.Valid(src) {
		return bytes.NewReader(src), nil
	}
	return charset.NewReader(bytes.NewReader(src), "text/html")
}

func extractTitle(page *goquery.Document) string {
	title := strings.TrimSpace(page.Find(selTitle).First().Text())
	if title == "" {
		return domain.UntitledTitle
	}
	return title
}

// extractMetadata reads every header label and the value element that
// immediately follows it.
func extractMetadata(page *goquery.Document) map[string]string {
	metadata := make(map[string]string)

	page.Find(selHeaderDT).Each(func(_ int, dt *goquery.Selection) {
		key := domain.NormaliseKey(dt.Text())
		if key == "" {
			return
		}

		dd := dt.Next()
		if dd.Length() == 0 || goquery.NodeName(dd) != "dd" {
			return
		}

		metadata[key] = elementText(dd)
	})

	return metadata
}

func extractSections(page *goquery.Document) []domain.Section {
	sections := make([]domain.Section, 0)

	page.Find(selArticle).Each(func(_ int, art *goquery.Selection) {
		var heading *string
		if h := art.Find(selHeading).First(); h.Length() > 0 {
			text := elementText(h)
			heading = &text
		}

		var paragraphs []string
		art.Find(selParagraph).Each(func(_ int, p *goquery.Selection) {
			paragraphs = append(paragraphs, elementText(p))
		})

		sections = append(sections, domain.NewSection(heading, paragraphs))
	})

	return sections
}

// canonicalText joins section headings and paragraphs, or falls back to every
// visible text node when there are no sections.
func canonicalText(page *goquery.Document, sections []domain.Section) string {
	var parts []string
	if len(sections) > 0 {
		for _, sec := range sections {
			if h := sec.HeadingText(); h != "" {
				parts = append(parts, h)
			}
			parts = append(parts, sec.Paragraphs...)
		}
	} else {
		for _, n := range page.Nodes {
			parts = appendVisibleText(parts, n)
		}
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}

// appendVisibleText collects non-blank text nodes in document order,
// skipping elements whose text is never rendered.
func appendVisibleText(parts []string, n *html.Node) []string {
	switch n.Type {
	case html.TextNode:
		if text := strings.TrimSpace(n.Data); text != "" {
			parts = append(parts, text)
		}
		return parts
	case html.ElementNode:
		switch n.Data {
		case "script", "style", "noscript", "template":
			return parts
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		parts = appendVisibleText(parts, c)
	}
	return parts
}
