package lovdata

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// blockElements break a text run. Inline elements are concatenated as is.
var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"br": true, "dd": true, "div": true, "dl": true, "dt": true,
	"figcaption": true, "figure": true, "footer": true, "h1": true,
	"h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hr": true, "li": true, "ol": true, "p": true,
	"pre": true, "section": true, "table": true, "td": true, "th": true,
	"tr": true, "ul": true,
}

// textBuilder accumulates text, emitting one space at each pending break.
type textBuilder struct {
	sb      strings.Builder
	pending bool
}

func (b *textBuilder) write(s string) {
	if s == "" {
		return
	}
	if b.pending && b.sb.Len() > 0 && !endsInSpace(b.sb.String()) && !startsWithSpace(s) {
		b.sb.WriteByte(' ')
	}
	b.pending = false
	b.sb.WriteString(s)
}

func (b *textBuilder) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.write(n.Data)
		return
	case html.ElementNode:
		if blockElements[n.Data] {
			b.pending = true
			defer func() { b.pending = true }()
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.walk(c)
	}
}

// elementText returns the trimmed text under the selection's first node,
// with block-level children separated by a space.
func elementText(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	var b textBuilder
	for c := sel.Get(0).FirstChild; c != nil; c = c.NextSibling {
		b.walk(c)
	}
	return strings.TrimSpace(b.sb.String())
}

func endsInSpace(s string) bool {
	r, _ := utf8.DecodeLastRuneInString(s)
	return unicode.IsSpace(r)
}

func startsWithSpace(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsSpace(r)
}
