// Package lovdata provides a Normaliser for Lovdata source documents.
//
// Lovdata distributes laws and regulations as loosely-tagged HTML served
// with an .xml extension. The normaliser parses them with the HTML5
// tokenizer behind goquery, which recovers from any markup error, and
// extracts a structured Document:
//
//   - title from the first <title>
//   - metadata from <dt>/<dd> pairs inside <header>
//   - one Section per <article class="legalArticle">, with the first <h2>
//     as heading and every nested <article class="legalP"> as a paragraph
//   - canonical text from the sections, or from all visible text when the
//     document has no legal articles
package lovdata
