package domain

import (
	"path/filepath"
	"time"
)

// Default corpus layout, relative to the data root.
const (
	DefaultDataRoot    = "data"
	DefaultXMLDir      = "xml_pretty"
	DefaultHTMLDir     = "html"
	DefaultMarkdownDir = "markdown"
	DefaultJSONDir     = "json"

	// RenderedSubdir is the directory inserted between each rendering root and
	// the document's relative path by the preparation tooling.
	RenderedSubdir = "xml"

	// SourceExt is the recognised source file extension.
	SourceExt = ".xml"

	DefaultDebounce = 2 * time.Second
)

// CorpusSettings locates the corpus on disk and tunes ingestion.
type CorpusSettings struct {
	// DataRoot is the base directory for the relative paths below.
	DataRoot string

	// XMLDir holds the normalised source files.
	XMLDir string

	// HTMLDir holds the rendered display form.
	HTMLDir string

	// MarkdownDir holds the rendered simplified text.
	MarkdownDir string

	// JSONDir holds the structured JSON rendering.
	JSONDir string

	// Workers bounds parallel parsing; 0 means one per CPU.
	Workers int

	// Debounce is the quiet period before a watched change triggers a rebuild.
	Debounce time.Duration
}

// DefaultCorpusSettings returns settings for the standard data layout.
func DefaultCorpusSettings() CorpusSettings {
	return CorpusSettings{
		DataRoot:    DefaultDataRoot,
		XMLDir:      DefaultXMLDir,
		HTMLDir:     DefaultHTMLDir,
		MarkdownDir: DefaultMarkdownDir,
		JSONDir:     DefaultJSONDir,
		Debounce:    DefaultDebounce,
	}
}

// Resolve returns p joined to the data root unless p is absolute.
func (s CorpusSettings) Resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(s.DataRoot, p)
}
