package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/lovsok/internal/core/domain"
	"github.com/custodia-labs/lovsok/internal/core/ports/driven"
	"github.com/custodia-labs/lovsok/internal/logger"
)

// Ensure Source implements the interfaces.
var (
	_ driven.CorpusSource = (*Source)(nil)
	_ driven.FileStore    = (*Source)(nil)
)

// Rendering extensions, keyed by format.
var renderExt = map[domain.Format]string{
	domain.FormatHTML:     ".html",
	domain.FormatMarkdown: ".md",
	domain.FormatJSON:     ".json",
}

// Source is a corpus on the local filesystem.
type Source struct {
	root       string
	renderDirs map[domain.Format]string
}

// New creates a Source from corpus settings. When the xml directory holds an
// "xml" subdirectory, as extracted Lovdata archives do, that subdirectory is
// used as the root.
func New(settings domain.CorpusSettings) *Source {
	root := settings.Resolve(settings.XMLDir)
	if isDir(filepath.Join(root, domain.RenderedSubdir)) {
		root = filepath.Join(root, domain.RenderedSubdir)
	}

	return &Source{
		root: root,
		renderDirs: map[domain.Format]string{
			domain.FormatHTML:     settings.Resolve(settings.HTMLDir),
			domain.FormatMarkdown: settings.Resolve(settings.MarkdownDir),
			domain.FormatJSON:     settings.Resolve(settings.JSONDir),
		},
	}
}

// Root returns the directory scanned for source files.
func (s *Source) Root() string {
	return s.root
}

// List walks the root recursively in lexical order and returns every file
// with the source extension. Unreadable subdirectories are skipped.
func (s *Source) List(ctx context.Context) ([]domain.RawDocument, error) {
	info, err := os.Stat(s.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn("Source directory does not exist, corpus will be empty: %s", s.root)
			return []domain.RawDocument{}, nil
		}
		return nil, fmt.Errorf("stat source root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source root %s is not a directory", s.root)
	}

	var files []domain.RawDocument
	err = filepath.WalkDir(s.root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == s.root {
				return walkErr
			}
			logger.Warn("Skipping %s: %v", path, walkErr)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(d.Name()) != domain.SourceExt {
			return nil
		}

		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			rel = d.Name()
		}
		files = append(files, domain.RawDocument{
			ID:      strings.TrimSuffix(d.Name(), domain.SourceExt),
			Path:    path,
			RelPath: rel,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", s.root, err)
	}

	if files == nil {
		files = []domain.RawDocument{}
	}
	return files, nil
}

// Read loads the content of a listed file.
func (s *Source) Read(_ context.Context, raw *domain.RawDocument) ([]byte, error) {
	data, err := os.ReadFile(raw.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", raw.Path, err)
	}
	return data, nil
}

// Related derives the rendering paths for a source file and keeps those that
// exist. The source path is always recorded as the XML representation.
func (s *Source) Related(raw *domain.RawDocument) domain.RelatedPaths {
	rel := raw.RelPath
	if rel == "" {
		rel = filepath.Base(raw.Path)
	}
	stem := strings.TrimSuffix(rel, filepath.Ext(rel))

	probe := func(f domain.Format) string {
		p := filepath.Join(s.renderDirs[f], domain.RenderedSubdir, stem+renderExt[f])
		if !s.Exists(p) {
			return ""
		}
		return p
	}

	return domain.RelatedPaths{
		XML:      raw.Path,
		HTML:     probe(domain.FormatHTML),
		Markdown: probe(domain.FormatMarkdown),
		JSON:     probe(domain.FormatJSON),
	}
}

// Exists reports whether path is an existing regular file.
func (s *Source) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// ReadFile returns the content of a rendering.
func (s *Source) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
