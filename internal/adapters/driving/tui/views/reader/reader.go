// Package reader provides the document reader view for the TUI.
package reader

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/lovsok/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/lovsok/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/lovsok/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/lovsok/internal/core/domain"
	"github.com/custodia-labs/lovsok/internal/core/ports/driving"
)

// ErrNoDocumentService indicates that no document service was provided.
var ErrNoDocumentService = errors.New("document service is required")

// chrome is the number of lines used by the header and footer.
const chrome = 5

// View shows one document in a scrollable viewport.
type View struct {
	styles          *styles.Styles
	keymap          *keymap.KeyMap
	documentService driving.DocumentService
	ctx             context.Context

	viewport viewport.Model
	id       string
	document *domain.Document
	width    int
	height   int
	loading  bool
	err      error
}

// NewView creates a reader view.
func NewView(s *styles.Styles, km *keymap.KeyMap, documentService driving.DocumentService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:          s,
		keymap:          km,
		documentService: documentService,
		ctx:             context.Background(),
		viewport:        viewport.New(80, 24-chrome),
		width:           80,
		height:          24,
	}
}

// WithContext sets the context documents are fetched under.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Open clears the view and returns a command that fetches id.
func (v *View) Open(id string) tea.Cmd {
	v.id = id
	v.document = nil
	v.err = nil
	v.loading = true
	v.viewport.SetContent("")
	v.viewport.GotoTop()

	ctx := v.ctx
	svc := v.documentService
	return func() tea.Msg {
		if svc == nil {
			return messages.DocumentLoaded{ID: id, Err: ErrNoDocumentService}
		}
		doc, err := svc.Get(ctx, id)
		return messages.DocumentLoaded{ID: id, Document: doc, Err: err}
	}
}

// Update handles messages for the reader.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.DocumentLoaded:
		if msg.ID != v.id {
			return v, nil
		}
		v.loading = false
		v.err = msg.Err
		v.document = msg.Document
		v.render()
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keymap.Back):
			return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewSearch} }
		case key.Matches(msg, v.keymap.Top):
			v.viewport.GotoTop()
			return v, nil
		case key.Matches(msg, v.keymap.Bottom):
			v.viewport.GotoBottom()
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// render lays the document out at the current width.
func (v *View) render() {
	if v.document == nil {
		v.viewport.SetContent("")
		return
	}
	v.viewport.SetContent(Render(v.document, v.styles, v.viewport.Width))
}

// Render lays out metadata and sections, wrapping text to width.
func Render(doc *domain.Document, s *styles.Styles, width int) string {
	wrap := lipgloss.NewStyle().Width(max(20, width))
	var b strings.Builder

	if len(doc.Metadata) > 0 {
		keys := make([]string, 0, len(doc.Metadata))
		for k := range doc.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteString(wrap.Render(s.Muted.Render(k+": ") + s.Normal.Render(doc.Metadata[k])))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(doc.Sections) == 0 {
		b.WriteString(wrap.Render(doc.CanonicalText))
		return b.String()
	}

	for _, sec := range doc.Sections {
		if h := sec.HeadingText(); h != "" {
			b.WriteString(s.Heading.Render(wrap.Render(h)))
			b.WriteString("\n")
		}
		for _, p := range sec.Paragraphs {
			b.WriteString(wrap.Render(p))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// View renders the reader.
func (v *View) View() string {
	var b strings.Builder

	title := v.id
	if v.document != nil {
		title = v.document.Title
	}
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n")
	if v.document != nil {
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("%s  %s", v.document.ID, v.document.Kind)))
	}
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading document..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + describe(v.err, v.id)))
	default:
		b.WriteString(v.viewport.View())
	}

	b.WriteString("\n")
	b.WriteString(v.renderFooter())
	return b.String()
}

func (v *View) renderFooter() string {
	hints := make([]string, 0, len(v.keymap.ReaderHelp()))
	for _, h := range v.keymap.ReaderHelp() {
		hints = append(hints, fmt.Sprintf("[%s] %s", h.Help().Key, h.Help().Desc))
	}
	footer := strings.Join(hints, "  ")
	if v.document != nil {
		footer = fmt.Sprintf("%3.0f%%  %s", v.viewport.ScrollPercent()*100, footer)
	}
	return v.styles.Help.Render(footer)
}

func describe(err error, id string) string {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Sprintf("document %q not found", id)
	}
	return err.Error()
}

// SetDimensions resizes the viewport and re-wraps the document.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.viewport.Width = width
	v.viewport.Height = max(1, height-chrome)
	v.render()
}

// Document returns the loaded document, if any.
func (v *View) Document() *domain.Document {
	return v.document
}

// Loading reports whether a fetch is in flight.
func (v *View) Loading() bool {
	return v.loading
}

// Err returns the last load error.
func (v *View) Err() error {
	return v.err
}

// YOffset returns the current scroll position.
func (v *View) YOffset() int {
	return v.viewport.YOffset
}
