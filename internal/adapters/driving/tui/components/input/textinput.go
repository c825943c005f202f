// Package input provides the query input component for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/lovsok/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/lovsok/internal/core/domain"
)

// Query input limits.
const (
	charLimit = 256
	minWidth  = 20
)

// SearchInput wraps a bubbles textinput with the current kind filter.
type SearchInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	kind      domain.Kind
	width     int
}

// NewSearchInput creates a focused, empty query input.
func NewSearchInput(s *styles.Styles) *SearchInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Search laws and regulations..."
	ti.Focus()
	ti.CharLimit = charLimit
	ti.Width = 50

	return &SearchInput{
		textinput: ti,
		styles:    s,
		width:     50,
	}
}

// Init starts the cursor blink.
func (s *SearchInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (s *SearchInput) Update(msg tea.Msg) (*SearchInput, tea.Cmd) {
	var cmd tea.Cmd
	s.textinput, cmd = s.textinput.Update(msg)
	return s, cmd
}

// View renders the label, the input box and the kind filter.
func (s *SearchInput) View() string {
	label := s.styles.Title.Render("Search: ")
	box := s.styles.Input.Render(s.textinput.View())
	filter := s.styles.Filter.Render("[" + s.kind.Label() + "]")
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, box, filter)
}

// Value returns the current query.
func (s *SearchInput) Value() string {
	return s.textinput.Value()
}

// SetValue sets the query.
func (s *SearchInput) SetValue(value string) {
	s.textinput.SetValue(value)
}

// Kind returns the kind filter; empty means all kinds.
func (s *SearchInput) Kind() domain.Kind {
	return s.kind
}

// CycleKind advances the filter through all, law, regulation, other.
func (s *SearchInput) CycleKind() domain.Kind {
	s.kind = NextKind(s.kind)
	return s.kind
}

// NextKind returns the filter after k in the cycle all, law, regulation, other.
func NextKind(k domain.Kind) domain.Kind {
	if k == "" {
		return domain.Kinds[0]
	}
	for i, kind := range domain.Kinds {
		if kind == k && i+1 < len(domain.Kinds) {
			return domain.Kinds[i+1]
		}
	}
	return ""
}

// Focus sets focus on the input.
func (s *SearchInput) Focus() tea.Cmd {
	return s.textinput.Focus()
}

// Blur removes focus from the input.
func (s *SearchInput) Blur() {
	s.textinput.Blur()
}

// Focused returns whether the input is focused.
func (s *SearchInput) Focused() bool {
	return s.textinput.Focused()
}

// SetWidth sets the total width, leaving room for the label and filter.
func (s *SearchInput) SetWidth(width int) {
	s.width = width
	s.textinput.Width = max(minWidth, width-24)
}

// Width returns the current width.
func (s *SearchInput) Width() int {
	return s.width
}

// Reset clears the query. The kind filter is kept.
func (s *SearchInput) Reset() {
	s.textinput.Reset()
}
