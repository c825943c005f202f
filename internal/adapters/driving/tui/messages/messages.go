// Package messages defines Bubbletea message types for the TUI.
package messages

import (
	"github.com/custodia-labs/lovsok/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewSearch is the query input and result list.
	ViewSearch ViewType = iota
	// ViewReader shows one document.
	ViewReader
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewSearch:
		return "search"
	case ViewReader:
		return "reader"
	default:
		return "unknown"
	}
}

// SearchCompleted carries a search response back to the model. Seq
// identifies the request so responses to superseded searches can be dropped.
type SearchCompleted struct {
	Seq      uint64
	Response *domain.SearchResponse
	Err      error
}

// DocumentSelected is sent when a result is opened.
type DocumentSelected struct {
	ID string
}

// DocumentLoaded carries a fetched document.
type DocumentLoaded struct {
	ID       string
	Document *domain.Document
	Err      error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
