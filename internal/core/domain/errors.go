package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates the requested document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrSectionNotFound indicates the document exists but no section heading matched.
	ErrSectionNotFound = errors.New("section not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidKind indicates a kind filter outside law, regulation, other.
	ErrInvalidKind = errors.New("invalid kind")

	// ErrInvalidFormat indicates a raw view format outside the fixed set.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrFormatNotAvailable indicates no file for the format was found at ingestion.
	ErrFormatNotAvailable = errors.New("format not available")

	// ErrFileMissing indicates a recorded file no longer exists on disk.
	ErrFileMissing = errors.New("file missing")

	// ErrCorpusEmpty indicates nothing was loaded, as opposed to nothing matching.
	ErrCorpusEmpty = errors.New("corpus empty")

	// ErrParse indicates a source file could not be turned into a document.
	ErrParse = errors.New("parse failed")
)
