package domain

// RawDocument is one source file as read from disk.
// It is the normaliser's input.
type RawDocument struct {
	// ID is the filename without extension.
	ID string

	// Path is the absolute or root-joined file path.
	Path string

	// RelPath is the path relative to the source root, extension included.
	RelPath string

	// Content is the raw bytes.
	Content []byte
}
