// Package domain holds the lovsok data model: Document and its Sections,
// the immutable Corpus snapshot, search results, and the sentinel errors
// shared by every layer.
//
// It imports nothing outside the standard library and nothing else under
// internal/.
package domain
