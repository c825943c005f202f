// Package connectors provides the corpus sources lovsok reads documents from.
// The filesystem connector is the only source; it reads the prepared Lovdata
// tree from disk and watches it for changes.
package connectors
