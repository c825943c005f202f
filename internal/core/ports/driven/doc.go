// Package driven declares the infrastructure the core depends on.
//
// Needed for any corpus build:
//
//   - CorpusSource: walks the source tree and probes sibling renderings
//   - Normaliser: parses one source file into a Document
//   - FileStore: reads alternate renderings when a client asks for them
//   - ConfigStore: persisted settings
//
// Watcher is optional. When it is nil the corpus is built once and never
// refreshed.
//
// Only the domain package may be imported from here.
package driven
