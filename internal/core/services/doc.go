// Package services holds the lovsok application logic behind the driving
// ports.
//
// CorpusIndex builds and owns the in-memory snapshot and swaps it on
// rebuild. SearchService and DocumentService never mutate state; they read
// whichever snapshot CorpusIndex last published and reach the filesystem
// only through the driven ports.
package services
