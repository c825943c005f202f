// Package filesystem reads a Lovdata corpus from the local disk.
//
// Source implements driven.CorpusSource and driven.FileStore over the
// directory layout produced by the corpus preparation tooling:
//
//	<data>/xml_pretty[/xml]/<rel>/<id>.xml   source documents
//	<data>/html/xml/<rel>/<id>.html          rendered display form
//	<data>/markdown/xml/<rel>/<id>.md        rendered simplified text
//	<data>/json/xml/<rel>/<id>.json          structured JSON
//
// Watcher implements driven.Watcher with fsnotify.
package filesystem
