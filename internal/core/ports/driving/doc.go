// Package driving declares what the command line, the MCP server and the
// terminal browser may ask of the core: search, document access and corpus
// lifecycle. internal/core/services provides the implementations.
package driving
