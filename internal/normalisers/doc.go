// Package normalisers holds the parsers that turn source files into domain
// documents. The lovdata subpackage is the only one; it understands the
// markup of the Lovdata public-data dump.
package normalisers
