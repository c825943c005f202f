// Package file stores lovsok settings in a TOML file, by default
// ~/.lovsok/config.toml.
package file
