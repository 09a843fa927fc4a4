// Package file provides a TOML-backed configuration store for
// snipdeck. Values live in ~/.snipdeck/config.toml by default and are
// flattened to dot-notation keys ("search.max_results"). The package
// also maps stored values onto the typed domain configuration.
package file
