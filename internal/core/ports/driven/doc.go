// Package driven defines the interfaces the core requires from
// infrastructure adapters (storage, injection, configuration).
// Adapters implement these; the core only depends on the interfaces.
package driven
