// Package memory provides in-memory implementations of the driven
// storage ports. They back tests and one-shot command invocations
// where nothing needs to survive the process.
package memory
