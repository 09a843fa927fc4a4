// Package file loads the snippet collection from a JSON file and
// watches it for edits. Invalid entries are dropped with a warning
// rather than failing the whole load, so one bad snippet never takes
// the launcher down.
package file
