// Package sqlite persists launch history in a local SQLite database.
// The database lives under ~/.snipdeck/data by default and is opened
// in WAL mode. Schema changes are applied through embedded migration
// files at startup.
package sqlite
