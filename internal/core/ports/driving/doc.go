// Package driving defines the interfaces through which external
// actors (CLI commands, the TUI) drive the core services.
package driving
