// Package messages defines Bubbletea message types for the TUI.
// Messages represent events that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/snipdeck-cli/internal/core/ports/driving"
)

// SnippetsReloaded is sent after the snippet file changed on disk and
// the store finished reloading.
type SnippetsReloaded struct{}

// LaunchCompleted carries the outcome of a launch attempt.
type LaunchCompleted struct {
	Result driving.LaunchResult
	Err    error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit without launching.
type Quit struct{}
