// Package tui provides the interactive launcher overlay for snipdeck.
// It implements a driving adapter following hexagonal architecture
// principles.
package tui

import (
	"github.com/custodia-labs/snipdeck-cli/internal/core/ports/driven"
	"github.com/custodia-labs/snipdeck-cli/internal/core/ports/driving"
)

// Ports aggregates the interfaces the TUI needs. This provides a
// single injection point for dependency injection.
type Ports struct {
	// Session drives one overlay invocation.
	Session driving.LauncherSession

	// Store supplies snippets after a reload notification. Optional;
	// without it reload messages are ignored.
	Store driven.SnippetStore
}

// NewPorts creates a new Ports aggregate.
func NewPorts(session driving.LauncherSession, store driven.SnippetStore) *Ports {
	return &Ports{
		Session: session,
		Store:   store,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Session == nil {
		return ErrMissingSession
	}
	return nil
}
