package driven

import (
	"context"

	"github.com/custodia-labs/snipdeck-cli/internal/core/domain"
)

// SnippetStore supplies the validated, ordered snippet collection.
// Implementations are responsible for schema validation and for
// dropping invalid entries before they reach the core.
type SnippetStore interface {
	// List returns all valid snippets in their stored order.
	List(ctx context.Context) ([]domain.Snippet, error)
}

// SnippetWatcher extends a store with change notification.
// Watch blocks until ctx is cancelled, invoking onChange after the
// underlying collection has been reloaded.
type SnippetWatcher interface {
	SnippetStore

	Watch(ctx context.Context, onChange func()) error
}
