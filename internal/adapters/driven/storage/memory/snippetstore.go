package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/snipdeck-cli/internal/core/domain"
	"github.com/custodia-labs/snipdeck-cli/internal/core/ports/driven"
)

// Ensure SnippetStore implements the interface.
var _ driven.SnippetStore = (*SnippetStore)(nil)

// SnippetStore holds a fixed snippet collection in memory.
type SnippetStore struct {
	mu       sync.RWMutex
	snippets []domain.Snippet
}

// NewSnippetStore creates a store seeded with the given snippets.
func NewSnippetStore(snippets []domain.Snippet) *SnippetStore {
	s := &SnippetStore{}
	s.Replace(snippets)
	return s
}

// List returns all snippets in their stored order.
func (s *SnippetStore) List(_ context.Context) ([]domain.Snippet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Snippet, len(s.snippets))
	copy(out, s.snippets)
	return out, nil
}

// Replace swaps the whole collection.
func (s *SnippetStore) Replace(snippets []domain.Snippet) {
	next := make([]domain.Snippet, len(snippets))
	copy(next, snippets)

	s.mu.Lock()
	s.snippets = next
	s.mu.Unlock()
}
