package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/custodia-labs/snipdeck-cli/internal/core/domain"
	"github.com/custodia-labs/snipdeck-cli/internal/core/ports/driven"
	"github.com/custodia-labs/snipdeck-cli/internal/logger"
)

// Ensure SnippetStore implements the interfaces.
var _ driven.SnippetStore = (*SnippetStore)(nil)
var _ driven.SnippetWatcher = (*SnippetStore)(nil)

// snippetRecord is the on-disk JSON shape of a single snippet.
type snippetRecord struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// SnippetStore reads snippets from a JSON file. The file holds an
// array of {"title", "content"} objects; stored order is preserved.
type SnippetStore struct {
	mu       sync.RWMutex
	path     string
	limits   domain.Limits
	snippets []domain.Snippet
	dropped  int
}

// NewSnippetStore creates a store for the given file and performs the
// initial load. An unreadable or malformed file is an error; invalid
// individual entries are dropped with a warning.
func NewSnippetStore(path string, limits domain.Limits) (*SnippetStore, error) {
	s := &SnippetStore{
		path:   path,
		limits: limits,
	}

	if err := s.reload(); err != nil {
		return nil, err
	}

	return s, nil
}

// List returns all valid snippets in their stored order.
func (s *SnippetStore) List(_ context.Context) ([]domain.Snippet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Snippet, len(s.snippets))
	copy(out, s.snippets)
	return out, nil
}

// Dropped returns how many entries the last load discarded.
func (s *SnippetStore) Dropped() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dropped
}

// Path returns the snippet file location.
func (s *SnippetStore) Path() string {
	return s.path
}

// reload re-reads the snippet file and replaces the in-memory
// collection atomically.
func (s *SnippetStore) reload() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("reading snippet file: %w", err)
	}

	var records []snippetRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("parsing snippet file %s: %w", s.path, err)
	}

	snippets := make([]domain.Snippet, 0, len(records))
	dropped := 0
	for i, rec := range records {
		snip := domain.Snippet{Title: rec.Title, Content: rec.Content}
		if err := snip.Validate(s.limits); err != nil {
			logger.Warn("Dropping snippet %d (%q): %v", i, rec.Title, err)
			dropped++
			continue
		}
		snippets = append(snippets, snip)
	}

	s.mu.Lock()
	s.snippets = snippets
	s.dropped = dropped
	s.mu.Unlock()

	logger.Debug("Loaded %d snippets from %s (%d dropped)", len(snippets), s.path, dropped)
	return nil
}

// dir returns the directory the snippet file lives in. Watching the
// directory rather than the file survives editors that rename on save.
func (s *SnippetStore) dir() string {
	return filepath.Dir(s.path)
}
