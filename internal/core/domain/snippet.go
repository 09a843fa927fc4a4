package domain

// Snippet represents a single launchable text entry.
// It is an immutable value: the core reorders, filters and copies
// snippets but never mutates them.
type Snippet struct {
	// Title is the human-readable label shown in result lists.
	Title string

	// Content is the text that gets injected on launch.
	Content string
}

// Size returns the content length in bytes. Accumulation limits
// are accounted in content bytes.
func (s Snippet) Size() int {
	return len(s.Content)
}

// Validate checks the snippet against the configured field limits.
// Returns ErrInvalidSnippet (wrapped with detail) for a missing title,
// missing content, or a field exceeding its limit.
func (s Snippet) Validate(limits Limits) error {
	if s.Title == "" {
		return wrapInvalid("empty title")
	}
	if s.Content == "" {
		return wrapInvalid("empty content")
	}
	if limits.MaxTitleLen > 0 && len(s.Title) > limits.MaxTitleLen {
		return wrapInvalid("title exceeds %d characters", limits.MaxTitleLen)
	}
	if limits.MaxContentLen > 0 && len(s.Content) > limits.MaxContentLen {
		return wrapInvalid("content exceeds %d characters", limits.MaxContentLen)
	}
	return nil
}

// RankedSnippet pairs a snippet with its relevance score for one query.
// It is transient: recomputed on every query, never persisted.
type RankedSnippet struct {
	// Snippet is the matched entry.
	Snippet Snippet

	// Score is the combined relevance score. Zero means "no match"
	// and never appears in ranked output for a non-empty query.
	Score int
}
