package driving

import (
	"github.com/custodia-labs/snipdeck-cli/internal/core/domain"
)

// SearchService ranks a snippet collection for a query.
type SearchService interface {
	// Rank filters and orders snippets by relevance. An empty or
	// whitespace-only query returns every snippet in input order.
	// Index 0 of the result is the most relevant hit.
	Rank(snippets []domain.Snippet, query string, opts domain.SearchOptions) []domain.RankedSnippet
}
