package services

import (
	"math"
	"sort"
	"strings"

	"github.com/custodia-labs/snipdeck-cli/internal/core/domain"
	"github.com/custodia-labs/snipdeck-cli/internal/core/ports/driving"
	"github.com/custodia-labs/snipdeck-cli/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService filters and ranks a snippet collection for a query.
// It is stateless; all constants come from the injected tuning.
type SearchService struct {
	tuning domain.Tuning
}

// NewSearchService creates a search service with the given tuning.
func NewSearchService(tuning domain.Tuning) *SearchService {
	return &SearchService{tuning: tuning}
}

// Rank scores every snippet for the query, discards non-matches and
// returns the survivors ordered by score descending. Ties keep input
// order (the sort is stable) so results are deterministic.
//
// An empty or whitespace-only query means "no search active": every
// snippet is returned unscored in input order. A non-empty query runs
// the adaptive filter: the top hit always survives, then results are
// kept while they score at least max(top*RelativeThreshold, MinScore),
// capped at MaxResults.
func (s *SearchService) Rank(
	snippets []domain.Snippet, query string, opts domain.SearchOptions,
) []domain.RankedSnippet {
	logger.Section("Rank")
	logger.Debug("Query: %q, scope: %s", query, opts.Scope)

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		logger.Debug("Empty query, returning %d snippets unfiltered", len(snippets))
		return identityResults(snippets)
	}

	if len(snippets) == 0 {
		return []domain.RankedSnippet{}
	}

	scored := make([]domain.RankedSnippet, 0, len(snippets))
	for _, snip := range snippets {
		score := scoreSnippet(snip, q, opts.Scope, s.tuning)
		if score == 0 {
			continue
		}
		scored = append(scored, domain.RankedSnippet{Snippet: snip, Score: score})
	}

	logger.Debug("Matches: %d of %d", len(scored), len(snippets))
	if len(scored) == 0 {
		return []domain.RankedSnippet{}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	results := s.adaptiveFilter(scored)
	logger.Info("Final results: %d (top score %d)", len(results), results[0].Score)

	return results
}

// adaptiveFilter trims the sorted scored list so result-set size
// tracks query specificity: broad queries keep few loosely-related
// hits, specific queries keep up to MaxResults near-ties.
func (s *SearchService) adaptiveFilter(scored []domain.RankedSnippet) []domain.RankedSnippet {
	top := scored[0].Score

	threshold := int(math.Round(float64(top) * s.tuning.RelativeThreshold))
	if threshold < s.tuning.MinScore {
		threshold = s.tuning.MinScore
	}
	logger.Debug("Adaptive threshold: %d (top %d)", threshold, top)

	// The top hit always survives, below-threshold or not.
	results := scored[:1]
	for _, r := range scored[1:] {
		if s.tuning.MaxResults > 0 && len(results) >= s.tuning.MaxResults {
			break
		}
		if r.Score < threshold {
			break
		}
		results = append(results, r)
	}

	return results
}

// identityResults wraps snippets without scoring, preserving order
// and membership.
func identityResults(snippets []domain.Snippet) []domain.RankedSnippet {
	results := make([]domain.RankedSnippet, len(snippets))
	for i, snip := range snippets {
		results[i] = domain.RankedSnippet{Snippet: snip}
	}
	return results
}
