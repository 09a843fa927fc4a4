package services

import (
	"math"
	"strings"
	"unicode"

	"github.com/custodia-labs/snipdeck-cli/internal/core/domain"
)

// scoreSnippet computes the combined relevance score of a snippet for
// an already-normalised (trimmed, lower-cased) query. Title and
// content are scored independently through the same tier hierarchy,
// then weighted so a title match always outranks a content-only match
// of the same tier. A zero return means "no match".
func scoreSnippet(s domain.Snippet, query string, scope domain.SearchScope, t domain.Tuning) int {
	var titleScore, contentScore int

	if scope != domain.ScopeContentOnly {
		titleScore = scoreField(s.Title, query, t)
	}
	if scope != domain.ScopeTitleOnly {
		contentScore = scoreField(s.Content, query, t)
	}

	total := float64(titleScore)*t.TitleWeight + float64(contentScore)*t.ContentWeight
	return int(math.Round(total))
}

// scoreField applies the four-tier rank hierarchy to one field.
// Tiers are evaluated in order and the first match wins:
// prefix > word boundary > substring > fuzzy subsequence.
func scoreField(field, query string, t domain.Tuning) int {
	if field == "" || query == "" {
		return 0
	}
	fieldLower := strings.ToLower(field)

	if strings.HasPrefix(fieldLower, query) {
		return t.PrefixScore
	}

	for i, word := range splitWords(fieldLower) {
		if strings.HasPrefix(word, query) {
			score := t.WordScore - t.WordPenalty*i
			// Clamp so a very late word never inverts tiers.
			if score <= t.SubstringScore {
				score = t.SubstringScore + 1
			}
			return score
		}
	}

	if strings.Contains(fieldLower, query) {
		return t.SubstringScore
	}

	if len(query) >= 2 && subsequenceCoverage(fieldLower, query) >= t.FuzzyCoverage {
		return t.FuzzyScore
	}

	return 0
}

// splitWords splits a field on whitespace, hyphen, underscore, period
// and comma for word-boundary matching.
func splitWords(field string) []string {
	return strings.FieldsFunc(field, func(r rune) bool {
		return unicode.IsSpace(r) || r == '-' || r == '_' || r == '.' || r == ','
	})
}

// subsequenceCoverage returns the fraction of query characters found
// in the field in order (not necessarily contiguous), scanning
// greedily left to right. A character with no occurrence after the
// current position is skipped without consuming field positions.
func subsequenceCoverage(field, query string) float64 {
	queryRunes := []rune(query)
	if len(queryRunes) == 0 {
		return 0
	}

	fieldRunes := []rune(field)
	matched := 0
	pos := 0
	for _, q := range queryRunes {
		for i := pos; i < len(fieldRunes); i++ {
			if fieldRunes[i] == q {
				matched++
				pos = i + 1
				break
			}
		}
	}

	return float64(matched) / float64(len(queryRunes))
}
