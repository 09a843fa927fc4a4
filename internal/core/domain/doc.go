// Package domain contains the core business entities for snipdeck.
//
// The domain layer has no dependencies on other layers. It defines:
//
//   - Snippet: a title/content entry supplied by a loader
//   - RankedSnippet: a snippet paired with a per-query relevance score
//   - SearchScope and SearchOptions: field restriction for scoring
//   - Tuning, Limits, Config: injected configuration constants
//   - Sentinel errors for validation, capacity and empty-state failures
package domain
