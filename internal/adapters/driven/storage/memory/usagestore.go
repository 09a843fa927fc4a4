package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/snipdeck-cli/internal/core/ports/driven"
)

// Ensure UsageStore implements the interface.
var _ driven.UsageStore = (*UsageStore)(nil)

// UsageStore keeps launch history in memory.
type UsageStore struct {
	mu     sync.RWMutex
	events []driven.LaunchEvent
}

// NewUsageStore creates an empty in-memory usage store.
func NewUsageStore() *UsageStore {
	return &UsageStore{}
}

// RecordLaunch appends a launch event.
func (s *UsageStore) RecordLaunch(_ context.Context, event driven.LaunchEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, event)
	return nil
}

// Events returns a copy of all recorded events.
func (s *UsageStore) Events() []driven.LaunchEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]driven.LaunchEvent, len(s.events))
	copy(out, s.events)
	return out
}

// Top returns the n most-launched snippet titles. Ties break
// alphabetically so the order is deterministic.
func (s *UsageStore) Top(_ context.Context, n int) ([]driven.UsageSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byTitle := make(map[string]*driven.UsageSummary)
	for _, ev := range s.events {
		for _, title := range ev.Titles {
			sum, ok := byTitle[title]
			if !ok {
				sum = &driven.UsageSummary{Title: title}
				byTitle[title] = sum
			}
			sum.LaunchCount++
			if ev.LaunchedAt.After(sum.LastUsed) {
				sum.LastUsed = ev.LaunchedAt
			}
		}
	}

	summaries := make([]driven.UsageSummary, 0, len(byTitle))
	for _, sum := range byTitle {
		summaries = append(summaries, *sum)
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].LaunchCount != summaries[j].LaunchCount {
			return summaries[i].LaunchCount > summaries[j].LaunchCount
		}
		return summaries[i].Title < summaries[j].Title
	})

	if n > 0 && len(summaries) > n {
		summaries = summaries[:n]
	}
	return summaries, nil
}

// Close is a no-op for the in-memory store.
func (s *UsageStore) Close() error {
	return nil
}
