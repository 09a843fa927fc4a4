package driven

import (
	"context"
	"time"
)

// LaunchEvent records one successful injection for usage history.
type LaunchEvent struct {
	// ID is a unique event identifier.
	ID string

	// Titles are the titles of the injected snippets, in order.
	Titles []string

	// ItemCount is the number of merged snippets (1 for a plain
	// launch).
	ItemCount int

	// PayloadSize is the injected payload length in bytes.
	PayloadSize int

	// LaunchedAt is the event timestamp.
	LaunchedAt time.Time
}

// UsageSummary aggregates launches per snippet title.
type UsageSummary struct {
	Title       string
	LaunchCount int
	LastUsed    time.Time
}

// UsageStore persists launch history.
type UsageStore interface {
	// RecordLaunch stores a launch event.
	RecordLaunch(ctx context.Context, event LaunchEvent) error

	// Top returns the n most-launched snippet titles.
	Top(ctx context.Context, n int) ([]UsageSummary, error)

	// Close releases the underlying resources.
	Close() error
}
