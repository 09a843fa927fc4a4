package services

import (
	"strings"

	"github.com/custodia-labs/snipdeck-cli/internal/core/domain"
)

// Accumulator collects snippets for a single merged payload
// ("combining mode"). Members form an ordered multiset: insertion
// order is preserved and duplicates are allowed; rejecting repeats is
// left to the orchestration layer. The total size is tracked
// incrementally so reading it is O(1).
//
// The state machine is Idle (no members) or Collecting (at least
// one); every failed operation leaves members and size untouched.
type Accumulator struct {
	limits      domain.Limits
	maxCombined int
	members     []domain.Snippet
	totalSize   int
}

// NewAccumulator creates an empty accumulator. maxCombined caps the
// summed content size; zero disables the cap.
func NewAccumulator(limits domain.Limits, maxCombined int) *Accumulator {
	return &Accumulator{
		limits:      limits,
		maxCombined: maxCombined,
	}
}

// Add appends a snippet to the collection. It fails with
// ErrInvalidSnippet for a structurally invalid snippet and with
// ErrPayloadTooLarge when the addition would exceed the combined-size
// ceiling; in both cases the accumulation is unchanged.
func (a *Accumulator) Add(s domain.Snippet) error {
	if err := s.Validate(a.limits); err != nil {
		return err
	}
	if a.maxCombined > 0 && a.totalSize+s.Size() > a.maxCombined {
		return domain.ErrPayloadTooLarge
	}

	a.members = append(a.members, s)
	a.totalSize += s.Size()
	return nil
}

// Collecting reports whether combining mode is active.
func (a *Accumulator) Collecting() bool {
	return len(a.members) > 0
}

// Count returns the number of collected snippets.
func (a *Accumulator) Count() int {
	return len(a.members)
}

// TotalSize returns the summed content size of the members.
func (a *Accumulator) TotalSize() int {
	return a.totalSize
}

// Titles returns the ordered member titles for display.
func (a *Accumulator) Titles() []string {
	if len(a.members) == 0 {
		return nil
	}
	titles := make([]string, len(a.members))
	for i, m := range a.members {
		titles[i] = m.Title
	}
	return titles
}

// Cancel discards all members and returns to Idle.
func (a *Accumulator) Cancel() {
	a.members = nil
	a.totalSize = 0
}

// Finalize joins the member contents with newlines and returns the
// merged payload together with the member count, clearing the
// accumulation on success. It fails with ErrEmptySelection when
// nothing was collected, and with ErrPayloadTooLarge if the joined
// payload exceeds the ceiling (defence in depth; per-add checks make
// this unreachable in practice). On failure the members are kept.
func (a *Accumulator) Finalize() (string, int, error) {
	if len(a.members) == 0 {
		return "", 0, domain.ErrEmptySelection
	}

	contents := make([]string, len(a.members))
	for i, m := range a.members {
		contents[i] = m.Content
	}
	joined := strings.Join(contents, "\n")

	if a.maxCombined > 0 && len(joined) > a.maxCombined {
		return "", 0, domain.ErrPayloadTooLarge
	}

	count := len(a.members)
	a.members = nil
	a.totalSize = 0
	return joined, count, nil
}
