package driving

import (
	"context"

	"github.com/custodia-labs/snipdeck-cli/internal/core/domain"
)

// WindowView is a renderable slice of the ranked result list.
type WindowView struct {
	// Results is the visible portion of the ranked list.
	Results []domain.RankedSnippet

	// CursorRow is the selected row within Results.
	CursorRow int

	// GlobalIndex is the absolute index of the selection in the full
	// ranked list. Undefined when Total is zero.
	GlobalIndex int

	// Total is the full ranked list length.
	Total int
}

// LaunchResult reports the outcome of a launch for user feedback.
type LaunchResult struct {
	// ItemCount is the number of merged snippets.
	ItemCount int

	// PayloadSize is the injected payload length in bytes.
	PayloadSize int
}

// LauncherSession is the orchestration surface one overlay invocation
// drives: re-ranking per keystroke, windowed navigation, combining
// mode and launch.
type LauncherSession interface {
	// SetQuery re-ranks for q and resets navigation. Mode prefixes
	// ("t:", "c:") restrict the search scope.
	SetQuery(q string)

	// Query returns the raw query as typed.
	Query() string

	// View returns the current visible window.
	View() WindowView

	// MoveUp and MoveDown move the selection cursor with wrap-around.
	MoveUp()
	MoveDown()

	// Selected returns the snippet under the cursor, or false when
	// the result list is empty.
	Selected() (domain.Snippet, bool)

	// Collect pushes the selected snippet into the accumulation.
	Collect() error

	// Collecting reports whether combining mode is active, along with
	// the collected titles and their running size.
	Collecting() (bool, []string, int)

	// Launch injects the accumulated payload, or the selected
	// snippet's content when not collecting.
	Launch(ctx context.Context) (LaunchResult, error)

	// Cancel discards the accumulation and leaves combining mode.
	Cancel()

	// Rebind replaces the underlying snippet collection, re-ranks the
	// current query and resets navigation.
	Rebind(snippets []domain.Snippet)
}
