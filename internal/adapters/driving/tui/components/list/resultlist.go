// Package list renders the visible window over the ranked snippets.
package list

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/snipdeck-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/snipdeck-cli/internal/core/ports/driving"
)

// ResultList displays the window the navigator exposes. Navigation
// state lives in the session; this component only renders.
type ResultList struct {
	view   driving.WindowView
	styles *styles.Styles
	width  int
}

// NewResultList creates a new result list component.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ResultList{
		styles: s,
		width:  80,
	}
}

// View renders the visible window.
func (r *ResultList) View() string {
	if r.view.Total == 0 {
		return r.styles.Muted.Render("  No matching snippets")
	}

	lines := make([]string, 0, len(r.view.Results))
	for row, ranked := range r.view.Results {
		lines = append(lines, r.renderRow(row, ranked.Snippet.Title, ranked.Score))
	}

	return strings.Join(lines, "\n")
}

// renderRow formats one visible row.
func (r *ResultList) renderRow(row int, title string, score int) string {
	indicator := "  "
	if row == r.view.CursorRow {
		indicator = "> "
	}

	maxTitleLen := r.width - 12
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}
	if len(title) > maxTitleLen {
		title = title[:maxTitleLen-3] + "..."
	}

	line := fmt.Sprintf("%s%-*s %5d", indicator, maxTitleLen, title, score)
	if row == r.view.CursorRow {
		return r.styles.Selected.Render(line)
	}
	return r.styles.Normal.Render(fmt.Sprintf("%s%-*s ", indicator, maxTitleLen, title)) +
		r.styles.Muted.Render(fmt.Sprintf("%5d", score))
}

// SetView updates the rendered window.
func (r *ResultList) SetView(view driving.WindowView) {
	r.view = view
}

// WindowView returns the currently rendered window.
func (r *ResultList) WindowView() driving.WindowView {
	return r.view
}

// SetWidth sets the component width.
func (r *ResultList) SetWidth(width int) {
	r.width = width
}

// Width returns the current width.
func (r *ResultList) Width() int {
	return r.width
}

// IsEmpty returns whether there are no results.
func (r *ResultList) IsEmpty() bool {
	return r.view.Total == 0
}
