package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/snipdeck-cli/internal/core/domain"
	"github.com/custodia-labs/snipdeck-cli/internal/core/ports/driven"
	"github.com/custodia-labs/snipdeck-cli/internal/core/ports/driving"
	"github.com/custodia-labs/snipdeck-cli/internal/logger"
)

// Mode prefixes restrict the search scope for one query. Parsing them
// here keeps the scorer free of string sniffing.
const (
	titleOnlyPrefix   = "t:"
	contentOnlyPrefix = "c:"
)

// Ensure Session implements the interface.
var _ driving.LauncherSession = (*Session)(nil)

// Session orchestrates one overlay invocation: it re-ranks on every
// query change, walks the ranked list through a window navigator and
// drives the accumulator for combining mode. Host input events are
// serialised, so the session needs no locking.
type Session struct {
	search   driving.SearchService
	injector driven.Injector
	usage    driven.UsageStore
	notifier driven.Notifier

	cfg      domain.Config
	snippets []domain.Snippet
	query    string
	ranked   []domain.RankedSnippet
	nav      *WindowNavigator
	acc      *Accumulator
}

// NewSession creates a launcher session over the given snippets.
// The initial state shows every snippet unfiltered.
func NewSession(
	search driving.SearchService,
	injector driven.Injector,
	cfg domain.Config,
	snippets []domain.Snippet,
) *Session {
	s := &Session{
		search:   search,
		injector: injector,
		cfg:      cfg,
		snippets: snippets,
		nav:      NewWindowNavigator(cfg.WindowSize),
		acc:      NewAccumulator(cfg.Limits, cfg.MaxCombinedSize),
	}
	s.SetQuery("")
	return s
}

// WithUsageStore attaches an optional launch-history store.
func (s *Session) WithUsageStore(store driven.UsageStore) *Session {
	s.usage = store
	return s
}

// WithNotifier attaches an optional launch notifier.
func (s *Session) WithNotifier(n driven.Notifier) *Session {
	s.notifier = n
	return s
}

// SetQuery re-ranks the snippet collection for q and resets the
// navigator: a new result set invalidates the old cursor.
func (s *Session) SetQuery(q string) {
	s.query = q
	scope, stripped := parseScope(q)
	s.ranked = s.search.Rank(s.snippets, stripped, domain.SearchOptions{Scope: scope})
	s.nav.Rebind(len(s.ranked))
}

// Query returns the raw query as typed, including any mode prefix.
func (s *Session) Query() string {
	return s.query
}

// Rebind replaces the snippet collection (after a file reload) and
// re-evaluates the current query against it.
func (s *Session) Rebind(snippets []domain.Snippet) {
	s.snippets = snippets
	s.SetQuery(s.query)
}

// View returns the visible window over the ranked list.
func (s *Session) View() driving.WindowView {
	start, end := s.nav.Window()
	return driving.WindowView{
		Results:     s.ranked[start:end],
		CursorRow:   s.nav.CursorRow(),
		GlobalIndex: s.nav.GlobalIndex(),
		Total:       len(s.ranked),
	}
}

// MoveUp moves the selection up with wrap-around.
func (s *Session) MoveUp() {
	s.nav.MoveUp()
}

// MoveDown moves the selection down with wrap-around.
func (s *Session) MoveDown() {
	s.nav.MoveDown()
}

// Selected returns the snippet under the cursor.
func (s *Session) Selected() (domain.Snippet, bool) {
	if len(s.ranked) == 0 {
		return domain.Snippet{}, false
	}
	return s.ranked[s.nav.GlobalIndex()].Snippet, true
}

// Collect pushes the selected snippet into the accumulation,
// entering combining mode on the first call.
func (s *Session) Collect() error {
	snip, ok := s.Selected()
	if !ok {
		return domain.ErrEmptySelection
	}
	return s.acc.Add(snip)
}

// Collecting reports combining-mode state for display.
func (s *Session) Collecting() (bool, []string, int) {
	return s.acc.Collecting(), s.acc.Titles(), s.acc.TotalSize()
}

// Cancel discards the accumulation.
func (s *Session) Cancel() {
	s.acc.Cancel()
}

// Launch injects either the merged accumulation or, outside combining
// mode, the selected snippet's content alone.
func (s *Session) Launch(ctx context.Context) (driving.LaunchResult, error) {
	if s.acc.Collecting() {
		titles := s.acc.Titles()
		payload, count, err := s.acc.Finalize()
		if err != nil {
			return driving.LaunchResult{}, err
		}
		return s.inject(ctx, payload, count, titles)
	}

	snip, ok := s.Selected()
	if !ok {
		return driving.LaunchResult{}, domain.ErrEmptySelection
	}
	return s.inject(ctx, snip.Content, 1, []string{snip.Title})
}

// inject delivers the payload and records the launch. Usage and
// notification failures are reported but never fail the launch.
func (s *Session) inject(
	ctx context.Context, payload string, count int, titles []string,
) (driving.LaunchResult, error) {
	if err := s.injector.Inject(ctx, payload, count); err != nil {
		return driving.LaunchResult{}, err
	}

	result := driving.LaunchResult{ItemCount: count, PayloadSize: len(payload)}

	if s.usage != nil {
		event := driven.LaunchEvent{
			ID:          uuid.NewString(),
			Titles:      titles,
			ItemCount:   count,
			PayloadSize: len(payload),
			LaunchedAt:  time.Now().UTC(),
		}
		if err := s.usage.RecordLaunch(ctx, event); err != nil {
			logger.Warn("Recording launch: %v", err)
		}
	}

	if s.notifier != nil {
		message := "Injected 1 snippet"
		if count > 1 {
			message = fmt.Sprintf("Injected %d snippets", count)
		}
		if err := s.notifier.Notify(ctx, "snipdeck", message); err != nil {
			logger.Debug("Notification failed: %v", err)
		}
	}

	return result, nil
}

// parseScope splits an optional mode prefix off the query.
func parseScope(q string) (domain.SearchScope, string) {
	trimmed := strings.TrimSpace(q)
	switch {
	case strings.HasPrefix(trimmed, titleOnlyPrefix):
		return domain.ScopeTitleOnly, strings.TrimPrefix(trimmed, titleOnlyPrefix)
	case strings.HasPrefix(trimmed, contentOnlyPrefix):
		return domain.ScopeContentOnly, strings.TrimPrefix(trimmed, contentOnlyPrefix)
	default:
		return domain.ScopeAll, trimmed
	}
}
