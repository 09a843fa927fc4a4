// Package launcher implements the single overlay view: query input on
// top, the windowed result list below it and a status bar at the
// bottom.
package launcher

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/snipdeck-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/snipdeck-cli/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/snipdeck-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/snipdeck-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/snipdeck-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/snipdeck-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/snipdeck-cli/internal/core/domain"
	"github.com/custodia-labs/snipdeck-cli/internal/core/ports/driving"
)

// View is the launcher overlay.
type View struct {
	session driving.LauncherSession
	styles  *styles.Styles
	keymap  *keymap.KeyMap

	queryInput *input.QueryInput
	resultList *list.ResultList
	statusBar  *status.Bar

	width  int
	height int
}

// NewView creates the launcher view over a session.
func NewView(s *styles.Styles, session driving.LauncherSession) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	km := keymap.DefaultKeyMap()
	v := &View{
		session:    session,
		styles:     s,
		keymap:     km,
		queryInput: input.NewQueryInput(s),
		resultList: list.NewResultList(s),
		statusBar:  status.NewBar(s, km),
	}
	v.refresh()
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.queryInput.Init()
}

// Update handles messages.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v.updateKey(msg)

	case messages.LaunchCompleted:
		if msg.Err != nil {
			v.statusBar.SetError(msg.Err.Error())
			return v, nil
		}
		return v, tea.Quit
	}

	return v, nil
}

// updateKey routes one keystroke.
func (v *View) updateKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keymap.Quit):
		return v, tea.Quit

	case keymap.Matches(keyStr, v.keymap.Up):
		v.statusBar.ClearError()
		v.session.MoveUp()
		v.refresh()
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Down):
		v.statusBar.ClearError()
		v.session.MoveDown()
		v.refresh()
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Collect):
		v.statusBar.ClearError()
		if err := v.session.Collect(); err != nil {
			v.statusBar.SetError(err.Error())
		}
		v.refresh()
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Launch):
		v.statusBar.ClearError()
		return v, v.launchCmd()

	case keymap.Matches(keyStr, v.keymap.Cancel):
		if collecting, _, _ := v.session.Collecting(); collecting {
			v.session.Cancel()
			v.statusBar.ClearError()
			v.refresh()
			return v, nil
		}
		return v, tea.Quit
	}

	// Everything else edits the query.
	var cmd tea.Cmd
	v.queryInput, cmd = v.queryInput.Update(msg)
	if v.queryInput.Value() != v.session.Query() {
		v.statusBar.ClearError()
		v.session.SetQuery(v.queryInput.Value())
	}
	v.refresh()
	return v, cmd
}

// launchCmd performs the launch and reports the outcome.
func (v *View) launchCmd() tea.Cmd {
	return func() tea.Msg {
		result, err := v.session.Launch(context.Background())
		return messages.LaunchCompleted{Result: result, Err: err}
	}
}

// Rebind replaces the snippet collection after a file reload.
func (v *View) Rebind(snippets []domain.Snippet) {
	v.session.Rebind(snippets)
	v.refresh()
}

// refresh syncs the list and status bar with the session.
func (v *View) refresh() {
	view := v.session.View()
	v.resultList.SetView(view)
	v.statusBar.SetPosition(view.GlobalIndex, view.Total)

	collecting, titles, size := v.session.Collecting()
	v.statusBar.SetCollecting(collecting, len(titles), size)
}

// View renders the overlay.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("snipdeck"))
	b.WriteString("\n\n")
	b.WriteString(v.queryInput.View())
	b.WriteString("\n\n")
	b.WriteString(v.resultList.View())
	b.WriteString("\n\n")
	b.WriteString(v.statusBar.View())

	return b.String()
}

// SetDimensions sets the terminal dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.queryInput.SetWidth(width)
	v.resultList.SetWidth(width)
	v.statusBar.SetWidth(width)
}

// Query returns the current query as typed.
func (v *View) Query() string {
	return v.queryInput.Value()
}

// WindowView returns the currently rendered window.
func (v *View) WindowView() driving.WindowView {
	return v.resultList.WindowView()
}

// Err returns the error currently shown in the status bar.
func (v *View) Err() string {
	return v.statusBar.Error()
}
