package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/snipdeck-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/snipdeck-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/snipdeck-cli/internal/adapters/driving/tui/views/launcher"
	"github.com/custodia-labs/snipdeck-cli/internal/logger"
)

// App is the TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to the core via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// launcherView is the single overlay view.
	launcherView *launcher.View

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		launcherView: launcher.NewView(s, ports.Session),
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("snipdeck"),
		a.launcherView.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.launcherView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case messages.SnippetsReloaded:
		if a.ports.Store == nil {
			return a, nil
		}
		snippets, err := a.ports.Store.List(a.ctx)
		if err != nil {
			logger.Warn("Listing snippets after reload: %v", err)
			return a, nil
		}
		a.launcherView.Rebind(snippets)
		return a, nil

	case messages.ErrorOccurred:
		a.launcherView, cmd = a.launcherView.Update(messages.LaunchCompleted{Err: msg.Err})
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	a.launcherView, cmd = a.launcherView.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}
	return a.launcherView.View()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Launcher returns the overlay view (for testing).
func (a *App) Launcher() *launcher.View {
	return a.launcherView
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.launcherView.SetDimensions(width, height)
}
