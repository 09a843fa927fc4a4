package cli

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/snipdeck-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/snipdeck-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/snipdeck-cli/internal/core/ports/driven"
	"github.com/custodia-labs/snipdeck-cli/internal/core/services"
	"github.com/custodia-labs/snipdeck-cli/internal/logger"
)

var launchCmd = &cobra.Command{
	Use:   "launch",
	Short: "Open the interactive launcher overlay",
	Long: `Open the interactive launcher overlay.

Controls:
  (type)   Filter snippets
  ↑/↓      Navigate with wrap-around
  enter    Launch the selection (or the accumulation)
  tab      Collect the selection for a combined launch
  esc      Cancel collecting / dismiss the overlay
  ctrl+c   Quit`,
	RunE: runLaunch,
}

func init() {
	rootCmd.AddCommand(launchCmd)
}

func runLaunch(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	d, err := ensureDeps()
	if err != nil {
		return err
	}
	defer closeDeps()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	snippets, err := d.SnippetStore.List(ctx)
	if err != nil {
		return fmt.Errorf("listing snippets: %w", err)
	}

	session := services.NewSession(d.Search, d.Injector, d.Config, snippets).
		WithUsageStore(d.UsageStore).
		WithNotifier(d.Notifier)

	app, err := tui.NewApp(tui.NewPorts(session, d.SnippetStore))
	if err != nil {
		return fmt.Errorf("creating TUI: %w", err)
	}
	app.WithContext(ctx)

	p := tea.NewProgram(app, tea.WithAltScreen())

	// Reload the overlay when the snippet file changes on disk.
	if watcher, ok := d.SnippetStore.(driven.SnippetWatcher); ok {
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		go func() {
			err := watcher.Watch(watchCtx, func() {
				p.Send(messages.SnippetsReloaded{})
			})
			if err != nil && watchCtx.Err() == nil {
				logger.Warn("Snippet watcher stopped: %v", err)
			}
		}()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
