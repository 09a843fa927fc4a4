package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/snipdeck-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/snipdeck-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/snipdeck-cli/internal/core/domain"
	"github.com/custodia-labs/snipdeck-cli/internal/core/services"
)

type nopInjector struct{}

func (nopInjector) Inject(_ context.Context, _ string, _ int) error { return nil }

func newTestPorts() (*Ports, *memory.SnippetStore) {
	snippets := []domain.Snippet{
		{Title: "Commit progress", Content: "git add -A && git commit"},
		{Title: "Update docs", Content: "please update the docs"},
	}
	store := memory.NewSnippetStore(snippets)

	cfg := domain.DefaultConfig()
	search := services.NewSearchService(cfg.Tuning)
	session := services.NewSession(search, nopInjector{}, cfg, snippets)

	return NewPorts(session, store), store
}

func TestNewApp_Success(t *testing.T) {
	ports, _ := newTestPorts()

	app, err := NewApp(ports)

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.False(t, app.Ready())
}

func TestNewApp_MissingSession(t *testing.T) {
	app, err := NewApp(&Ports{})

	assert.ErrorIs(t, err, ErrMissingSession)
	assert.Nil(t, app)
}

func TestApp_WindowSizeMakesReady(t *testing.T) {
	ports, _ := newTestPorts()
	app, err := NewApp(ports)
	require.NoError(t, err)

	model, _ := app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	updated, ok := model.(*App)
	require.True(t, ok)
	assert.True(t, updated.Ready())
}

func TestApp_ViewBeforeReady(t *testing.T) {
	ports, _ := newTestPorts()
	app, err := NewApp(ports)
	require.NoError(t, err)

	assert.Contains(t, app.View(), "Initialising")
}

func TestApp_ViewAfterReady(t *testing.T) {
	ports, _ := newTestPorts()
	app, err := NewApp(ports)
	require.NoError(t, err)

	app.SetDimensions(80, 24)

	out := app.View()
	assert.Contains(t, out, "snipdeck")
	assert.Contains(t, out, "Commit progress")
}

func TestApp_SnippetsReloadedRebindsSession(t *testing.T) {
	ports, store := newTestPorts()
	app, err := NewApp(ports)
	require.NoError(t, err)
	app.SetDimensions(80, 24)

	store.Replace([]domain.Snippet{
		{Title: "Fresh snippet", Content: "fresh content"},
	})
	model, _ := app.Update(messages.SnippetsReloaded{})

	updated, ok := model.(*App)
	require.True(t, ok)
	assert.Equal(t, 1, updated.Launcher().WindowView().Total)
	assert.Contains(t, updated.View(), "Fresh snippet")
}

func TestApp_QuitMessage(t *testing.T) {
	ports, _ := newTestPorts()
	app, err := NewApp(ports)
	require.NoError(t, err)

	_, cmd := app.Update(messages.Quit{})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_KeysReachLauncher(t *testing.T) {
	ports, _ := newTestPorts()
	app, err := NewApp(ports)
	require.NoError(t, err)
	app.SetDimensions(80, 24)

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyDown})

	updated, ok := model.(*App)
	require.True(t, ok)
	assert.Equal(t, 1, updated.Launcher().WindowView().GlobalIndex)
}
