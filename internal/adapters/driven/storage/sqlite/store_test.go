package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/snipdeck-cli/internal/core/domain"
	"github.com/custodia-labs/snipdeck-cli/internal/core/ports/driven"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})

	return store
}

func testEvent(titles []string, at time.Time) driven.LaunchEvent {
	size := 0
	for _, title := range titles {
		size += len(title)
	}
	return driven.LaunchEvent{
		ID:          uuid.NewString(),
		Titles:      titles,
		ItemCount:   len(titles),
		PayloadSize: size,
		LaunchedAt:  at,
	}
}

func TestNewStore_RunsMigrations(t *testing.T) {
	store := setupTestStore(t)

	count, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestNewStore_ReopenIsIdempotent(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := NewStore(dir)
	require.NoError(t, err)
	assert.NoError(t, reopened.Close())
}

func TestStore_RecordLaunchAndGet(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	event := testEvent([]string{"Git commit", "Docs"}, at)
	require.NoError(t, store.RecordLaunch(ctx, event))

	got, err := store.Get(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, event.ID, got.ID)
	assert.Equal(t, 2, got.ItemCount)
	assert.Equal(t, event.PayloadSize, got.PayloadSize)
	assert.Equal(t, []string{"Git commit", "Docs"}, got.Titles)
	assert.True(t, got.LaunchedAt.Equal(at))
}

func TestStore_RecordLaunchRequiresID(t *testing.T) {
	store := setupTestStore(t)

	err := store.RecordLaunch(context.Background(), driven.LaunchEvent{
		Titles:    []string{"a"},
		ItemCount: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStore_RecordLaunchFillsTimestamp(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	event := testEvent([]string{"a"}, time.Time{})
	require.NoError(t, store.RecordLaunch(ctx, event))

	got, err := store.Get(ctx, event.ID)
	require.NoError(t, err)
	assert.False(t, got.LaunchedAt.IsZero())
}

func TestStore_GetMissingReturnsNotFound(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.Get(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_TopAggregatesAcrossLaunches(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.RecordLaunch(ctx, testEvent([]string{"Git commit"}, base)))
	require.NoError(t, store.RecordLaunch(ctx, testEvent([]string{"Git commit", "Docs"}, base.Add(time.Hour))))
	require.NoError(t, store.RecordLaunch(ctx, testEvent([]string{"Git commit"}, base.Add(2*time.Hour))))

	top, err := store.Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 2)

	assert.Equal(t, "Git commit", top[0].Title)
	assert.Equal(t, 3, top[0].LaunchCount)
	assert.True(t, top[0].LastUsed.Equal(base.Add(2*time.Hour)))

	assert.Equal(t, "Docs", top[1].Title)
	assert.Equal(t, 1, top[1].LaunchCount)
}

func TestStore_TopCapsResults(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	at := time.Now().UTC()
	for _, title := range []string{"a", "b", "c", "d"} {
		require.NoError(t, store.RecordLaunch(ctx, testEvent([]string{title}, at)))
	}

	top, err := store.Top(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, top, 2)
}

func TestStore_TopTiesBreakAlphabetically(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	at := time.Now().UTC()
	require.NoError(t, store.RecordLaunch(ctx, testEvent([]string{"zeta"}, at)))
	require.NoError(t, store.RecordLaunch(ctx, testEvent([]string{"alpha"}, at)))

	top, err := store.Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "alpha", top[0].Title)
	assert.Equal(t, "zeta", top[1].Title)
}

func TestStore_Count(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	at := time.Now().UTC()
	require.NoError(t, store.RecordLaunch(ctx, testEvent([]string{"a"}, at)))
	require.NoError(t, store.RecordLaunch(ctx, testEvent([]string{"b", "c"}, at)))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
