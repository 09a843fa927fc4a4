package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/snipdeck-cli/internal/core/domain"
	"github.com/custodia-labs/snipdeck-cli/internal/core/ports/driven"
)

func TestSnippetStore_ListPreservesOrder(t *testing.T) {
	store := NewSnippetStore([]domain.Snippet{
		{Title: "b", Content: "2"},
		{Title: "a", Content: "1"},
	})

	snippets, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, snippets, 2)
	assert.Equal(t, "b", snippets[0].Title)
	assert.Equal(t, "a", snippets[1].Title)
}

func TestSnippetStore_ReplaceSwapsCollection(t *testing.T) {
	store := NewSnippetStore([]domain.Snippet{{Title: "a", Content: "1"}})

	store.Replace([]domain.Snippet{
		{Title: "x", Content: "9"},
		{Title: "y", Content: "8"},
	})

	snippets, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, snippets, 2)
	assert.Equal(t, "x", snippets[0].Title)
}

func TestSnippetStore_ListReturnsCopy(t *testing.T) {
	store := NewSnippetStore([]domain.Snippet{{Title: "a", Content: "1"}})

	first, err := store.List(context.Background())
	require.NoError(t, err)
	first[0].Title = "mutated"

	second, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a", second[0].Title)
}

func TestUsageStore_RecordAndTop(t *testing.T) {
	store := NewUsageStore()
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	record := func(id string, at time.Time, titles ...string) {
		require.NoError(t, store.RecordLaunch(ctx, driven.LaunchEvent{
			ID:         id,
			Titles:     titles,
			ItemCount:  len(titles),
			LaunchedAt: at,
		}))
	}

	record("1", base, "Git commit")
	record("2", base.Add(time.Hour), "Git commit", "Docs")
	record("3", base.Add(2*time.Hour), "Docs")
	record("4", base.Add(3*time.Hour), "Git commit")

	top, err := store.Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 2)

	assert.Equal(t, "Git commit", top[0].Title)
	assert.Equal(t, 3, top[0].LaunchCount)
	assert.Equal(t, base.Add(3*time.Hour), top[0].LastUsed)

	assert.Equal(t, "Docs", top[1].Title)
	assert.Equal(t, 2, top[1].LaunchCount)
}

func TestUsageStore_TopCapsResults(t *testing.T) {
	store := NewUsageStore()
	ctx := context.Background()

	for _, title := range []string{"a", "b", "c"} {
		require.NoError(t, store.RecordLaunch(ctx, driven.LaunchEvent{
			ID:     title,
			Titles: []string{title},
		}))
	}

	top, err := store.Top(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, top, 2)
}

func TestUsageStore_TopTiesBreakAlphabetically(t *testing.T) {
	store := NewUsageStore()
	ctx := context.Background()

	require.NoError(t, store.RecordLaunch(ctx, driven.LaunchEvent{ID: "1", Titles: []string{"zeta"}}))
	require.NoError(t, store.RecordLaunch(ctx, driven.LaunchEvent{ID: "2", Titles: []string{"alpha"}}))

	top, err := store.Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "alpha", top[0].Title)
	assert.Equal(t, "zeta", top[1].Title)
}

func TestUsageStore_EmptyTop(t *testing.T) {
	store := NewUsageStore()

	top, err := store.Top(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestUsageStore_Close(t *testing.T) {
	store := NewUsageStore()
	assert.NoError(t, store.Close())
}
