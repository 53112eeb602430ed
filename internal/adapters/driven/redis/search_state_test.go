package redis

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obralink/docsearch-core/internal/core/domain"
)

func newTestClient(t *testing.T) *goredis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client
}

func TestHistoryStore_PushAndList(t *testing.T) {
	store := NewHistoryStore(newTestClient(t))
	ctx := context.Background()

	for _, q := range []string{"plano", "factura", "acta"} {
		require.NoError(t, store.Push(ctx, q))
	}

	entries, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"acta", "factura", "plano"}, entries)
}

func TestHistoryStore_RepeatDoesNotReorder(t *testing.T) {
	store := NewHistoryStore(newTestClient(t))
	ctx := context.Background()

	for _, q := range []string{"plano", "factura", "plano"} {
		require.NoError(t, store.Push(ctx, q))
	}

	entries, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"factura", "plano"}, entries)
}

func TestHistoryStore_Bound(t *testing.T) {
	store := NewHistoryStore(newTestClient(t))
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		require.NoError(t, store.Push(ctx, fmt.Sprintf("query-%02d", i)))
	}

	entries, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, historyLimit)
	assert.Equal(t, "query-14", entries[0])
	assert.Equal(t, "query-05", entries[historyLimit-1])
}

func TestSavedFilterStore_RoundTrip(t *testing.T) {
	store := NewSavedFilterStore(newTestClient(t))
	ctx := context.Background()

	opts := domain.SearchOptions{
		Query: "plano",
		Filters: domain.Filters{
			Categories: []string{"planos"},
			Tags:       []string{"estructura"},
		},
		SortBy: domain.SortByDate,
	}
	require.NoError(t, store.Save(ctx, "mis planos", opts))

	saved, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "mis planos", saved[0].Name)
	assert.Equal(t, "plano", saved[0].Options.Query)
	assert.Equal(t, []string{"planos"}, saved[0].Options.Filters.Categories)
	assert.Equal(t, []string{"estructura"}, saved[0].Options.Filters.Tags)
	assert.Equal(t, domain.SortByDate, saved[0].Options.SortBy)
}

func TestSavedFilterStore_InsertionOrder(t *testing.T) {
	store := NewSavedFilterStore(newTestClient(t))
	ctx := context.Background()

	for _, name := range []string{"c", "a", "b"} {
		require.NoError(t, store.Save(ctx, name, domain.SearchOptions{}))
	}
	// Re-saving keeps the original position.
	require.NoError(t, store.Save(ctx, "c", domain.SearchOptions{Query: "updated"}))

	saved, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, saved, 3)
	assert.Equal(t, "c", saved[0].Name)
	assert.Equal(t, "updated", saved[0].Options.Query)
	assert.Equal(t, "a", saved[1].Name)
	assert.Equal(t, "b", saved[2].Name)
}

func TestSavedFilterStore_Delete(t *testing.T) {
	store := NewSavedFilterStore(newTestClient(t))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "mine", domain.SearchOptions{}))

	deleted, err := store.Delete(ctx, "mine")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = store.Delete(ctx, "mine")
	require.NoError(t, err)
	assert.False(t, deleted)

	saved, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, saved)
}
