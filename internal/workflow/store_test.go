package workflow_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brandtools-be/internal/cache"
	"brandtools-be/internal/workflow"
)

// fakeCache is an in-memory cache.Cache for tests
type fakeCache struct {
	data map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string]string)}
}

func (f *fakeCache) Get(_ context.Context, key string) (string, error) {
	value, ok := f.data[key]
	if !ok {
		return "", cache.ErrNotFound
	}
	return value, nil
}

func (f *fakeCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	f.data[key] = value
	return nil
}

func (f *fakeCache) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.data, key)
	}
	return nil
}

func (f *fakeCache) Keys(_ context.Context, pattern string) ([]string, error) {
	prefix := strings.TrimSuffix(pattern, "*")
	var keys []string
	for key := range f.data {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

func (f *fakeCache) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return f.Set(ctx, key, string(data), ttl)
}

func (f *fakeCache) GetJSON(ctx context.Context, key string, dest interface{}) error {
	data, err := f.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(data), dest)
}

func TestStoreSaveAndGet(t *testing.T) {
	store := workflow.NewStore(newFakeCache())
	ctx := context.Background()

	result := map[string]any{"Overview": map[string]any{"industry": "retail"}}
	require.NoError(t, store.Save(ctx, "user-1", "market-analysis", result))

	entry, err := store.Get(ctx, "user-1", "market-analysis")
	require.NoError(t, err)
	assert.Equal(t, "market-analysis", entry.Tool)
	assert.Equal(t, result, entry.Result)
	assert.WithinDuration(t, time.Now().UTC(), entry.SavedAt, time.Minute)
}

func TestStoreGetMissing(t *testing.T) {
	store := workflow.NewStore(newFakeCache())

	_, err := store.Get(context.Background(), "user-1", "brandbook")
	assert.ErrorIs(t, err, workflow.ErrNoEntry)
}

func TestStoreSaveOverwrites(t *testing.T) {
	store := workflow.NewStore(newFakeCache())
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "user-1", "content-ideas", map[string]any{"ideas": []any{"old"}}))
	require.NoError(t, store.Save(ctx, "user-1", "content-ideas", map[string]any{"ideas": []any{"new"}}))

	entry, err := store.Get(ctx, "user-1", "content-ideas")
	require.NoError(t, err)
	assert.Equal(t, []any{"new"}, entry.Result["ideas"])
}

func TestStoreAllIsScopedToUser(t *testing.T) {
	store := workflow.NewStore(newFakeCache())
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "user-1", "seo-audit", map[string]any{"site": "a.com"}))
	require.NoError(t, store.Save(ctx, "user-1", "brandbook", map[string]any{"tagline": "hi"}))
	require.NoError(t, store.Save(ctx, "user-2", "seo-audit", map[string]any{"site": "b.com"}))

	entries, err := store.All(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a.com", entries["seo-audit"].Result["site"])
	assert.Contains(t, entries, "brandbook")
}

func TestStoreClear(t *testing.T) {
	store := workflow.NewStore(newFakeCache())
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "user-1", "seo-audit", map[string]any{"site": "a.com"}))
	require.NoError(t, store.Save(ctx, "user-2", "seo-audit", map[string]any{"site": "b.com"}))

	require.NoError(t, store.Clear(ctx, "user-1"))

	_, err := store.Get(ctx, "user-1", "seo-audit")
	assert.ErrorIs(t, err, workflow.ErrNoEntry)

	// Another user's chain is untouched
	entry, err := store.Get(ctx, "user-2", "seo-audit")
	require.NoError(t, err)
	assert.Equal(t, "b.com", entry.Result["site"])
}
