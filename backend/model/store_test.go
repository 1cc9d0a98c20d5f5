package model

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	return NewStore(filepath.Join(t.TempDir(), "news.json"))
}

func TestStoreLoadMissingFile(t *testing.T) {
	store := newTestStore(t)
	assert.Empty(t, store.All())
}

func TestStoreLoadMalformedFile(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.path, []byte("{not json"), 0o644))

	// Corruption reads as an empty collection, and the store recovers on
	// the next write.
	assert.Empty(t, store.All())

	created, err := store.Insert(News{Title: "Fresh start", Content: "ok"})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
}

func TestStoreInsertAssignsIncreasingIDs(t *testing.T) {
	store := newTestStore(t)

	first, err := store.Insert(News{Title: "One", Content: "a"})
	require.NoError(t, err)
	second, err := store.Insert(News{Title: "Two", Content: "b"})
	require.NoError(t, err)
	third, err := store.Insert(News{Title: "Three", Content: "c"})
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, 3, third.ID)

	_, err = store.Delete(2)
	require.NoError(t, err)

	fourth, err := store.Insert(News{Title: "Four", Content: "d"})
	require.NoError(t, err)
	assert.Equal(t, 4, fourth.ID)
}

func TestStorePrependsNewItems(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Insert(News{Title: "Older", Content: "a"})
	require.NoError(t, err)
	_, err = store.Insert(News{Title: "Newer", Content: "b"})
	require.NoError(t, err)

	items := store.All()
	require.Len(t, items, 2)
	assert.Equal(t, "Newer", items[0].Title)
	assert.Equal(t, "Older", items[1].Title)
}

func TestStoreByID(t *testing.T) {
	store := newTestStore(t)

	created, err := store.Insert(News{Title: "Findable", Content: "x"})
	require.NoError(t, err)

	found, err := store.ByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)

	_, err = store.ByID(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreDeleteNotFoundLeavesCollection(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Insert(News{Title: "Keep me", Content: "x"})
	require.NoError(t, err)

	_, err = store.Delete(42)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Len(t, store.All(), 1)
}

func TestStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)

	link := "/uploads/1700000000000-photo.png"
	items := []News{
		{Title: "First", Subtitle: "sub", Date: "2024-01-01", Content: "a"},
		{Title: "Second", Content: "b", Image: &link},
		{Title: "Third", Content: "c"},
	}
	for _, item := range items {
		item.CreatedAt = time.Now().UTC().Truncate(time.Second)
		_, err := store.Insert(item)
		require.NoError(t, err)
	}

	reloaded := NewStore(store.path).All()
	require.Len(t, reloaded, len(items))
	assert.Equal(t, "Third", reloaded[0].Title)
	assert.Equal(t, "Second", reloaded[1].Title)
	require.NotNil(t, reloaded[1].Image)
	assert.Equal(t, link, *reloaded[1].Image)
	assert.Equal(t, "First", reloaded[2].Title)
	assert.Equal(t, "2024-01-01", reloaded[2].Date)
	assert.Equal(t, "sub", reloaded[2].Subtitle)
}
