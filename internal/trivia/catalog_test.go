package trivia

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalogCache struct {
	stored []Category
	getErr error
	gets   int
	sets   int
}

func (s *stubCatalogCache) Get(context.Context) ([]Category, error) {
	s.gets++
	return s.stored, s.getErr
}

func (s *stubCatalogCache) Set(_ context.Context, categories []Category) error {
	s.sets++
	s.stored = categories
	return nil
}

func TestCatalogListOrdersByLabel(t *testing.T) {
	store := newMemoryStore(1)
	store.addCategory(1, "Science")
	store.addCategory(2, "Art")
	store.addCategory(3, "Geography")

	catalog := NewCatalog(store, nil, zerolog.Nop())
	categories, err := catalog.List(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "Art", categories[0].Type)
	assert.Equal(t, "Geography", categories[1].Type)
	assert.Equal(t, "Science", categories[2].Type)
}

func TestCatalogListEmptyIsNotFound(t *testing.T) {
	catalog := NewCatalog(newMemoryStore(1), nil, zerolog.Nop())
	_, err := catalog.List(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogReadThroughCache(t *testing.T) {
	store := newMemoryStore(1)
	store.addCategory(1, "Science")
	cache := &stubCatalogCache{}

	catalog := NewCatalog(store, cache, zerolog.Nop())

	_, err := catalog.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets, "miss should populate the cache")

	categories, err := catalog.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 1)
	assert.Equal(t, 2, cache.gets)
	assert.Equal(t, 1, cache.sets, "hit should not rewrite the cache")
}

func TestCatalogCacheFailureFallsBack(t *testing.T) {
	store := newMemoryStore(1)
	store.addCategory(1, "Science")
	cache := &stubCatalogCache{getErr: errors.New("redis down")}

	catalog := NewCatalog(store, cache, zerolog.Nop())
	categories, err := catalog.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 1)
}

func TestMapByID(t *testing.T) {
	m := MapByID([]Category{{ID: 1, Type: "Science"}, {ID: 4, Type: "History"}})
	assert.Equal(t, CategoryMap{1: "Science", 4: "History"}, m)
	assert.Empty(t, MapByID(nil))
}
