package trivia

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// CategoryStore is the durable category backend. Categories are seeded and
// managed outside this service; the catalog only reads them.
type CategoryStore interface {
	ListOrdered(ctx context.Context) ([]Category, error)
}

// CategoryCache fronts the store with a short-lived copy of the full
// catalog. A (nil, nil) Get is a miss.
type CategoryCache interface {
	Get(ctx context.Context) ([]Category, error)
	Set(ctx context.Context, categories []Category) error
}

// Catalog serves the category listing, label-ordered. An empty catalog is
// an error state rather than a valid empty result: the UI cannot function
// without at least one category.
type Catalog struct {
	store  CategoryStore
	cache  CategoryCache
	logger zerolog.Logger
}

// NewCatalog builds a catalog over the store. cache may be nil.
func NewCatalog(store CategoryStore, cache CategoryCache, logger zerolog.Logger) *Catalog {
	return &Catalog{
		store:  store,
		cache:  cache,
		logger: logger.With().Str("component", "category_catalog").Logger(),
	}
}

// List returns all categories ordered by label ascending, or ErrNotFound
// when the store holds none. Cache failures fall back to the store.
func (c *Catalog) List(ctx context.Context) ([]Category, error) {
	if c.cache != nil {
		cached, err := c.cache.Get(ctx)
		if err != nil {
			c.logger.Warn().Err(err).Msg("category cache read failed")
		} else if len(cached) > 0 {
			return cached, nil
		}
	}

	categories, err := c.store.ListOrdered(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("category catalog is empty: %w", ErrNotFound)
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, categories); err != nil {
			c.logger.Warn().Err(err).Msg("category cache write failed")
		}
	}
	return categories, nil
}

// MapByID converts a category listing into the id→label mapping embedded in
// question list responses.
func MapByID(categories []Category) CategoryMap {
	m := make(CategoryMap, len(categories))
	for _, cat := range categories {
		m[cat.ID] = cat.Type
	}
	return m
}
