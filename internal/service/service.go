package service

import (
	"context"
	"errors"

	"vetclinic/internal/cache"
	apperrors "vetclinic/internal/errors"
	"vetclinic/internal/repository"
)

const (
	// DefaultLimit is the page size when the caller gives none.
	DefaultLimit = 100
	// MaxLimit caps the page size.
	MaxLimit = 500
)

// Page selects a window of a listing ordered by id.
type Page struct {
	Skip  int `query:"skip"`
	Limit int `query:"limit"`
}

// Normalize applies the default and maximum page size.
func (p Page) Normalize() Page {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// notFoundAs reports repository.ErrNotFound as a NotFoundError for entity.
func notFoundAs(err error, entity string, id uint) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NotFound(entity, id)
	}
	return err
}

// findCached serves an entity from cache, falling back to find and filling the cache.
func findCached[T any](ctx context.Context, c *cache.Client, entity string, id uint, find func(context.Context, uint) (*T, error)) (*T, error) {
	key := cache.EntityKey(entity, id)

	var cached T
	if c.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	row, err := find(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, entity, id)
	}
	c.SetJSON(ctx, key, row, cache.DefaultTTL)
	return row, nil
}

func invalidate(ctx context.Context, c *cache.Client, entity string, id uint) {
	_ = c.Delete(ctx, cache.EntityKey(entity, id))
}
