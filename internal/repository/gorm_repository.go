package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "vetclinic/internal/errors"
)

// parentRef names the entity a foreign-key column points at and reads its id.
type parentRef[T any] struct {
	entity string
	id     func(*T) uint
}

// gormRepository implements CRUD for any gorm model keyed by a uint primary key.
type gormRepository[T any] struct {
	db      *gorm.DB
	entity  string
	uniques map[string]string
	// parents maps foreign-key columns to the entity they reference.
	parents map[string]parentRef[T]
}

func newGormRepository[T any](db *gorm.DB, entity string, uniques map[string]string) gormRepository[T] {
	return gormRepository[T]{db: db, entity: entity, uniques: uniques}
}

// Create inserts a new row.
func (r *gormRepository[T]) Create(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return r.writeError(err, entity)
	}
	return nil
}

// FindByID finds a row by primary key.
func (r *gormRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).First(&entity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// List returns one page of rows ordered by id.
func (r *gormRepository[T]) List(ctx context.Context, skip, limit int) ([]T, error) {
	var entities []T
	if err := r.db.WithContext(ctx).Order("id").Offset(skip).Limit(limit).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// Update writes the given columns of an existing row.
func (r *gormRepository[T]) Update(ctx context.Context, entity *T, columns ...string) error {
	if len(columns) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Model(entity).Select(columns).Updates(entity).Error; err != nil {
		return r.writeError(err, entity)
	}
	return nil
}

// writeError reports a missing parent row as NotFound for that parent.
func (r *gormRepository[T]) writeError(err error, entity *T) error {
	if v := classify(err); v.kind == violationMissingParent {
		if p, ok := r.parents[v.column]; ok {
			return apperrors.NotFound(p.entity, p.id(entity))
		}
	}
	return translateWriteError(err, r.uniques)
}

// Delete removes a row and returns it as it was before deletion.
func (r *gormRepository[T]) Delete(ctx context.Context, id uint) (*T, error) {
	entity, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(entity).Error; err != nil {
		return nil, translateDeleteError(err, r.entity, id)
	}
	return entity, nil
}

// findOne returns the first row matching the condition.
func (r *gormRepository[T]) findOne(ctx context.Context, query string, args ...any) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).Where(query, args...).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}
