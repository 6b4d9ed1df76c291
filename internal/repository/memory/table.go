package memory

import (
	"context"
	"sort"

	apperrors "vetclinic/internal/errors"
	"vetclinic/internal/repository"
)

// table holds the rows of one entity keyed by id.
type table[T any] struct {
	rows map[uint]T
	next uint
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[uint]T)}
}

func (t *table[T]) clone() *table[T] {
	c := &table[T]{rows: make(map[uint]T, len(t.rows)), next: t.next}
	for id, row := range t.rows {
		c.rows[id] = row
	}
	return c
}

// sortedIDs returns the row ids in ascending order.
func (t *table[T]) sortedIDs() []uint {
	ids := make([]uint, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

type uniqueKey[T any] struct {
	field string
	value func(*T) string
}

// crud implements repository.CRUD over one table of the store.
type crud[T any] struct {
	store  *Store
	entity string
	table  func(*data) *table[T]
	id     func(*T) *uint

	uniques []uniqueKey[T]
	// parents reports a missing parent row for a write.
	parents func(*data, *T) error
	// referenced reports whether other rows still point at id.
	referenced func(*data, uint) bool
	// touch runs before a row is stored.
	touch func(e *T, created bool)
}

func (r *crud[T]) Create(ctx context.Context, entity *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	defer r.store.lock()()
	d := r.store.state.data
	if err := r.check(d, entity, 0); err != nil {
		return err
	}
	t := r.table(d)
	t.next++
	*r.id(entity) = t.next
	if r.touch != nil {
		r.touch(entity, true)
	}
	t.rows[t.next] = *entity
	return nil
}

func (r *crud[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer r.store.lock()()
	row, ok := r.table(r.store.state.data).rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &row, nil
}

func (r *crud[T]) List(ctx context.Context, skip, limit int) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer r.store.lock()()
	t := r.table(r.store.state.data)
	ids := t.sortedIDs()
	if skip < 0 {
		skip = 0
	}
	if skip >= len(ids) {
		return []T{}, nil
	}
	ids = ids[skip:]
	if limit >= 0 && limit < len(ids) {
		ids = ids[:limit]
	}
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.rows[id])
	}
	return out, nil
}

// Update stores the whole entity. Callers always pass a fully loaded row,
// so writing every column is equivalent to writing the named ones.
func (r *crud[T]) Update(ctx context.Context, entity *T, columns ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(columns) == 0 {
		return nil
	}
	defer r.store.lock()()
	d := r.store.state.data
	id := *r.id(entity)
	t := r.table(d)
	if _, ok := t.rows[id]; !ok {
		return repository.ErrNotFound
	}
	if err := r.check(d, entity, id); err != nil {
		return err
	}
	if r.touch != nil {
		r.touch(entity, false)
	}
	t.rows[id] = *entity
	return nil
}

func (r *crud[T]) Delete(ctx context.Context, id uint) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer r.store.lock()()
	d := r.store.state.data
	t := r.table(d)
	row, ok := t.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if r.referenced != nil && r.referenced(d, id) {
		return nil, &apperrors.InUseError{Entity: r.entity, ID: id}
	}
	delete(t.rows, id)
	return &row, nil
}

// check enforces parent existence and unique keys, ignoring the row with id self.
func (r *crud[T]) check(d *data, entity *T, self uint) error {
	if r.parents != nil {
		if err := r.parents(d, entity); err != nil {
			return err
		}
	}
	t := r.table(d)
	for _, u := range r.uniques {
		value := u.value(entity)
		for id, row := range t.rows {
			if id != self && u.value(&row) == value {
				return apperrors.Conflict(u.field, value)
			}
		}
	}
	return nil
}

// findOne returns the lowest-id row matching pred.
func (r *crud[T]) findOne(ctx context.Context, pred func(*T) bool) (*T, error) {
	rows, err := r.filter(ctx, pred, 1)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, repository.ErrNotFound
	}
	return &rows[0], nil
}

// filter returns up to max rows matching pred in id order; max < 0 means all.
func (r *crud[T]) filter(ctx context.Context, pred func(*T) bool, max int) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer r.store.lock()()
	t := r.table(r.store.state.data)
	out := []T{}
	for _, id := range t.sortedIDs() {
		row := t.rows[id]
		if pred(&row) {
			out = append(out, row)
			if max >= 0 && len(out) == max {
				break
			}
		}
	}
	return out, nil
}
