// Package crud is the record store shared by every content kind: list with an
// ordering, fetch, create, partial update and delete, keyed by string id.
package crud

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrInvalidOrder = errors.New("invalid order field")
)

// Scope narrows a query, e.g. a category or status filter.
type Scope = func(*gorm.DB) *gorm.DB

type Store[T any] struct {
	db          *gorm.DB
	orderFields map[string]struct{}
}

// New returns a store for T. Only the listed columns may be used to order
// GetAll, which keeps caller-supplied order fields out of raw SQL.
func New[T any](db *gorm.DB, orderFields ...string) *Store[T] {
	fields := make(map[string]struct{}, len(orderFields))
	for _, f := range orderFields {
		fields[f] = struct{}{}
	}
	return &Store[T]{db: db, orderFields: fields}
}

func (s *Store[T]) session(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

// GetAll lists records ordered by orderField. An empty orderField leaves the
// order to the database.
func (s *Store[T]) GetAll(ctx context.Context, orderField string, ascending bool, scopes ...Scope) ([]T, error) {
	query := s.session(ctx).Model(new(T)).Scopes(scopes...)
	if orderField != "" {
		if _, ok := s.orderFields[orderField]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidOrder, orderField)
		}
		dir := "DESC"
		if ascending {
			dir = "ASC"
		}
		query = query.Order(orderField + " " + dir)
	}

	var records []T
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// GetAllOrdered applies several orderings in sequence, e.g. level then sort order.
func (s *Store[T]) GetAllOrdered(ctx context.Context, orders []Order, scopes ...Scope) ([]T, error) {
	query := s.session(ctx).Model(new(T)).Scopes(scopes...)
	for _, o := range orders {
		if _, ok := s.orderFields[o.Field]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidOrder, o.Field)
		}
		dir := "DESC"
		if o.Ascending {
			dir = "ASC"
		}
		query = query.Order(o.Field + " " + dir)
	}

	var records []T
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

type Order struct {
	Field     string
	Ascending bool
}

func (s *Store[T]) GetByID(ctx context.Context, id string) (*T, error) {
	return s.First(ctx, func(db *gorm.DB) *gorm.DB { return db.Where("id = ?", id) })
}

// First returns the first record matching scopes.
func (s *Store[T]) First(ctx context.Context, scopes ...Scope) (*T, error) {
	var record T
	err := s.session(ctx).Scopes(scopes...).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *Store[T]) Create(ctx context.Context, record *T) error {
	return s.session(ctx).Create(record).Error
}

// Update writes the given columns and returns the stored record.
func (s *Store[T]) Update(ctx context.Context, id string, fields map[string]any) (*T, error) {
	if len(fields) > 0 {
		result := s.session(ctx).Model(new(T)).Where("id = ?", id).Updates(fields)
		if result.Error != nil {
			return nil, result.Error
		}
	}
	return s.GetByID(ctx, id)
}

func (s *Store[T]) Delete(ctx context.Context, id string) error {
	result := s.session(ctx).Where("id = ?", id).Delete(new(T))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store[T]) Count(ctx context.Context, scopes ...Scope) (int64, error) {
	var count int64
	if err := s.session(ctx).Model(new(T)).Scopes(scopes...).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Pluck collects one column across records matching scopes.
func (s *Store[T]) Pluck(ctx context.Context, column string, scopes ...Scope) ([]string, error) {
	var values []string
	if err := s.session(ctx).Model(new(T)).Scopes(scopes...).Where(column+" IS NOT NULL AND "+column+" <> ''").Pluck(column, &values).Error; err != nil {
		return nil, err
	}
	return values, nil
}
