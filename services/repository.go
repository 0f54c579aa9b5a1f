package services

import (
	"context"
	stderrors "errors"
	"strings"

	"gorm.io/gorm"

	"travelcms/constants"
	"travelcms/errors"
)

// ListQuery carries the paging and filter parameters shared by admin lists
type ListQuery struct {
	Page     int
	Limit    int
	Search   string
	IsActive *bool
}

// Normalize clamps paging to sane bounds
func (q ListQuery) Normalize() ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = constants.DefaultPageSize
	}
	if q.Limit > constants.MaxPageSize {
		q.Limit = constants.MaxPageSize
	}
	q.Search = strings.TrimSpace(q.Search)
	return q
}

// Scope narrows a query
type Scope = func(*gorm.DB) *gorm.DB

// Repository is the gorm CRUD shared by every admin resource
type Repository[T any] struct {
	db       *gorm.DB
	entity   string
	order    string
	search   []string
	preloads []string
}

type RepositoryOptions struct {
	// Entity names the resource in error messages
	Entity string
	// Order is the default ORDER BY clause
	Order string
	// SearchColumns are matched with ILIKE against ListQuery.Search
	SearchColumns []string
	// Preloads are loaded on Get
	Preloads []string
}

func NewRepository[T any](db *gorm.DB, opts RepositoryOptions) *Repository[T] {
	return &Repository[T]{
		db:       db,
		entity:   opts.Entity,
		order:    opts.Order,
		search:   opts.SearchColumns,
		preloads: opts.Preloads,
	}
}

func (r *Repository[T]) DB() *gorm.DB {
	return r.db
}

func (r *Repository[T]) Entity() string {
	return r.entity
}

func (r *Repository[T]) List(ctx context.Context, q ListQuery, scopes ...Scope) ([]T, int64, error) {
	q = q.Normalize()
	tx := r.db.WithContext(ctx).Model(new(T)).Scopes(scopes...)
	if q.IsActive != nil {
		tx = tx.Where("is_active = ?", *q.IsActive)
	}
	if q.Search != "" && len(r.search) > 0 {
		like := "%" + q.Search + "%"
		conds := make([]string, 0, len(r.search))
		args := make([]interface{}, 0, len(r.search))
		for _, col := range r.search {
			conds = append(conds, col+" ILIKE ?")
			args = append(args, like)
		}
		tx = tx.Where(strings.Join(conds, " OR "), args...)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, dbError(err, r.entity)
	}

	var items []T
	if r.order != "" {
		tx = tx.Order(r.order)
	}
	if err := tx.Offset((q.Page - 1) * q.Limit).Limit(q.Limit).Find(&items).Error; err != nil {
		return nil, 0, dbError(err, r.entity)
	}
	return items, total, nil
}

func (r *Repository[T]) Get(ctx context.Context, id uint) (*T, error) {
	tx := r.db.WithContext(ctx)
	for _, p := range r.preloads {
		tx = tx.Preload(p)
	}
	var item T
	if err := tx.First(&item, id).Error; err != nil {
		return nil, dbError(err, r.entity)
	}
	return &item, nil
}

// Exists returns a NOT_FOUND AppError when id is missing
func (r *Repository[T]) Exists(ctx context.Context, id uint) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
		return dbError(err, r.entity)
	}
	if count == 0 {
		return errors.NewAppError(errors.ErrCodeNotFound, r.entity+" not found", gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *Repository[T]) Create(ctx context.Context, item *T) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return dbError(err, r.entity)
	}
	return nil
}

// Update loads id, applies mutate and saves the scalar columns
func (r *Repository[T]) Update(ctx context.Context, id uint, mutate func(*T) error) (*T, error) {
	var item T
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, id).Error; err != nil {
			return err
		}
		if err := mutate(&item); err != nil {
			return err
		}
		return tx.Omit("CreatedAt").Save(&item).Error
	})
	if err != nil {
		return nil, dbError(err, r.entity)
	}
	return &item, nil
}

// SetActive flips is_active without touching other columns
func (r *Repository[T]) SetActive(ctx context.Context, id uint, active bool) error {
	res := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Update("is_active", active)
	if res.Error != nil {
		return dbError(res.Error, r.entity)
	}
	if res.RowsAffected == 0 {
		return errors.NewAppError(errors.ErrCodeNotFound, r.entity+" not found", gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *Repository[T]) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return dbError(res.Error, r.entity)
	}
	if res.RowsAffected == 0 {
		return errors.NewAppError(errors.ErrCodeNotFound, r.entity+" not found", gorm.ErrRecordNotFound)
	}
	return nil
}

// dbError maps gorm failures onto AppErrors. AppErrors pass through untouched.
func dbError(err error, entity string) error {
	if err == nil {
		return nil
	}
	if errors.IsAppError(err) {
		return err
	}
	switch {
	case stderrors.Is(err, gorm.ErrRecordNotFound):
		return errors.NewAppError(errors.ErrCodeNotFound, entity+" not found", err)
	case stderrors.Is(err, gorm.ErrDuplicatedKey):
		return errors.NewAppError(errors.ErrCodeDBDuplicate, entity+" already exists with the same unique fields", err)
	case stderrors.Is(err, gorm.ErrForeignKeyViolated):
		return errors.NewAppError(errors.ErrCodeParentNotFound, entity+" references a missing record", err)
	default:
		return errors.NewAppError(errors.ErrCodeDBError, "database error", err)
	}
}
