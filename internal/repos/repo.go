package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/safedrive/telematics-api/internal/pkg/logger"
)

// Crud is the persistence surface shared by every entity repo. The tx
// argument lets a service run several calls inside one transaction; when nil
// the repo's own connection is used.
type Crud[T any] interface {
	Create(ctx context.Context, tx *gorm.DB, recs []*T) ([]*T, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*T, error)
	List(ctx context.Context, tx *gorm.DB, skip, limit int) ([]*T, error)
	Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, fields map[string]any) error
	DeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) (int64, error)
}

type base[T any] struct {
	db  *gorm.DB
	log *logger.Logger
}

func newBase[T any](db *gorm.DB, log *logger.Logger) base[T] {
	return base[T]{db: db, log: log}
}

func (r *base[T]) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *base[T]) Create(ctx context.Context, tx *gorm.DB, recs []*T) ([]*T, error) {
	if len(recs) == 0 {
		return []*T{}, nil
	}
	if err := r.conn(tx).WithContext(ctx).Create(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// GetByID reports absence as (nil, nil) rather than an error; the service
// layer decides what absence means at its boundary.
func (r *base[T]) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*T, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	var rec T
	err := r.conn(tx).WithContext(ctx).
		Where("id = ?", id).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *base[T]) List(ctx context.Context, tx *gorm.DB, skip, limit int) ([]*T, error) {
	var results []*T
	if err := r.conn(tx).WithContext(ctx).
		Order("created_at, id").
		Offset(skip).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *base[T]) Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.conn(tx).WithContext(ctx).
		Model(new(T)).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *base[T]) DeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.conn(tx).WithContext(ctx).
		Where("id IN ?", ids).
		Delete(new(T))
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
