package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/safedrive/telematics-api/internal/pkg/logger"
	"github.com/safedrive/telematics-api/internal/types"
)

type UnsafeBehaviourRepo interface {
	Crud[types.UnsafeBehaviour]
	ListByTrip(ctx context.Context, tx *gorm.DB, tripID uuid.UUID) ([]*types.UnsafeBehaviour, error)
}

type unsafeBehaviourRepo struct {
	base[types.UnsafeBehaviour]
}

func NewUnsafeBehaviourRepo(db *gorm.DB, baseLog *logger.Logger) UnsafeBehaviourRepo {
	return &unsafeBehaviourRepo{newBase[types.UnsafeBehaviour](db, baseLog.With("repo", "UnsafeBehaviourRepo"))}
}

func (r *unsafeBehaviourRepo) ListByTrip(ctx context.Context, tx *gorm.DB, tripID uuid.UUID) ([]*types.UnsafeBehaviour, error) {
	var results []*types.UnsafeBehaviour
	if tripID == uuid.Nil {
		return results, nil
	}
	if err := r.conn(tx).WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("created_at, id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
