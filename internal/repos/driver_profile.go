package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/safedrive/telematics-api/internal/pkg/logger"
	"github.com/safedrive/telematics-api/internal/types"
)

type DriverProfileRepo interface {
	Crud[types.DriverProfile]
	GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.DriverProfile, error)
}

type driverProfileRepo struct {
	base[types.DriverProfile]
}

func NewDriverProfileRepo(db *gorm.DB, baseLog *logger.Logger) DriverProfileRepo {
	return &driverProfileRepo{newBase[types.DriverProfile](db, baseLog.With("repo", "DriverProfileRepo"))}
}

func (r *driverProfileRepo) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.DriverProfile, error) {
	if email == "" {
		return nil, nil
	}
	var rec types.DriverProfile
	err := r.conn(tx).WithContext(ctx).
		Where("email = ?", email).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
