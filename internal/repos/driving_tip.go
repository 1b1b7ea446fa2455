package repos

import (
	"gorm.io/gorm"

	"github.com/safedrive/telematics-api/internal/pkg/logger"
	"github.com/safedrive/telematics-api/internal/types"
)

type DrivingTipRepo interface {
	Crud[types.DrivingTip]
}

type drivingTipRepo struct {
	base[types.DrivingTip]
}

func NewDrivingTipRepo(db *gorm.DB, baseLog *logger.Logger) DrivingTipRepo {
	return &drivingTipRepo{newBase[types.DrivingTip](db, baseLog.With("repo", "DrivingTipRepo"))}
}
