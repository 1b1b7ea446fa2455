package repos

import (
	"gorm.io/gorm"

	"github.com/safedrive/telematics-api/internal/pkg/logger"
	"github.com/safedrive/telematics-api/internal/types"
)

type RawSensorDataRepo interface {
	Crud[types.RawSensorData]
}

type rawSensorDataRepo struct {
	base[types.RawSensorData]
}

func NewRawSensorDataRepo(db *gorm.DB, baseLog *logger.Logger) RawSensorDataRepo {
	return &rawSensorDataRepo{newBase[types.RawSensorData](db, baseLog.With("repo", "RawSensorDataRepo"))}
}
