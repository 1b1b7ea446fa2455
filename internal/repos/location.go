package repos

import (
	"gorm.io/gorm"

	"github.com/safedrive/telematics-api/internal/pkg/logger"
	"github.com/safedrive/telematics-api/internal/types"
)

type LocationRepo interface {
	Crud[types.Location]
}

type locationRepo struct {
	base[types.Location]
}

func NewLocationRepo(db *gorm.DB, baseLog *logger.Logger) LocationRepo {
	return &locationRepo{newBase[types.Location](db, baseLog.With("repo", "LocationRepo"))}
}
