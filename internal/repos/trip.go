package repos

import (
	"gorm.io/gorm"

	"github.com/safedrive/telematics-api/internal/pkg/logger"
	"github.com/safedrive/telematics-api/internal/types"
)

type TripRepo interface {
	Crud[types.Trip]
}

type tripRepo struct {
	base[types.Trip]
}

func NewTripRepo(db *gorm.DB, baseLog *logger.Logger) TripRepo {
	return &tripRepo{newBase[types.Trip](db, baseLog.With("repo", "TripRepo"))}
}
