package repos

import (
	"gorm.io/gorm"

	"github.com/safedrive/telematics-api/internal/pkg/logger"
	"github.com/safedrive/telematics-api/internal/types"
)

type CauseRepo interface {
	Crud[types.Cause]
}

type causeRepo struct {
	base[types.Cause]
}

func NewCauseRepo(db *gorm.DB, baseLog *logger.Logger) CauseRepo {
	return &causeRepo{newBase[types.Cause](db, baseLog.With("repo", "CauseRepo"))}
}
