package repos

import (
	"gorm.io/gorm"

	"github.com/safedrive/telematics-api/internal/pkg/logger"
	"github.com/safedrive/telematics-api/internal/types"
)

type AIModelInputRepo interface {
	Crud[types.AIModelInput]
}

type aiModelInputRepo struct {
	base[types.AIModelInput]
}

func NewAIModelInputRepo(db *gorm.DB, baseLog *logger.Logger) AIModelInputRepo {
	return &aiModelInputRepo{newBase[types.AIModelInput](db, baseLog.With("repo", "AIModelInputRepo"))}
}
