package repos

import (
	"gorm.io/gorm"

	"github.com/safedrive/telematics-api/internal/pkg/logger"
	"github.com/safedrive/telematics-api/internal/types"
)

type EmbeddingRepo interface {
	Crud[types.Embedding]
}

type embeddingRepo struct {
	base[types.Embedding]
}

func NewEmbeddingRepo(db *gorm.DB, baseLog *logger.Logger) EmbeddingRepo {
	return &embeddingRepo{newBase[types.Embedding](db, baseLog.With("repo", "EmbeddingRepo"))}
}
