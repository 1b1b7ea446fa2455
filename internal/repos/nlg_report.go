package repos

import (
	"gorm.io/gorm"

	"github.com/safedrive/telematics-api/internal/pkg/logger"
	"github.com/safedrive/telematics-api/internal/types"
)

type NLGReportRepo interface {
	Crud[types.NLGReport]
}

type nlgReportRepo struct {
	base[types.NLGReport]
}

func NewNLGReportRepo(db *gorm.DB, baseLog *logger.Logger) NLGReportRepo {
	return &nlgReportRepo{newBase[types.NLGReport](db, baseLog.With("repo", "NLGReportRepo"))}
}
