package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/safedrive/telematics-api/internal/pkg/apierr"
	"github.com/safedrive/telematics-api/internal/pkg/logger"
	"github.com/safedrive/telematics-api/internal/repos"
	"github.com/safedrive/telematics-api/internal/types"
)

type CauseService interface {
	CrudService[types.Cause, types.CauseCreate, types.CauseUpdate]
}

func NewCauseService(db *gorm.DB, log *logger.Logger, causes repos.CauseRepo, behaviours repos.UnsafeBehaviourRepo) CauseService {
	serviceLog := log.With("service", "CauseService")

	hooks := Hooks[types.Cause, types.CauseCreate, types.CauseUpdate]{
		Entity: "cause",
		ValidateCreate: func(in *types.CauseCreate) error {
			if in.UnsafeBehaviourID == uuid.Nil {
				return apierr.Validation("unsafe_behaviour_id is required", nil)
			}
			if strings.TrimSpace(in.Name) == "" {
				return apierr.Validation("name is required", nil)
			}
			return nil
		},
		NewRecord: func(in *types.CauseCreate) (*types.Cause, error) {
			rec := &types.Cause{
				ID:                uuid.New(),
				UnsafeBehaviourID: in.UnsafeBehaviourID,
				Name:              in.Name,
				Influence:         in.Influence,
			}
			if in.Synced != nil {
				rec.Synced = *in.Synced
			}
			return rec, nil
		},
		CheckRefs: func(ctx context.Context, tx *gorm.DB, in *types.CauseCreate) error {
			return requireRef(ctx, tx, behaviours, in.UnsafeBehaviourID, "unsafe behaviour")
		},
		UpdateFields: func(in *types.CauseUpdate) (map[string]any, error) {
			fields := map[string]any{}
			if in.Name != nil {
				fields["name"] = *in.Name
			}
			if in.Influence != nil {
				fields["influence"] = *in.Influence
			}
			if in.Synced != nil {
				fields["synced"] = *in.Synced
			}
			return fields, nil
		},
	}
	return newCrudService(db, serviceLog, causes, hooks)
}
