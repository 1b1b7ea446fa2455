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

type DrivingTipService interface {
	CrudService[types.DrivingTip, types.DrivingTipCreate, types.DrivingTipUpdate]
}

func NewDrivingTipService(db *gorm.DB, log *logger.Logger, tips repos.DrivingTipRepo, profiles repos.DriverProfileRepo) DrivingTipService {
	serviceLog := log.With("service", "DrivingTipService")

	hooks := Hooks[types.DrivingTip, types.DrivingTipCreate, types.DrivingTipUpdate]{
		Entity: "driving tip",
		ValidateCreate: func(in *types.DrivingTipCreate) error {
			if strings.TrimSpace(in.Title) == "" {
				return apierr.Validation("title is required", nil)
			}
			if in.ProfileID == uuid.Nil {
				return apierr.Validation("profile_id is required", nil)
			}
			return nil
		},
		NewRecord: func(in *types.DrivingTipCreate) (*types.DrivingTip, error) {
			rec := &types.DrivingTip{
				ID:         uuid.New(),
				Title:      in.Title,
				Meaning:    in.Meaning,
				Penalty:    in.Penalty,
				Fine:       in.Fine,
				Law:        in.Law,
				Hostility:  in.Hostility,
				SummaryTip: in.SummaryTip,
				Date:       in.Date,
				ProfileID:  in.ProfileID,
				LLM:        in.LLM,
			}
			if in.Sync != nil {
				rec.Sync = *in.Sync
			}
			return rec, nil
		},
		CheckRefs: func(ctx context.Context, tx *gorm.DB, in *types.DrivingTipCreate) error {
			return requireRef(ctx, tx, profiles, in.ProfileID, "driver profile")
		},
		UpdateFields: func(in *types.DrivingTipUpdate) (map[string]any, error) {
			fields := map[string]any{}
			if in.Title != nil {
				fields["title"] = *in.Title
			}
			if in.Meaning != nil {
				fields["meaning"] = *in.Meaning
			}
			if in.Penalty != nil {
				fields["penalty"] = *in.Penalty
			}
			if in.Fine != nil {
				fields["fine"] = *in.Fine
			}
			if in.Law != nil {
				fields["law"] = *in.Law
			}
			if in.Hostility != nil {
				fields["hostility"] = *in.Hostility
			}
			if in.SummaryTip != nil {
				fields["summary_tip"] = *in.SummaryTip
			}
			if in.Sync != nil {
				fields["sync"] = *in.Sync
			}
			if in.Date != nil {
				fields["date"] = *in.Date
			}
			if in.LLM != nil {
				fields["llm"] = *in.LLM
			}
			return fields, nil
		},
	}
	return newCrudService(db, serviceLog, tips, hooks)
}
