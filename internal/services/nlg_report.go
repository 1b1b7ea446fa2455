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

type NLGReportService interface {
	CrudService[types.NLGReport, types.NLGReportCreate, types.NLGReportUpdate]
}

func NewNLGReportService(db *gorm.DB, log *logger.Logger, reports repos.NLGReportRepo, profiles repos.DriverProfileRepo) NLGReportService {
	serviceLog := log.With("service", "NLGReportService")

	hooks := Hooks[types.NLGReport, types.NLGReportCreate, types.NLGReportUpdate]{
		Entity: "nlg report",
		ValidateCreate: func(in *types.NLGReportCreate) error {
			if in.DriverProfileID == uuid.Nil {
				return apierr.Validation("driver_profile_id is required", nil)
			}
			if strings.TrimSpace(in.ReportText) == "" {
				return apierr.Validation("report_text is required", nil)
			}
			return nil
		},
		NewRecord: func(in *types.NLGReportCreate) (*types.NLGReport, error) {
			rec := &types.NLGReport{
				ID:              uuid.New(),
				DriverProfileID: in.DriverProfileID,
				ReportText:      in.ReportText,
				GeneratedAt:     in.GeneratedAt,
			}
			if in.Synced != nil {
				rec.Synced = *in.Synced
			}
			return rec, nil
		},
		CheckRefs: func(ctx context.Context, tx *gorm.DB, in *types.NLGReportCreate) error {
			return requireRef(ctx, tx, profiles, in.DriverProfileID, "driver profile")
		},
		UpdateFields: func(in *types.NLGReportUpdate) (map[string]any, error) {
			fields := map[string]any{}
			if in.ReportText != nil {
				fields["report_text"] = *in.ReportText
			}
			if in.GeneratedAt != nil {
				fields["generated_at"] = *in.GeneratedAt
			}
			if in.Synced != nil {
				fields["synced"] = *in.Synced
			}
			return fields, nil
		},
	}
	return newCrudService(db, serviceLog, reports, hooks)
}
