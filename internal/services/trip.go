package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/safedrive/telematics-api/internal/pkg/apierr"
	"github.com/safedrive/telematics-api/internal/pkg/logger"
	"github.com/safedrive/telematics-api/internal/repos"
	"github.com/safedrive/telematics-api/internal/types"
)

type TripService interface {
	CrudService[types.Trip, types.TripCreate, types.TripUpdate]
	BatchService[types.TripCreate]
}

func NewTripService(db *gorm.DB, log *logger.Logger, trips repos.TripRepo, profiles repos.DriverProfileRepo) TripService {
	serviceLog := log.With("service", "TripService")

	hooks := Hooks[types.Trip, types.TripCreate, types.TripUpdate]{
		Entity: "trip",
		ValidateCreate: func(in *types.TripCreate) error {
			if in.DriverProfileID == uuid.Nil {
				return apierr.Validation("driver_profile_id is required", nil)
			}
			if in.StartTime == nil {
				return apierr.Validation("start_time is required", nil)
			}
			return nil
		},
		NewRecord: func(in *types.TripCreate) (*types.Trip, error) {
			rec := &types.Trip{
				ID:              uuid.New(),
				DriverProfileID: in.DriverProfileID,
				StartDate:       in.StartDate,
				EndDate:         in.EndDate,
				StartTime:       *in.StartTime,
				EndTime:         in.EndTime,
			}
			if in.Synced != nil {
				rec.Synced = *in.Synced
			}
			return rec, nil
		},
		CheckRefs: func(ctx context.Context, tx *gorm.DB, in *types.TripCreate) error {
			return requireRef(ctx, tx, profiles, in.DriverProfileID, "driver profile")
		},
		UpdateFields: func(in *types.TripUpdate) (map[string]any, error) {
			fields := map[string]any{}
			if in.DriverProfileID != nil {
				fields["driver_profile_id"] = *in.DriverProfileID
			}
			if in.StartDate != nil {
				fields["start_date"] = *in.StartDate
			}
			if in.EndDate != nil {
				fields["end_date"] = *in.EndDate
			}
			if in.StartTime != nil {
				fields["start_time"] = *in.StartTime
			}
			if in.EndTime != nil {
				fields["end_time"] = *in.EndTime
			}
			if in.Synced != nil {
				fields["synced"] = *in.Synced
			}
			return fields, nil
		},
		CheckUpdateRefs: func(ctx context.Context, tx *gorm.DB, in *types.TripUpdate) error {
			if in.DriverProfileID == nil {
				return nil
			}
			return requireRef(ctx, tx, profiles, *in.DriverProfileID, "driver profile")
		},
	}
	return newCrudBatchService(db, serviceLog, trips, hooks)
}
