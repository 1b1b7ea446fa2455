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

type AIModelInputService interface {
	CrudService[types.AIModelInput, types.AIModelInputCreate, types.AIModelInputUpdate]
	BatchService[types.AIModelInputCreate]
}

func NewAIModelInputService(db *gorm.DB, log *logger.Logger, inputs repos.AIModelInputRepo, trips repos.TripRepo) AIModelInputService {
	serviceLog := log.With("service", "AIModelInputService")

	hooks := Hooks[types.AIModelInput, types.AIModelInputCreate, types.AIModelInputUpdate]{
		Entity: "ai model input",
		ValidateCreate: func(in *types.AIModelInputCreate) error {
			if in.TripID == uuid.Nil {
				return apierr.Validation("trip_id is required", nil)
			}
			return nil
		},
		NewRecord: func(in *types.AIModelInputCreate) (*types.AIModelInput, error) {
			rec := &types.AIModelInput{
				ID:                        uuid.New(),
				TripID:                    in.TripID,
				Timestamp:                 in.Timestamp,
				Date:                      in.Date,
				HourOfDayMean:             in.HourOfDayMean,
				DayOfWeekMean:             in.DayOfWeekMean,
				SpeedStd:                  in.SpeedStd,
				CourseStd:                 in.CourseStd,
				AccelerationYOriginalMean: in.AccelerationYOriginalMean,
			}
			if in.Synced != nil {
				rec.Synced = *in.Synced
			}
			return rec, nil
		},
		CheckRefs: func(ctx context.Context, tx *gorm.DB, in *types.AIModelInputCreate) error {
			return requireRef(ctx, tx, trips, in.TripID, "trip")
		},
		UpdateFields: func(in *types.AIModelInputUpdate) (map[string]any, error) {
			fields := map[string]any{}
			if in.Timestamp != nil {
				fields["timestamp"] = *in.Timestamp
			}
			if in.Date != nil {
				fields["date"] = *in.Date
			}
			if in.HourOfDayMean != nil {
				fields["hour_of_day_mean"] = *in.HourOfDayMean
			}
			if in.DayOfWeekMean != nil {
				fields["day_of_week_mean"] = *in.DayOfWeekMean
			}
			if in.SpeedStd != nil {
				fields["speed_std"] = *in.SpeedStd
			}
			if in.CourseStd != nil {
				fields["course_std"] = *in.CourseStd
			}
			if in.AccelerationYOriginalMean != nil {
				fields["acceleration_y_original_mean"] = *in.AccelerationYOriginalMean
			}
			if in.Synced != nil {
				fields["synced"] = *in.Synced
			}
			return fields, nil
		},
	}
	return newCrudBatchService(db, serviceLog, inputs, hooks)
}
