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

type UnsafeBehaviourService interface {
	CrudService[types.UnsafeBehaviour, types.UnsafeBehaviourCreate, types.UnsafeBehaviourUpdate]
	BatchService[types.UnsafeBehaviourCreate]
}

func NewUnsafeBehaviourService(
	db *gorm.DB,
	log *logger.Logger,
	behaviours repos.UnsafeBehaviourRepo,
	trips repos.TripRepo,
	profiles repos.DriverProfileRepo,
	locations repos.LocationRepo,
) UnsafeBehaviourService {
	serviceLog := log.With("service", "UnsafeBehaviourService")

	hooks := Hooks[types.UnsafeBehaviour, types.UnsafeBehaviourCreate, types.UnsafeBehaviourUpdate]{
		Entity: "unsafe behaviour",
		ValidateCreate: func(in *types.UnsafeBehaviourCreate) error {
			if in.TripID == uuid.Nil {
				return apierr.Validation("trip_id is required", nil)
			}
			if in.DriverProfileID == uuid.Nil {
				return apierr.Validation("driver_profile_id is required", nil)
			}
			if strings.TrimSpace(in.BehaviourType) == "" {
				return apierr.Validation("behaviour_type is required", nil)
			}
			return nil
		},
		NewRecord: func(in *types.UnsafeBehaviourCreate) (*types.UnsafeBehaviour, error) {
			rec := &types.UnsafeBehaviour{
				ID:              uuid.New(),
				TripID:          in.TripID,
				DriverProfileID: in.DriverProfileID,
				LocationID:      in.LocationID,
				BehaviourType:   in.BehaviourType,
				Severity:        in.Severity,
				Timestamp:       in.Timestamp,
				Date:            in.Date,
			}
			if in.Updated != nil {
				rec.Updated = *in.Updated
			}
			if in.Synced != nil {
				rec.Synced = *in.Synced
			}
			if in.AlcoholInfluence != nil {
				rec.AlcoholInfluence = *in.AlcoholInfluence
			}
			return rec, nil
		},
		CheckRefs: func(ctx context.Context, tx *gorm.DB, in *types.UnsafeBehaviourCreate) error {
			if err := requireRef(ctx, tx, trips, in.TripID, "trip"); err != nil {
				return err
			}
			if err := requireRef(ctx, tx, profiles, in.DriverProfileID, "driver profile"); err != nil {
				return err
			}
			if in.LocationID != nil {
				if err := requireRef(ctx, tx, locations, *in.LocationID, "location"); err != nil {
					return err
				}
			}
			return nil
		},
		UpdateFields: func(in *types.UnsafeBehaviourUpdate) (map[string]any, error) {
			fields := map[string]any{}
			if in.LocationID != nil {
				fields["location_id"] = *in.LocationID
			}
			if in.BehaviourType != nil {
				fields["behaviour_type"] = *in.BehaviourType
			}
			if in.Severity != nil {
				fields["severity"] = *in.Severity
			}
			if in.Timestamp != nil {
				fields["timestamp"] = *in.Timestamp
			}
			if in.Date != nil {
				fields["date"] = *in.Date
			}
			if in.Updated != nil {
				fields["updated"] = *in.Updated
			}
			if in.Synced != nil {
				fields["synced"] = *in.Synced
			}
			if in.AlcoholInfluence != nil {
				fields["alcohol_influence"] = *in.AlcoholInfluence
			}
			return fields, nil
		},
		CheckUpdateRefs: func(ctx context.Context, tx *gorm.DB, in *types.UnsafeBehaviourUpdate) error {
			if in.LocationID == nil {
				return nil
			}
			return requireRef(ctx, tx, locations, *in.LocationID, "location")
		},
	}
	return newCrudBatchService(db, serviceLog, behaviours, hooks)
}
