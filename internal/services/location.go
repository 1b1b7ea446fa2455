package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/safedrive/telematics-api/internal/pkg/apierr"
	"github.com/safedrive/telematics-api/internal/pkg/logger"
	"github.com/safedrive/telematics-api/internal/repos"
	"github.com/safedrive/telematics-api/internal/types"
)

type LocationService interface {
	CrudService[types.Location, types.LocationCreate, types.LocationUpdate]
	BatchService[types.LocationCreate]
}

func NewLocationService(db *gorm.DB, log *logger.Logger, locations repos.LocationRepo) LocationService {
	serviceLog := log.With("service", "LocationService")

	hooks := Hooks[types.Location, types.LocationCreate, types.LocationUpdate]{
		Entity: "location",
		ValidateCreate: func(in *types.LocationCreate) error {
			if in.Latitude == nil {
				return apierr.Validation("latitude is required", nil)
			}
			if in.Longitude == nil {
				return apierr.Validation("longitude is required", nil)
			}
			return nil
		},
		NewRecord: func(in *types.LocationCreate) (*types.Location, error) {
			rec := &types.Location{
				ID:        uuid.New(),
				Latitude:  *in.Latitude,
				Longitude: *in.Longitude,
				Timestamp: in.Timestamp,
				Date:      in.Date,
				Altitude:  in.Altitude,
				Speed:     in.Speed,
				Distance:  in.Distance,
			}
			if in.Sync != nil {
				rec.Sync = *in.Sync
			}
			return rec, nil
		},
		UpdateFields: func(in *types.LocationUpdate) (map[string]any, error) {
			fields := map[string]any{}
			if in.Latitude != nil {
				fields["latitude"] = *in.Latitude
			}
			if in.Longitude != nil {
				fields["longitude"] = *in.Longitude
			}
			if in.Timestamp != nil {
				fields["timestamp"] = *in.Timestamp
			}
			if in.Date != nil {
				fields["date"] = *in.Date
			}
			if in.Altitude != nil {
				fields["altitude"] = *in.Altitude
			}
			if in.Speed != nil {
				fields["speed"] = *in.Speed
			}
			if in.Distance != nil {
				fields["distance"] = *in.Distance
			}
			if in.Sync != nil {
				fields["sync"] = *in.Sync
			}
			return fields, nil
		},
	}
	return newCrudBatchService(db, serviceLog, locations, hooks)
}
