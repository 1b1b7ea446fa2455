package services

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/safedrive/telematics-api/internal/pkg/apierr"
	"github.com/safedrive/telematics-api/internal/pkg/logger"
	"github.com/safedrive/telematics-api/internal/repos"
	"github.com/safedrive/telematics-api/internal/types"
)

type RawSensorDataService interface {
	CrudService[types.RawSensorData, types.RawSensorDataCreate, types.RawSensorDataUpdate]
}

func NewRawSensorDataService(
	db *gorm.DB,
	log *logger.Logger,
	sensorData repos.RawSensorDataRepo,
	locations repos.LocationRepo,
	trips repos.TripRepo,
) RawSensorDataService {
	serviceLog := log.With("service", "RawSensorDataService")

	hooks := Hooks[types.RawSensorData, types.RawSensorDataCreate, types.RawSensorDataUpdate]{
		Entity: "raw sensor data",
		ValidateCreate: func(in *types.RawSensorDataCreate) error {
			if strings.TrimSpace(in.SensorTypeName) == "" {
				return apierr.Validation("sensor_type_name is required", nil)
			}
			if in.Timestamp == nil {
				return apierr.Validation("timestamp is required", nil)
			}
			return nil
		},
		NewRecord: func(in *types.RawSensorDataCreate) (*types.RawSensorData, error) {
			values, err := marshalFloats(in.Values)
			if err != nil {
				return nil, err
			}
			rec := &types.RawSensorData{
				ID:             uuid.New(),
				SensorType:     in.SensorType,
				SensorTypeName: in.SensorTypeName,
				Values:         values,
				Timestamp:      *in.Timestamp,
				Date:           in.Date,
				Accuracy:       in.Accuracy,
				LocationID:     in.LocationID,
				TripID:         in.TripID,
			}
			if in.Sync != nil {
				rec.Sync = *in.Sync
			}
			return rec, nil
		},
		CheckRefs: func(ctx context.Context, tx *gorm.DB, in *types.RawSensorDataCreate) error {
			if in.LocationID != nil {
				if err := requireRef(ctx, tx, locations, *in.LocationID, "location"); err != nil {
					return err
				}
			}
			if in.TripID != nil {
				if err := requireRef(ctx, tx, trips, *in.TripID, "trip"); err != nil {
					return err
				}
			}
			return nil
		},
		UpdateFields: func(in *types.RawSensorDataUpdate) (map[string]any, error) {
			fields := map[string]any{}
			if in.SensorType != nil {
				fields["sensor_type"] = *in.SensorType
			}
			if in.SensorTypeName != nil {
				fields["sensor_type_name"] = *in.SensorTypeName
			}
			if in.Values != nil {
				values, err := marshalFloats(*in.Values)
				if err != nil {
					return nil, err
				}
				fields["values"] = values
			}
			if in.Timestamp != nil {
				fields["timestamp"] = *in.Timestamp
			}
			if in.Date != nil {
				fields["date"] = *in.Date
			}
			if in.Accuracy != nil {
				fields["accuracy"] = *in.Accuracy
			}
			if in.LocationID != nil {
				fields["location_id"] = *in.LocationID
			}
			if in.TripID != nil {
				fields["trip_id"] = *in.TripID
			}
			if in.Sync != nil {
				fields["sync"] = *in.Sync
			}
			return fields, nil
		},
		CheckUpdateRefs: func(ctx context.Context, tx *gorm.DB, in *types.RawSensorDataUpdate) error {
			if in.LocationID != nil {
				if err := requireRef(ctx, tx, locations, *in.LocationID, "location"); err != nil {
					return err
				}
			}
			if in.TripID != nil {
				if err := requireRef(ctx, tx, trips, *in.TripID, "trip"); err != nil {
					return err
				}
			}
			return nil
		},
	}
	return newCrudService(db, serviceLog, sensorData, hooks)
}

func marshalFloats(values []float64) (datatypes.JSON, error) {
	if values == nil {
		values = []float64{}
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return nil, apierr.Validation("values must be a list of numbers", err)
	}
	return datatypes.JSON(raw), nil
}
