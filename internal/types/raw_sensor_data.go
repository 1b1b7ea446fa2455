package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type RawSensorData struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SensorType     int            `gorm:"not null;column:sensor_type" json:"sensor_type"`
	SensorTypeName string         `gorm:"not null;column:sensor_type_name" json:"sensor_type_name"`
	Values         datatypes.JSON `gorm:"type:jsonb;not null;column:values" json:"values"`
	Timestamp      int64          `gorm:"not null;column:timestamp" json:"timestamp"`
	Date           *time.Time     `gorm:"column:date" json:"date,omitempty"`
	Accuracy       int            `gorm:"column:accuracy" json:"accuracy"`
	LocationID     *uuid.UUID     `gorm:"type:uuid;index" json:"location_id,omitempty"`
	Location       *Location      `gorm:"constraint:OnDelete:SET NULL;foreignKey:LocationID;references:ID" json:"location,omitempty"`
	TripID         *uuid.UUID     `gorm:"type:uuid;index" json:"trip_id,omitempty"`
	Trip           *Trip          `gorm:"constraint:OnDelete:SET NULL;foreignKey:TripID;references:ID" json:"trip,omitempty"`
	Sync           bool           `gorm:"not null;default:false;column:sync" json:"sync"`
	CreatedAt      time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (RawSensorData) TableName() string { return "raw_sensor_data" }

type RawSensorDataCreate struct {
	SensorType     int        `json:"sensor_type"`
	SensorTypeName string     `json:"sensor_type_name"`
	Values         []float64  `json:"values"`
	Timestamp      *int64     `json:"timestamp"`
	Date           *time.Time `json:"date,omitempty"`
	Accuracy       int        `json:"accuracy"`
	LocationID     *uuid.UUID `json:"location_id,omitempty"`
	TripID         *uuid.UUID `json:"trip_id,omitempty"`
	Sync           *bool      `json:"sync,omitempty"`
}

type RawSensorDataUpdate struct {
	SensorType     *int       `json:"sensor_type,omitempty"`
	SensorTypeName *string    `json:"sensor_type_name,omitempty"`
	Values         *[]float64 `json:"values,omitempty"`
	Timestamp      *int64     `json:"timestamp,omitempty"`
	Date           *time.Time `json:"date,omitempty"`
	Accuracy       *int       `json:"accuracy,omitempty"`
	LocationID     *uuid.UUID `json:"location_id,omitempty"`
	TripID         *uuid.UUID `json:"trip_id,omitempty"`
	Sync           *bool      `json:"sync,omitempty"`
}
