package types

import (
	"time"

	"github.com/google/uuid"
)

type Trip struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	DriverProfileID uuid.UUID      `gorm:"type:uuid;not null;index" json:"driver_profile_id"`
	DriverProfile   *DriverProfile `gorm:"constraint:OnDelete:CASCADE;foreignKey:DriverProfileID;references:ID" json:"driver_profile,omitempty"`
	StartDate       *time.Time     `gorm:"column:start_date" json:"start_date,omitempty"`
	EndDate         *time.Time     `gorm:"column:end_date" json:"end_date,omitempty"`
	StartTime       int64          `gorm:"not null;column:start_time" json:"start_time"`
	EndTime         *int64         `gorm:"column:end_time" json:"end_time,omitempty"`
	Synced          bool           `gorm:"not null;default:false;column:synced" json:"synced"`
	CreatedAt       time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (Trip) TableName() string { return "trip" }

type TripCreate struct {
	DriverProfileID uuid.UUID  `json:"driver_profile_id"`
	StartDate       *time.Time `json:"start_date,omitempty"`
	EndDate         *time.Time `json:"end_date,omitempty"`
	StartTime       *int64     `json:"start_time"`
	EndTime         *int64     `json:"end_time,omitempty"`
	Synced          *bool      `json:"synced,omitempty"`
}

type TripUpdate struct {
	DriverProfileID *uuid.UUID `json:"driver_profile_id,omitempty"`
	StartDate       *time.Time `json:"start_date,omitempty"`
	EndDate         *time.Time `json:"end_date,omitempty"`
	StartTime       *int64     `json:"start_time,omitempty"`
	EndTime         *int64     `json:"end_time,omitempty"`
	Synced          *bool      `json:"synced,omitempty"`
}
