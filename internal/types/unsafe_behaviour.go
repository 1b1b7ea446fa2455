package types

import (
	"time"

	"github.com/google/uuid"
)

// UnsafeBehaviour is a detected driving event (harsh braking, speeding, ...)
// tied to a trip and optionally to the location where it happened.
type UnsafeBehaviour struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	TripID           uuid.UUID      `gorm:"type:uuid;not null;index" json:"trip_id"`
	Trip             *Trip          `gorm:"constraint:OnDelete:CASCADE;foreignKey:TripID;references:ID" json:"trip,omitempty"`
	DriverProfileID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"driver_profile_id"`
	DriverProfile    *DriverProfile `gorm:"constraint:OnDelete:CASCADE;foreignKey:DriverProfileID;references:ID" json:"driver_profile,omitempty"`
	LocationID       *uuid.UUID     `gorm:"type:uuid;index" json:"location_id,omitempty"`
	Location         *Location      `gorm:"constraint:OnDelete:SET NULL;foreignKey:LocationID;references:ID" json:"location,omitempty"`
	BehaviourType    string         `gorm:"not null;column:behaviour_type" json:"behaviour_type"`
	Severity         float64        `gorm:"column:severity" json:"severity"`
	Timestamp        int64          `gorm:"column:timestamp" json:"timestamp"`
	Date             *time.Time     `gorm:"column:date" json:"date,omitempty"`
	Updated          bool           `gorm:"not null;default:false;column:updated" json:"updated"`
	Synced           bool           `gorm:"not null;default:false;column:synced" json:"synced"`
	AlcoholInfluence bool           `gorm:"not null;default:false;column:alcohol_influence" json:"alcohol_influence"`
	CreatedAt        time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (UnsafeBehaviour) TableName() string { return "unsafe_behaviour" }

type UnsafeBehaviourCreate struct {
	TripID           uuid.UUID  `json:"trip_id"`
	DriverProfileID  uuid.UUID  `json:"driver_profile_id"`
	LocationID       *uuid.UUID `json:"location_id,omitempty"`
	BehaviourType    string     `json:"behaviour_type"`
	Severity         float64    `json:"severity"`
	Timestamp        int64      `json:"timestamp"`
	Date             *time.Time `json:"date,omitempty"`
	Updated          *bool      `json:"updated,omitempty"`
	Synced           *bool      `json:"synced,omitempty"`
	AlcoholInfluence *bool      `json:"alcohol_influence,omitempty"`
}

type UnsafeBehaviourUpdate struct {
	LocationID       *uuid.UUID `json:"location_id,omitempty"`
	BehaviourType    *string    `json:"behaviour_type,omitempty"`
	Severity         *float64   `json:"severity,omitempty"`
	Timestamp        *int64     `json:"timestamp,omitempty"`
	Date             *time.Time `json:"date,omitempty"`
	Updated          *bool      `json:"updated,omitempty"`
	Synced           *bool      `json:"synced,omitempty"`
	AlcoholInfluence *bool      `json:"alcohol_influence,omitempty"`
}
