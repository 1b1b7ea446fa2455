package types

import (
	"time"

	"github.com/google/uuid"
)

// DriverProfile is the root entity: trips, tips, behaviours and reports all
// hang off it and are removed with it.
type DriverProfile struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"driver_profile_id"`
	Email     string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Sync      bool      `gorm:"not null;default:false;column:sync" json:"sync"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (DriverProfile) TableName() string { return "driver_profile" }

type DriverProfileCreate struct {
	Email string `json:"email"`
	Sync  *bool  `json:"sync,omitempty"`
}

type DriverProfileUpdate struct {
	Email *string `json:"email,omitempty"`
	Sync  *bool   `json:"sync,omitempty"`
}
