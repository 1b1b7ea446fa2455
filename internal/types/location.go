package types

import (
	"time"

	"github.com/google/uuid"
)

type Location struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Latitude  float64    `gorm:"not null;column:latitude" json:"latitude"`
	Longitude float64    `gorm:"not null;column:longitude" json:"longitude"`
	Timestamp int64      `gorm:"not null;column:timestamp" json:"timestamp"`
	Date      *time.Time `gorm:"column:date" json:"date,omitempty"`
	Altitude  float64    `gorm:"column:altitude" json:"altitude"`
	Speed     float64    `gorm:"column:speed" json:"speed"`
	Distance  float64    `gorm:"column:distance" json:"distance"`
	Sync      bool       `gorm:"not null;default:false;column:sync" json:"sync"`
	CreatedAt time.Time  `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null;default:now()" json:"updated_at"`
}

func (Location) TableName() string { return "location" }

// Latitude and longitude are pointers so a present-but-zero coordinate is
// distinguishable from an omitted one.
type LocationCreate struct {
	Latitude  *float64   `json:"latitude"`
	Longitude *float64   `json:"longitude"`
	Timestamp int64      `json:"timestamp"`
	Date      *time.Time `json:"date,omitempty"`
	Altitude  float64    `json:"altitude"`
	Speed     float64    `json:"speed"`
	Distance  float64    `json:"distance"`
	Sync      *bool      `json:"sync,omitempty"`
}

type LocationUpdate struct {
	Latitude  *float64   `json:"latitude,omitempty"`
	Longitude *float64   `json:"longitude,omitempty"`
	Timestamp *int64     `json:"timestamp,omitempty"`
	Date      *time.Time `json:"date,omitempty"`
	Altitude  *float64   `json:"altitude,omitempty"`
	Speed     *float64   `json:"speed,omitempty"`
	Distance  *float64   `json:"distance,omitempty"`
	Sync      *bool      `json:"sync,omitempty"`
}
