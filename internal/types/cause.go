package types

import (
	"time"

	"github.com/google/uuid"
)

type Cause struct {
	ID                uuid.UUID        `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UnsafeBehaviourID uuid.UUID        `gorm:"type:uuid;not null;index" json:"unsafe_behaviour_id"`
	UnsafeBehaviour   *UnsafeBehaviour `gorm:"constraint:OnDelete:CASCADE;foreignKey:UnsafeBehaviourID;references:ID" json:"unsafe_behaviour,omitempty"`
	Name              string           `gorm:"not null;column:name" json:"name"`
	Influence         *bool            `gorm:"column:influence" json:"influence,omitempty"`
	Synced            bool             `gorm:"not null;default:false;column:synced" json:"synced"`
	CreatedAt         time.Time        `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt         time.Time        `gorm:"not null;default:now()" json:"updated_at"`
}

func (Cause) TableName() string { return "causes" }

type CauseCreate struct {
	UnsafeBehaviourID uuid.UUID `json:"unsafe_behaviour_id"`
	Name              string    `json:"name"`
	Influence         *bool     `json:"influence,omitempty"`
	Synced            *bool     `json:"synced,omitempty"`
}

type CauseUpdate struct {
	Name      *string `json:"name,omitempty"`
	Influence *bool   `json:"influence,omitempty"`
	Synced    *bool   `json:"synced,omitempty"`
}
