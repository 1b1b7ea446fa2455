package types

import (
	"time"

	"github.com/google/uuid"
)

// DrivingTip is generated advice for a driver; llm records which model wrote
// the tip.
type DrivingTip struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"tip_id"`
	Title      string         `gorm:"not null;column:title" json:"title"`
	Meaning    string         `gorm:"column:meaning" json:"meaning,omitempty"`
	Penalty    string         `gorm:"column:penalty" json:"penalty,omitempty"`
	Fine       string         `gorm:"column:fine" json:"fine,omitempty"`
	Law        string         `gorm:"column:law" json:"law,omitempty"`
	Hostility  string         `gorm:"column:hostility" json:"hostility,omitempty"`
	SummaryTip string         `gorm:"column:summary_tip" json:"summary_tip,omitempty"`
	Sync       bool           `gorm:"not null;default:false;column:sync" json:"sync"`
	Date       *time.Time     `gorm:"column:date" json:"date,omitempty"`
	ProfileID  uuid.UUID      `gorm:"type:uuid;not null;index;column:profile_id" json:"profile_id"`
	Profile    *DriverProfile `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProfileID;references:ID" json:"profile,omitempty"`
	LLM        string         `gorm:"column:llm" json:"llm,omitempty"`
	CreatedAt  time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (DrivingTip) TableName() string { return "driving_tips" }

type DrivingTipCreate struct {
	Title      string     `json:"title"`
	Meaning    string     `json:"meaning,omitempty"`
	Penalty    string     `json:"penalty,omitempty"`
	Fine       string     `json:"fine,omitempty"`
	Law        string     `json:"law,omitempty"`
	Hostility  string     `json:"hostility,omitempty"`
	SummaryTip string     `json:"summary_tip,omitempty"`
	Sync       *bool      `json:"sync,omitempty"`
	Date       *time.Time `json:"date,omitempty"`
	ProfileID  uuid.UUID  `json:"profile_id"`
	LLM        string     `json:"llm,omitempty"`
}

type DrivingTipUpdate struct {
	Title      *string    `json:"title,omitempty"`
	Meaning    *string    `json:"meaning,omitempty"`
	Penalty    *string    `json:"penalty,omitempty"`
	Fine       *string    `json:"fine,omitempty"`
	Law        *string    `json:"law,omitempty"`
	Hostility  *string    `json:"hostility,omitempty"`
	SummaryTip *string    `json:"summary_tip,omitempty"`
	Sync       *bool      `json:"sync,omitempty"`
	Date       *time.Time `json:"date,omitempty"`
	LLM        *string    `json:"llm,omitempty"`
}
