package types

import (
	"time"

	"github.com/google/uuid"
)

type NLGReport struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	DriverProfileID uuid.UUID      `gorm:"type:uuid;not null;index" json:"driver_profile_id"`
	DriverProfile   *DriverProfile `gorm:"constraint:OnDelete:CASCADE;foreignKey:DriverProfileID;references:ID" json:"driver_profile,omitempty"`
	ReportText      string         `gorm:"not null;column:report_text" json:"report_text"`
	GeneratedAt     *time.Time     `gorm:"column:generated_at" json:"generated_at,omitempty"`
	Synced          bool           `gorm:"not null;default:false;column:synced" json:"synced"`
	CreatedAt       time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (NLGReport) TableName() string { return "nlg_report" }

type NLGReportCreate struct {
	DriverProfileID uuid.UUID  `json:"driver_profile_id"`
	ReportText      string     `json:"report_text"`
	GeneratedAt     *time.Time `json:"generated_at,omitempty"`
	Synced          *bool      `json:"synced,omitempty"`
}

type NLGReportUpdate struct {
	ReportText  *string    `json:"report_text,omitempty"`
	GeneratedAt *time.Time `json:"generated_at,omitempty"`
	Synced      *bool      `json:"synced,omitempty"`
}
