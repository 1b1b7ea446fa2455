package types

import (
	"time"

	"github.com/google/uuid"
)

// AIModelInput is one row of the per-trip feature vector fed to the
// impairment classifier.
type AIModelInput struct {
	ID                        uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	TripID                    uuid.UUID  `gorm:"type:uuid;not null;index" json:"trip_id"`
	Trip                      *Trip      `gorm:"constraint:OnDelete:CASCADE;foreignKey:TripID;references:ID" json:"trip,omitempty"`
	Timestamp                 *time.Time `gorm:"column:timestamp" json:"timestamp,omitempty"`
	Date                      *time.Time `gorm:"column:date" json:"date,omitempty"`
	HourOfDayMean             float64    `gorm:"column:hour_of_day_mean" json:"hour_of_day_mean"`
	DayOfWeekMean             float64    `gorm:"column:day_of_week_mean" json:"day_of_week_mean"`
	SpeedStd                  float64    `gorm:"column:speed_std" json:"speed_std"`
	CourseStd                 float64    `gorm:"column:course_std" json:"course_std"`
	AccelerationYOriginalMean float64    `gorm:"column:acceleration_y_original_mean" json:"acceleration_y_original_mean"`
	Synced                    bool       `gorm:"not null;default:false;column:synced" json:"synced"`
	CreatedAt                 time.Time  `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt                 time.Time  `gorm:"not null;default:now()" json:"updated_at"`
}

func (AIModelInput) TableName() string { return "ai_model_inputs" }

type AIModelInputCreate struct {
	TripID                    uuid.UUID  `json:"trip_id"`
	Timestamp                 *time.Time `json:"timestamp,omitempty"`
	Date                      *time.Time `json:"date,omitempty"`
	HourOfDayMean             float64    `json:"hour_of_day_mean"`
	DayOfWeekMean             float64    `json:"day_of_week_mean"`
	SpeedStd                  float64    `json:"speed_std"`
	CourseStd                 float64    `json:"course_std"`
	AccelerationYOriginalMean float64    `json:"acceleration_y_original_mean"`
	Synced                    *bool      `json:"synced,omitempty"`
}

type AIModelInputUpdate struct {
	Timestamp                 *time.Time `json:"timestamp,omitempty"`
	Date                      *time.Time `json:"date,omitempty"`
	HourOfDayMean             *float64   `json:"hour_of_day_mean,omitempty"`
	DayOfWeekMean             *float64   `json:"day_of_week_mean,omitempty"`
	SpeedStd                  *float64   `json:"speed_std,omitempty"`
	CourseStd                 *float64   `json:"course_std,omitempty"`
	AccelerationYOriginalMean *float64   `json:"acceleration_y_original_mean,omitempty"`
	Synced                    *bool      `json:"synced,omitempty"`
}
