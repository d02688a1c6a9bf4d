package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ProgressRecord struct {
	BaseModel
	AccountID   uuid.UUID `gorm:"index"`
	Date        time.Time `gorm:"type:date"`
	Description string    `gorm:"type:text"`
}

// MetricRecord is one measurement in a typed time-series (body weight,
// BMI, water intake and so on). Details carries unit or breakdown data.
type MetricRecord struct {
	BaseModel
	AccountID  uuid.UUID `gorm:"index"`
	MetricType string    `gorm:"size:50;index"`
	Date       time.Time `gorm:"type:date"`
	Value      float64
	Category   string         `gorm:"size:50"`
	Details    datatypes.JSON `gorm:"type:jsonb"`
}

type DietTracking struct {
	BaseModel
	DietPlanID  uuid.UUID `gorm:"index"`
	Date        time.Time `gorm:"type:date"`
	Description string    `gorm:"type:text"`
}

type RoutineTracking struct {
	BaseModel
	RoutinePlanID uuid.UUID `gorm:"index"`
	Date          time.Time `gorm:"type:date"`
	Comments      string    `gorm:"type:text"`
}
