package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Goal struct {
	BaseModel
	AccountID  uuid.UUID `gorm:"index"`
	GoalTypeID uuid.UUID `gorm:"index"`

	GoalType *GoalType
	Tracking []GoalTracking
}

type GoalTracking struct {
	BaseModel
	GoalID   uuid.UUID `gorm:"index"`
	Date     time.Time `gorm:"type:date"`
	Progress string    `gorm:"type:text"`
}
