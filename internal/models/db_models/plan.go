package db_models

import (
	"time"

	"github.com/google/uuid"
)

// Plans are append-only: each generation creates a new plan row with its
// full day/detail graph, older plans are never touched.

type DietPlan struct {
	BaseModel
	AccountID   uuid.UUID `gorm:"index"`
	PlanStateID *uuid.UUID

	PlanState *PlanState
	Days      []MealDay
	Tracking  []DietTracking
}

type MealDay struct {
	BaseModel
	DietPlanID uuid.UUID `gorm:"index"`
	Date       time.Time `gorm:"type:date"`

	Meals []MealDetail
}

type MealDetail struct {
	BaseModel
	MealDayID uuid.UUID `gorm:"index"`
	MealType  string    `gorm:"size:50"`
	Dish      string    `gorm:"size:255"`
	Protein   float64   `gorm:"type:decimal(5,2)"`
	Fat       float64   `gorm:"type:decimal(5,2)"`
	Carbs     float64   `gorm:"type:decimal(5,2)"`
	Calories  float64   `gorm:"type:decimal(6,2)"`
}

type RoutinePlan struct {
	BaseModel
	AccountID   uuid.UUID `gorm:"index"`
	PlanStateID *uuid.UUID

	PlanState *PlanState
	Days      []TrainingDay
	Tracking  []RoutineTracking
}

type TrainingDay struct {
	BaseModel
	RoutinePlanID uuid.UUID `gorm:"index"`
	Date          time.Time `gorm:"type:date"`
	DayType       string    `gorm:"size:20"`

	Exercises []ExerciseDetail
}

type ExerciseDetail struct {
	BaseModel
	TrainingDayID uuid.UUID `gorm:"index"`
	Name          string    `gorm:"size:100"`
	Sets          int
	Reps          int
	Rest          string `gorm:"size:50"`
	Notes         string `gorm:"type:text"`
}
