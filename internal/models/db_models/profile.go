package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Profile is the demographic+goals snapshot owned by exactly one account.
// Its dependent collections hold the current survey state only: the survey
// synchronizer fully replaces them on every submission.
type Profile struct {
	BaseModel
	AccountID uuid.UUID `gorm:"uniqueIndex"`

	Gender          string  `gorm:"size:20"`
	Age             int
	WeightKg        float64 `gorm:"type:decimal(5,2)"`
	HeightCm        float64 `gorm:"type:decimal(5,2)"`
	ActivityLevel   string  `gorm:"size:20"`
	PrimaryGoal     string  `gorm:"size:50"`
	GoalTimeframe   string  `gorm:"size:20"`
	CommitmentLevel int
	ProgressMetrics pq.StringArray `gorm:"type:text[]"`

	FoodPreferences    []FoodPreference
	AvoidedFoods       []AvoidedFood
	FitnessConditions  []FitnessCondition
	PreferredExercises []PreferredExercise
	Equipment          []Equipment
	MedicalHistories   []MedicalHistory
	DailyHabits        []DailyHabit
	Restrictions       []ProfileRestriction
}

type FoodPreference struct {
	BaseModel
	ProfileID uuid.UUID `gorm:"index"`
	Kind      string    `gorm:"size:20"` // diet | allergy | favorite
	Value     string    `gorm:"size:100"`
}

type AvoidedFood struct {
	BaseModel
	ProfileID   uuid.UUID `gorm:"index"`
	Description string    `gorm:"type:text"`
}

type FitnessCondition struct {
	BaseModel
	ProfileID         uuid.UUID `gorm:"index"`
	ExerciseFrequency string    `gorm:"size:50"`
	AvailableTime     string    `gorm:"size:50"`
}

type PreferredExercise struct {
	BaseModel
	ProfileID uuid.UUID `gorm:"index"`
	Kind      string    `gorm:"size:50"`
}

type Equipment struct {
	BaseModel
	ProfileID uuid.UUID `gorm:"index"`
	Name      string    `gorm:"size:50"`
}

type MedicalHistory struct {
	BaseModel
	ProfileID         uuid.UUID `gorm:"index"`
	ChronicConditions string    `gorm:"type:text"`
	OtherConditions   string    `gorm:"type:text"`
	Medications       string    `gorm:"type:text"`
	Injuries          string    `gorm:"type:text"`
	FamilyHistory     string    `gorm:"type:text"`
}

type DailyHabit struct {
	BaseModel
	ProfileID    uuid.UUID `gorm:"index"`
	SleepHours   string    `gorm:"size:20"`
	SleepQuality string    `gorm:"size:20"`
	StressLevel  string    `gorm:"size:20"`
	WaterIntake  string    `gorm:"size:20"`
	MealsPerDay  string    `gorm:"size:20"`
	SnackHabits  string    `gorm:"size:30"`
	ScreenHours  string    `gorm:"size:20"`
	WorkType     string    `gorm:"size:30"`
}

type ProfileRestriction struct {
	BaseModel
	ProfileID         uuid.UUID `gorm:"index"`
	RestrictionTypeID uuid.UUID `gorm:"index"`

	RestrictionType *RestrictionType
}
