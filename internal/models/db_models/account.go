package db_models

import "github.com/google/uuid"

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	Role         string `gorm:"default:user"`
	Active       bool   `gorm:"default:true"`
	UserTypeID   *uuid.UUID

	UserType *UserType

	Profile         *Profile
	Goals           []Goal
	ProgressRecords []ProgressRecord
	MetricRecords   []MetricRecord
	DietPlans       []DietPlan
	RoutinePlans    []RoutinePlan
}
