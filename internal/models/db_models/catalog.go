package db_models

// Catalog tables: static lookups referenced by user-owned records,
// seeded once and never mutated by normal user flows.

type UserType struct {
	BaseModel
	Description string `gorm:"size:50"`
}

type GoalType struct {
	BaseModel
	Description string `gorm:"size:100"`
}

type GoalState struct {
	BaseModel
	Description string `gorm:"size:50"`
}

type PlanState struct {
	BaseModel
	Description string `gorm:"size:50"`
}

type RoutineState struct {
	BaseModel
	Description string `gorm:"size:50"`
}

type RestrictionType struct {
	BaseModel
	Description string `gorm:"size:100"`
}
