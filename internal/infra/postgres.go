package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"evoluciona/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	return db
}

// Migrate keeps the schema in sync with the models. Catalog tables first,
// then owners, then children.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.UserType{},
		&db_models.GoalType{},
		&db_models.GoalState{},
		&db_models.PlanState{},
		&db_models.RoutineState{},
		&db_models.RestrictionType{},

		&db_models.Account{},
		&db_models.Profile{},
		&db_models.FoodPreference{},
		&db_models.AvoidedFood{},
		&db_models.FitnessCondition{},
		&db_models.PreferredExercise{},
		&db_models.Equipment{},
		&db_models.MedicalHistory{},
		&db_models.DailyHabit{},
		&db_models.ProfileRestriction{},

		&db_models.Goal{},
		&db_models.GoalTracking{},
		&db_models.ProgressRecord{},
		&db_models.MetricRecord{},

		&db_models.DietPlan{},
		&db_models.MealDay{},
		&db_models.MealDetail{},
		&db_models.DietTracking{},
		&db_models.RoutinePlan{},
		&db_models.TrainingDay{},
		&db_models.ExerciseDetail{},
		&db_models.RoutineTracking{},
	)
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	}
}
