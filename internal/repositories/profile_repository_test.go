package repositories

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"evoluciona/internal/models/db_models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&db_models.Account{},
		&db_models.Profile{},
		&db_models.FoodPreference{},
		&db_models.AvoidedFood{},
		&db_models.FitnessCondition{},
		&db_models.PreferredExercise{},
		&db_models.Equipment{},
		&db_models.MedicalHistory{},
		&db_models.DailyHabit{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func sampleRows(diets, exercises []string) SurveyRows {
	rows := SurveyRows{
		Profile: db_models.Profile{
			Gender:        "female",
			Age:           28,
			WeightKg:      62,
			HeightCm:      167,
			ActivityLevel: "moderate",
			PrimaryGoal:   "lose weight",
		},
		FitnessConditions: []db_models.FitnessCondition{{
			ExerciseFrequency: "3 times a week",
			AvailableTime:     "45 minutes",
		}},
		MedicalHistories: []db_models.MedicalHistory{{Medications: "none"}},
		DailyHabits:      []db_models.DailyHabit{{SleepHours: "7-8"}},
	}
	for _, d := range diets {
		rows.FoodPreferences = append(rows.FoodPreferences, db_models.FoodPreference{Kind: "diet", Value: d})
	}
	for _, e := range exercises {
		rows.PreferredExercises = append(rows.PreferredExercises, db_models.PreferredExercise{Kind: e})
	}
	return rows
}

func TestSyncSurvey_CreatesProfileAndChildren(t *testing.T) {
	db := openTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()
	accountID := uuid.New()

	err := repo.SyncSurvey(ctx, accountID, sampleRows([]string{"vegetarian"}, []string{"running", "yoga"}))
	if err != nil {
		t.Fatalf("SyncSurvey: %v", err)
	}

	state, err := repo.LoadSurveyState(ctx, accountID)
	if err != nil {
		t.Fatalf("LoadSurveyState: %v", err)
	}
	if state == nil {
		t.Fatal("expected survey state, got nil")
	}
	if state.Profile.Age != 28 || state.Profile.PrimaryGoal != "lose weight" {
		t.Errorf("profile scalars not stored: %+v", state.Profile)
	}
	if len(state.FoodPreferences) != 1 || state.FoodPreferences[0].Value != "vegetarian" {
		t.Errorf("unexpected food preferences: %+v", state.FoodPreferences)
	}
	if len(state.PreferredExercises) != 2 {
		t.Errorf("expected 2 preferred exercises, got %d", len(state.PreferredExercises))
	}
	if state.FitnessCondition == nil || state.FitnessCondition.AvailableTime != "45 minutes" {
		t.Errorf("fitness condition not stored: %+v", state.FitnessCondition)
	}
	if state.MedicalHistory == nil || state.DailyHabits == nil {
		t.Error("medical history and daily habits should be stored")
	}
}

func TestSyncSurvey_SecondSubmissionReplacesEverything(t *testing.T) {
	db := openTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()
	accountID := uuid.New()

	if err := repo.SyncSurvey(ctx, accountID, sampleRows([]string{"vegetarian", "low carb"}, []string{"running", "yoga", "swimming"})); err != nil {
		t.Fatalf("first SyncSurvey: %v", err)
	}

	second := sampleRows([]string{"keto"}, []string{"cycling"})
	second.Profile.Age = 29
	second.Profile.WeightKg = 60
	if err := repo.SyncSurvey(ctx, accountID, second); err != nil {
		t.Fatalf("second SyncSurvey: %v", err)
	}

	state, err := repo.LoadSurveyState(ctx, accountID)
	if err != nil {
		t.Fatalf("LoadSurveyState: %v", err)
	}

	var diets []string
	for _, pref := range state.FoodPreferences {
		diets = append(diets, pref.Value)
	}
	sort.Strings(diets)
	if len(diets) != 1 || diets[0] != "keto" {
		t.Errorf("expected exactly the new diet set, got %v", diets)
	}

	if len(state.PreferredExercises) != 1 || state.PreferredExercises[0].Kind != "cycling" {
		t.Errorf("expected exactly the new exercise set, got %+v", state.PreferredExercises)
	}

	if state.Profile.Age != 29 || state.Profile.WeightKg != 60 {
		t.Errorf("profile scalars not updated: %+v", state.Profile)
	}

	// Only one profile row may exist per account.
	var profiles int64
	if err := db.Model(&db_models.Profile{}).Where("account_id = ?", accountID).Count(&profiles).Error; err != nil {
		t.Fatalf("count profiles: %v", err)
	}
	if profiles != 1 {
		t.Errorf("expected 1 profile row, got %d", profiles)
	}
}

func TestSyncSurvey_EmptyListsClearChildren(t *testing.T) {
	db := openTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()
	accountID := uuid.New()

	if err := repo.SyncSurvey(ctx, accountID, sampleRows([]string{"vegetarian"}, []string{"running"})); err != nil {
		t.Fatalf("first SyncSurvey: %v", err)
	}

	empty := sampleRows(nil, nil)
	if err := repo.SyncSurvey(ctx, accountID, empty); err != nil {
		t.Fatalf("second SyncSurvey: %v", err)
	}

	state, err := repo.LoadSurveyState(ctx, accountID)
	if err != nil {
		t.Fatalf("LoadSurveyState: %v", err)
	}
	if len(state.FoodPreferences) != 0 {
		t.Errorf("expected food preferences cleared, got %+v", state.FoodPreferences)
	}
	if len(state.PreferredExercises) != 0 {
		t.Errorf("expected exercises cleared, got %+v", state.PreferredExercises)
	}
}

func TestLoadSurveyState_UnknownAccountReturnsNil(t *testing.T) {
	db := openTestDB(t)
	repo := NewProfileRepository(db)

	state, err := repo.LoadSurveyState(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("LoadSurveyState: %v", err)
	}
	if state != nil {
		t.Errorf("expected nil state for unknown account, got %+v", state)
	}
}
