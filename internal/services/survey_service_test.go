package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"evoluciona/internal/models/request_models"
	"evoluciona/internal/repositories"
	"evoluciona/pkg/utils"
)

func sampleSurvey() request_models.SurveyData {
	return request_models.SurveyData{
		PersonalInfo: request_models.PersonalInfo{
			Gender:        "female",
			Age:           31,
			HeightCm:      168,
			WeightKg:      63,
			ActivityLevel: "light",
		},
		FoodPrefs: request_models.FoodPreferences{
			DietTypes:      []string{"mediterranean"},
			Allergies:      []string{"shellfish"},
			OtherAllergies: "kiwi",
			FavoriteFoods:  []string{"salmon", "rice"},
			FoodsToAvoid:   "fried food",
		},
		Goals: request_models.GoalsObjectives{
			PrimaryGoal:     "lose weight",
			GoalTimeframe:   "6 months",
			CommitmentLevel: 4,
			ProgressMetrics: []string{"weight", "waist"},
		},
		FitnessLevel: request_models.FitnessLevel{
			ExerciseFrequency: "twice a week",
			ExerciseTypes:     []string{"pilates"},
			Equipment:         []string{"dumbbells"},
			AvailableTime:     "30 minutes",
		},
		MedicalHistory: request_models.MedicalHistory{
			ChronicConditions: []string{"asthma", "hypertension"},
			Medications:       "inhaler",
		},
		DailyHabits: request_models.DailyHabits{
			SleepHours:  "6-7",
			MealsPerDay: "3",
		},
	}
}

func TestSubmitSurvey_MapsPayloadToRows(t *testing.T) {
	repo := &fakeProfileRepo{}
	svc := NewSurveyService(repo, zap.NewNop())

	if err := svc.SubmitSurvey(context.Background(), uuid.New(), sampleSurvey()); err != nil {
		t.Fatalf("SubmitSurvey: %v", err)
	}
	if repo.rows == nil {
		t.Fatal("no rows reached the repository")
	}

	rows := repo.rows
	if rows.Profile.Age != 31 || rows.Profile.ActivityLevel != "light" {
		t.Errorf("profile scalars not mapped: %+v", rows.Profile)
	}
	if got := []string(rows.Profile.ProgressMetrics); len(got) != 2 {
		t.Errorf("progress metrics not mapped: %v", got)
	}

	// One diet + two allergies (free-text one included) + two favorites.
	kinds := map[string]int{}
	for _, pref := range rows.FoodPreferences {
		kinds[pref.Kind]++
	}
	if kinds["diet"] != 1 || kinds["allergy"] != 2 || kinds["favorite"] != 2 {
		t.Errorf("unexpected food preference kinds: %v", kinds)
	}

	if len(rows.AvoidedFoods) != 1 || rows.AvoidedFoods[0].Description != "fried food" {
		t.Errorf("avoided foods not mapped: %+v", rows.AvoidedFoods)
	}
	if len(rows.FitnessConditions) != 1 || rows.FitnessConditions[0].AvailableTime != "30 minutes" {
		t.Errorf("fitness condition not mapped: %+v", rows.FitnessConditions)
	}
	if len(rows.MedicalHistories) != 1 || !strings.Contains(rows.MedicalHistories[0].ChronicConditions, "asthma") {
		t.Errorf("medical history not mapped: %+v", rows.MedicalHistories)
	}
	if len(rows.DailyHabits) != 1 || rows.DailyHabits[0].SleepHours != "6-7" {
		t.Errorf("daily habits not mapped: %+v", rows.DailyHabits)
	}
}

func TestSubmitSurvey_RejectsOverlongValues(t *testing.T) {
	repo := &fakeProfileRepo{}
	svc := NewSurveyService(repo, zap.NewNop())

	cases := []struct {
		name   string
		mutate func(*request_models.SurveyData)
	}{
		{"allergy", func(d *request_models.SurveyData) {
			d.FoodPrefs.Allergies = []string{strings.Repeat("a", 101)}
		}},
		{"favorite", func(d *request_models.SurveyData) {
			d.FoodPrefs.FavoriteFoods = []string{strings.Repeat("b", 101)}
		}},
		{"exercise", func(d *request_models.SurveyData) {
			d.FitnessLevel.ExerciseTypes = []string{strings.Repeat("c", 51)}
		}},
		{"equipment", func(d *request_models.SurveyData) {
			d.FitnessLevel.Equipment = []string{strings.Repeat("d", 51)}
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data := sampleSurvey()
			tc.mutate(&data)

			err := svc.SubmitSurvey(context.Background(), uuid.New(), data)
			if !errors.Is(err, utils.ErrValueTooLong) {
				t.Fatalf("expected ErrValueTooLong, got %v", err)
			}
		})
	}
	if repo.rows != nil {
		t.Error("rejected payloads must not reach the repository")
	}
}

func TestSubmitSurvey_BoundaryLengthsAccepted(t *testing.T) {
	repo := &fakeProfileRepo{}
	svc := NewSurveyService(repo, zap.NewNop())

	data := sampleSurvey()
	data.FoodPrefs.Allergies = []string{strings.Repeat("a", 100)}
	data.FitnessLevel.Equipment = []string{strings.Repeat("d", 50)}

	if err := svc.SubmitSurvey(context.Background(), uuid.New(), data); err != nil {
		t.Fatalf("boundary-length values should be accepted: %v", err)
	}
}

func TestGetSurveyData_RoundTripsThroughViews(t *testing.T) {
	repo := &fakeProfileRepo{}
	svc := NewSurveyService(repo, zap.NewNop())
	accountID := uuid.New()

	if err := svc.SubmitSurvey(context.Background(), accountID, sampleSurvey()); err != nil {
		t.Fatalf("SubmitSurvey: %v", err)
	}

	// The fake repo hands the captured rows back as stored state.
	repo.state = rowsToState(*repo.rows)

	resp, err := svc.GetSurveyData(context.Background(), accountID)
	if err != nil {
		t.Fatalf("GetSurveyData: %v", err)
	}
	if resp.Profile.Age != 31 {
		t.Errorf("profile view wrong: %+v", resp.Profile)
	}
	if len(resp.FoodPrefs.Allergies) != 2 {
		t.Errorf("expected 2 allergies in view, got %v", resp.FoodPrefs.Allergies)
	}
	if resp.FitnessLevel.ExerciseFrequency != "twice a week" {
		t.Errorf("fitness view wrong: %+v", resp.FitnessLevel)
	}
	if resp.DailyHabits == nil || resp.DailyHabits.MealsPerDay != "3" {
		t.Errorf("daily habits view wrong: %+v", resp.DailyHabits)
	}
}

func rowsToState(rows repositories.SurveyRows) *repositories.SurveyState {
	state := &repositories.SurveyState{
		Profile:            rows.Profile,
		FoodPreferences:    rows.FoodPreferences,
		AvoidedFoods:       rows.AvoidedFoods,
		PreferredExercises: rows.PreferredExercises,
		Equipment:          rows.Equipment,
	}
	if len(rows.FitnessConditions) > 0 {
		state.FitnessCondition = &rows.FitnessConditions[0]
	}
	if len(rows.MedicalHistories) > 0 {
		state.MedicalHistory = &rows.MedicalHistories[0]
	}
	if len(rows.DailyHabits) > 0 {
		state.DailyHabits = &rows.DailyHabits[0]
	}
	return state
}

func TestGetSurveyData_NoProfile(t *testing.T) {
	svc := NewSurveyService(&fakeProfileRepo{}, zap.NewNop())

	_, err := svc.GetSurveyData(context.Background(), uuid.New())
	if !errors.Is(err, utils.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}
