package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"evoluciona/internal/models/db_models"
	"evoluciona/internal/repositories"
	"evoluciona/pkg/utils"
)

func healthServiceFor(profile *db_models.Profile) HealthServiceInterface {
	repo := &fakeProfileRepo{}
	if profile != nil {
		repo.state = &repositories.SurveyState{Profile: *profile}
	}
	return NewHealthService(repo)
}

func TestGetHealthMetrics_Male(t *testing.T) {
	svc := healthServiceFor(&db_models.Profile{
		Gender:   "male",
		Age:      30,
		WeightKg: 80,
		HeightCm: 180,
	})

	metrics, err := svc.GetHealthMetrics(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("GetHealthMetrics: %v", err)
	}

	// Mifflin-St Jeor: 10*80 + 6.25*180 - 5*30 + 5
	if metrics.BasalMetabolicRate != 1780.0 {
		t.Errorf("BMR = %v, want 1780.0", metrics.BasalMetabolicRate)
	}
	// Devine: 50 + 2.3 * (180cm in inches - 60)
	if metrics.IdealWeightKg != 75.0 {
		t.Errorf("ideal weight = %v, want 75.0", metrics.IdealWeightKg)
	}
	// Tanaka: 208 - 0.7*30
	if metrics.MaxHeartRate != 187 {
		t.Errorf("max heart rate = %v, want 187", metrics.MaxHeartRate)
	}
	if metrics.BMI.Value != 24.7 || metrics.BMI.Category != "normal" {
		t.Errorf("BMI = %+v, want 24.7 normal", metrics.BMI)
	}
}

func TestGetHealthMetrics_Female(t *testing.T) {
	svc := healthServiceFor(&db_models.Profile{
		Gender:   "female",
		Age:      25,
		WeightKg: 60,
		HeightCm: 165,
	})

	metrics, err := svc.GetHealthMetrics(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("GetHealthMetrics: %v", err)
	}

	// Mifflin-St Jeor: 10*60 + 6.25*165 - 5*25 - 161 = 1345.25
	if metrics.BasalMetabolicRate != 1345.3 {
		t.Errorf("BMR = %v, want 1345.3", metrics.BasalMetabolicRate)
	}
	if metrics.BMI.Category != "normal" {
		t.Errorf("BMI category = %q, want normal", metrics.BMI.Category)
	}
}

func TestGetHealthMetrics_BMICategories(t *testing.T) {
	cases := []struct {
		weightKg float64
		heightCm float64
		want     string
	}{
		{45, 170, "underweight"},
		{70, 170, "normal"},
		{85, 170, "overweight"},
		{100, 170, "obesity I"},
		{115, 170, "obesity II"},
		{130, 170, "obesity III"},
	}

	for _, tc := range cases {
		svc := healthServiceFor(&db_models.Profile{
			Gender:   "male",
			Age:      40,
			WeightKg: tc.weightKg,
			HeightCm: tc.heightCm,
		})
		metrics, err := svc.GetHealthMetrics(context.Background(), uuid.New())
		if err != nil {
			t.Fatalf("GetHealthMetrics(%v kg): %v", tc.weightKg, err)
		}
		if metrics.BMI.Category != tc.want {
			t.Errorf("%v kg at %v cm: category %q, want %q", tc.weightKg, tc.heightCm, metrics.BMI.Category, tc.want)
		}
	}
}

func TestGetHealthMetrics_NoProfile(t *testing.T) {
	svc := healthServiceFor(nil)

	_, err := svc.GetHealthMetrics(context.Background(), uuid.New())
	if !errors.Is(err, utils.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestGetHealthMetrics_IncompleteProfile(t *testing.T) {
	svc := healthServiceFor(&db_models.Profile{Gender: "male", Age: 30})

	_, err := svc.GetHealthMetrics(context.Background(), uuid.New())
	if !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
