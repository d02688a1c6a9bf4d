package services

import (
	"context"
	"math"
	"strings"

	"github.com/google/uuid"

	"evoluciona/internal/models/response_models"
	"evoluciona/internal/repositories"
	"evoluciona/pkg/utils"
)

type HealthServiceInterface interface {
	// GetHealthMetrics derives BMR, ideal weight, maximum heart rate and
	// BMI from the account's stored profile.
	GetHealthMetrics(ctx context.Context, accountID uuid.UUID) (*response_models.HealthMetricsResponse, error)
}

type HealthService struct {
	profileRepo repositories.ProfileRepository
}

func NewHealthService(profileRepo repositories.ProfileRepository) HealthServiceInterface {
	return &HealthService{profileRepo: profileRepo}
}

func (h *HealthService) GetHealthMetrics(ctx context.Context, accountID uuid.UUID) (*response_models.HealthMetricsResponse, error) {
	profile, err := h.profileRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrProfileNotFound
	}
	if profile.WeightKg <= 0 || profile.HeightCm <= 0 || profile.Age <= 0 {
		return nil, utils.ErrInvalidInput
	}

	male := strings.EqualFold(profile.Gender, "male")

	return &response_models.HealthMetricsResponse{
		BasalMetabolicRate: round1(basalMetabolicRate(profile.WeightKg, profile.HeightCm, profile.Age, male)),
		IdealWeightKg:      round1(idealWeightKg(profile.HeightCm, male)),
		MaxHeartRate:       maxHeartRate(profile.Age),
		BMI:                bodyMassIndex(profile.WeightKg, profile.HeightCm),
	}, nil
}

// basalMetabolicRate uses the Mifflin-St Jeor equation.
func basalMetabolicRate(weightKg, heightCm float64, age int, male bool) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if male {
		return bmr + 5
	}
	return bmr - 161
}

// idealWeightKg uses the Devine formula over the height in inches above
// five feet.
func idealWeightKg(heightCm float64, male bool) float64 {
	inchesOverFiveFeet := heightCm/2.54 - 60
	if inchesOverFiveFeet < 0 {
		inchesOverFiveFeet = 0
	}
	if male {
		return 50 + 2.3*inchesOverFiveFeet
	}
	return 45.5 + 2.3*inchesOverFiveFeet
}

// maxHeartRate uses the Tanaka estimate, rounded to the nearest beat.
func maxHeartRate(age int) int {
	return int(math.Round(208 - 0.7*float64(age)))
}

func bodyMassIndex(weightKg, heightCm float64) response_models.BMIResult {
	heightM := heightCm / 100
	value := weightKg / (heightM * heightM)

	var category string
	switch {
	case value < 18.5:
		category = "underweight"
	case value < 27:
		category = "normal"
	case value < 32:
		category = "overweight"
	case value < 37:
		category = "obesity I"
	case value < 42:
		category = "obesity II"
	default:
		category = "obesity III"
	}

	return response_models.BMIResult{Value: round1(value), Category: category}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
