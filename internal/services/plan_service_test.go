package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"evoluciona/internal/llm"
	"evoluciona/internal/models/db_models"
	"evoluciona/internal/repositories"
	"evoluciona/pkg/utils"
)

type fakeProfileRepo struct {
	state        *repositories.SurveyState
	rows         *repositories.SurveyRows
	restrictions []db_models.ProfileRestriction
	err          error
}

func (f *fakeProfileRepo) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*db_models.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.state == nil {
		return nil, nil
	}
	return &f.state.Profile, nil
}

func (f *fakeProfileRepo) SyncSurvey(ctx context.Context, accountID uuid.UUID, rows repositories.SurveyRows) error {
	f.rows = &rows
	return f.err
}

func (f *fakeProfileRepo) LoadSurveyState(ctx context.Context, accountID uuid.UUID) (*repositories.SurveyState, error) {
	return f.state, f.err
}

func (f *fakeProfileRepo) InsertRestriction(ctx context.Context, restriction *db_models.ProfileRestriction) error {
	if f.err != nil {
		return f.err
	}
	restriction.ID = uuid.New()
	f.restrictions = append(f.restrictions, *restriction)
	return nil
}

func (f *fakeProfileRepo) ListRestrictions(ctx context.Context, profileID uuid.UUID) ([]db_models.ProfileRestriction, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.ProfileRestriction
	for _, r := range f.restrictions {
		if r.ProfileID == profileID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeProfileRepo) FindRestrictionByID(ctx context.Context, id uuid.UUID) (*db_models.ProfileRestriction, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.restrictions {
		if f.restrictions[i].ID == id {
			return &f.restrictions[i], nil
		}
	}
	return nil, nil
}

func (f *fakeProfileRepo) DeleteRestriction(ctx context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.restrictions {
		if f.restrictions[i].ID == id {
			f.restrictions = append(f.restrictions[:i], f.restrictions[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakePlanRepo struct {
	dietPlans    []*db_models.DietPlan
	routinePlans []*db_models.RoutinePlan
}

func (f *fakePlanRepo) InsertDietPlan(ctx context.Context, plan *db_models.DietPlan) error {
	plan.ID = uuid.New()
	f.dietPlans = append(f.dietPlans, plan)
	return nil
}

func (f *fakePlanRepo) InsertRoutinePlan(ctx context.Context, plan *db_models.RoutinePlan) error {
	plan.ID = uuid.New()
	f.routinePlans = append(f.routinePlans, plan)
	return nil
}

func (f *fakePlanRepo) LatestDietPlan(ctx context.Context, accountID uuid.UUID) (*db_models.DietPlan, error) {
	if len(f.dietPlans) == 0 {
		return nil, nil
	}
	return f.dietPlans[len(f.dietPlans)-1], nil
}

func (f *fakePlanRepo) LatestRoutinePlan(ctx context.Context, accountID uuid.UUID) (*db_models.RoutinePlan, error) {
	if len(f.routinePlans) == 0 {
		return nil, nil
	}
	return f.routinePlans[len(f.routinePlans)-1], nil
}

type fakeLLM struct {
	response string
	err      error
	lastReq  llm.GenerateRequest
}

func (f *fakeLLM) GenerateText(ctx context.Context, req llm.GenerateRequest) (string, error) {
	f.lastReq = req
	return f.response, f.err
}

func testSurveyState() *repositories.SurveyState {
	return &repositories.SurveyState{
		Profile: db_models.Profile{
			Gender:        "male",
			Age:           32,
			WeightKg:      78,
			HeightCm:      181,
			ActivityLevel: "moderate",
			PrimaryGoal:   "build muscle",
		},
		FoodPreferences: []db_models.FoodPreference{
			{Kind: "diet", Value: "high protein"},
			{Kind: "allergy", Value: "peanuts"},
		},
		FitnessCondition: &db_models.FitnessCondition{
			ExerciseFrequency: "4 times a week",
			AvailableTime:     "60 minutes",
		},
	}
}

const trainingTable = `| Fecha | Tipo de día | Ejercicio | Series | Repeticiones | Descanso | Notas |
|-------|-------------|-----------|--------|--------------|----------|-------|
| 01-03-2025 | fuerza | Sentadilla | 2 | 6 | 90s | controla la bajada |
| 01-03-2025 | fuerza | Press banca | 4 | 10 | 90s | - |
| 02-03-2025 | descanso |  |  |  |  |  |`

const mealTable = `| Fecha | Comida | Plato | Proteínas | Grasas | Carbohidratos | Kcal Totales |
|-------|--------|-------|-----------|--------|---------------|--------------|
| 01-03-2025 | Desayuno | Avena con fruta | 20 | 10 | 60 | 420 |
| 01-03-2025 | Almuerzo | Pollo con arroz | 45 | 12 | 70 | 580 |`

func newTestPlanService(state *repositories.SurveyState, client *fakeLLM) (*PlanService, *fakePlanRepo) {
	planRepo := &fakePlanRepo{}
	svc := NewPlanService(&fakeProfileRepo{state: state}, planRepo, client, zap.NewNop()).(*PlanService)
	return svc, planRepo
}

func TestGenerateTrainingPlan_PersistsParsedDays(t *testing.T) {
	client := &fakeLLM{response: trainingTable}
	svc, planRepo := newTestPlanService(testSurveyState(), client)

	resp, err := svc.GenerateTrainingPlan(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("GenerateTrainingPlan: %v", err)
	}
	if resp.PlanID == "" || resp.RawTable != trainingTable {
		t.Errorf("unexpected response: %+v", resp)
	}

	if len(planRepo.routinePlans) != 1 {
		t.Fatalf("expected 1 persisted plan, got %d", len(planRepo.routinePlans))
	}
	plan := planRepo.routinePlans[0]
	if len(plan.Days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(plan.Days))
	}
	if len(plan.Days[0].Exercises) != 2 {
		t.Errorf("expected 2 exercises on day one, got %d", len(plan.Days[0].Exercises))
	}
	// Strength minimums apply before persistence.
	if plan.Days[0].Exercises[0].Sets != 3 || plan.Days[0].Exercises[0].Reps != 8 {
		t.Errorf("strength floor not applied: %+v", plan.Days[0].Exercises[0])
	}
	if plan.Days[1].DayType != "descanso" || len(plan.Days[1].Exercises) != 0 {
		t.Errorf("rest day mishandled: %+v", plan.Days[1])
	}
}

func TestGenerateMealPlan_PersistsParsedDays(t *testing.T) {
	client := &fakeLLM{response: mealTable}
	svc, planRepo := newTestPlanService(testSurveyState(), client)

	if _, err := svc.GenerateMealPlan(context.Background(), uuid.New()); err != nil {
		t.Fatalf("GenerateMealPlan: %v", err)
	}

	if len(planRepo.dietPlans) != 1 {
		t.Fatalf("expected 1 persisted plan, got %d", len(planRepo.dietPlans))
	}
	plan := planRepo.dietPlans[0]
	if len(plan.Days) != 1 || len(plan.Days[0].Meals) != 2 {
		t.Fatalf("unexpected plan shape: %+v", plan)
	}
	if plan.Days[0].Meals[1].Calories != 580 {
		t.Errorf("macros not carried over: %+v", plan.Days[0].Meals[1])
	}
}

func TestGenerateMealPlan_NoProfile(t *testing.T) {
	svc, planRepo := newTestPlanService(nil, &fakeLLM{response: mealTable})

	_, err := svc.GenerateMealPlan(context.Background(), uuid.New())
	if !errors.Is(err, utils.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
	if len(planRepo.dietPlans) != 0 {
		t.Error("nothing may be persisted without a profile")
	}
}

func TestGenerateTrainingPlan_ModelFailurePersistsNothing(t *testing.T) {
	client := &fakeLLM{err: errors.New("rate limited")}
	svc, planRepo := newTestPlanService(testSurveyState(), client)

	_, err := svc.GenerateTrainingPlan(context.Background(), uuid.New())
	if !errors.Is(err, utils.ErrPlanGeneration) {
		t.Fatalf("expected ErrPlanGeneration, got %v", err)
	}
	if len(planRepo.routinePlans) != 0 {
		t.Error("no plan may be persisted when the model call fails")
	}
}

func TestGenerateTrainingPlan_UnparsableOutputPersistsNothing(t *testing.T) {
	client := &fakeLLM{response: "Lo siento, no puedo generar el plan."}
	svc, planRepo := newTestPlanService(testSurveyState(), client)

	_, err := svc.GenerateTrainingPlan(context.Background(), uuid.New())
	if !errors.Is(err, utils.ErrPlanParse) {
		t.Fatalf("expected ErrPlanParse, got %v", err)
	}
	if len(planRepo.routinePlans) != 0 {
		t.Error("no plan may be persisted when parsing fails")
	}
}

func TestBuildMealPrompt_CarriesWireContract(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	prompt := buildMealPrompt(testSurveyState(), now)

	for _, want := range []string{
		"01-03-2025", // start date, dd-mm-yyyy
		"31-03-2025", // start + 30 days
		"Fecha | Comida | Plato | Proteínas | Grasas | Carbohidratos | Kcal Totales",
		"Desayuno, Snack 1, Almuerzo, Snack 2 y Cena",
		"peanuts",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildTrainingPrompt_CarriesWireContract(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	prompt := buildTrainingPrompt(testSurveyState(), now)

	for _, want := range []string{
		"Fecha | Tipo de día | Ejercicio | Series | Repeticiones | Descanso | Notas",
		"5 días de entrenamiento y 2 días de descanso",
		"60 minutes",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestGetMealPlan_NoPlan(t *testing.T) {
	svc, _ := newTestPlanService(testSurveyState(), &fakeLLM{})

	_, err := svc.GetMealPlan(context.Background(), uuid.New())
	if !errors.Is(err, utils.ErrPlanNotFound) {
		t.Fatalf("expected ErrPlanNotFound, got %v", err)
	}
}
