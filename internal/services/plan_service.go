package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"evoluciona/internal/llm"
	"evoluciona/internal/models/db_models"
	"evoluciona/internal/models/response_models"
	"evoluciona/internal/planparser"
	"evoluciona/internal/repositories"
	"evoluciona/pkg/utils"
)

const (
	planDateLayout = "02-01-2006"
	planHorizon    = 30 // days covered by one generated plan

	mealPlanMaxTokens     = 14000
	trainingPlanMaxTokens = 8000
)

type PlanServiceInterface interface {
	// GenerateMealPlan builds a prompt from the account's survey state,
	// asks the model for a 30-day meal table, parses it and persists the
	// result as a new plan. Nothing is persisted when the model call or
	// the parse fails.
	GenerateMealPlan(ctx context.Context, accountID uuid.UUID) (*response_models.GeneratedPlanResponse, error)
	GenerateTrainingPlan(ctx context.Context, accountID uuid.UUID) (*response_models.GeneratedPlanResponse, error)

	GetMealPlan(ctx context.Context, accountID uuid.UUID) (*response_models.MealPlanResponse, error)
	GetTrainingPlan(ctx context.Context, accountID uuid.UUID) (*response_models.TrainingPlanResponse, error)
}

type PlanService struct {
	profileRepo repositories.ProfileRepository
	planRepo    repositories.PlanRepository
	llmClient   llm.ClientInterface
	logger      *zap.Logger
}

func NewPlanService(
	profileRepo repositories.ProfileRepository,
	planRepo repositories.PlanRepository,
	llmClient llm.ClientInterface,
	logger *zap.Logger,
) PlanServiceInterface {
	return &PlanService{
		profileRepo: profileRepo,
		planRepo:    planRepo,
		llmClient:   llmClient,
		logger:      logger,
	}
}

func (p *PlanService) GenerateMealPlan(ctx context.Context, accountID uuid.UUID) (*response_models.GeneratedPlanResponse, error) {
	state, err := p.profileRepo.LoadSurveyState(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if state == nil {
		return nil, utils.ErrProfileNotFound
	}

	raw, err := p.llmClient.GenerateText(ctx, llm.GenerateRequest{
		SystemPrompt: mealSystemPrompt,
		UserPrompt:   buildMealPrompt(state, time.Now()),
		MaxTokens:    mealPlanMaxTokens,
	})
	if err != nil {
		p.logger.Error("meal plan generation failed", zap.String("account_id", accountID.String()), zap.Error(err))
		return nil, utils.ErrPlanGeneration
	}

	days, err := planparser.ParseMealTable(raw)
	if err != nil {
		p.logger.Error("meal plan parse failed", zap.String("account_id", accountID.String()), zap.Error(err))
		return nil, utils.ErrPlanParse
	}

	plan := &db_models.DietPlan{AccountID: accountID}
	for _, day := range days {
		mealDay := db_models.MealDay{Date: day.Date}
		for _, meal := range day.Meals {
			mealDay.Meals = append(mealDay.Meals, db_models.MealDetail{
				MealType: meal.MealType,
				Dish:     meal.Dish,
				Protein:  meal.Protein,
				Fat:      meal.Fat,
				Carbs:    meal.Carbs,
				Calories: meal.Calories,
			})
		}
		plan.Days = append(plan.Days, mealDay)
	}
	if err := p.planRepo.InsertDietPlan(ctx, plan); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.GeneratedPlanResponse{
		PlanID:      plan.ID.String(),
		RawTable:    raw,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (p *PlanService) GenerateTrainingPlan(ctx context.Context, accountID uuid.UUID) (*response_models.GeneratedPlanResponse, error) {
	state, err := p.profileRepo.LoadSurveyState(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if state == nil {
		return nil, utils.ErrProfileNotFound
	}

	raw, err := p.llmClient.GenerateText(ctx, llm.GenerateRequest{
		SystemPrompt: trainingSystemPrompt,
		UserPrompt:   buildTrainingPrompt(state, time.Now()),
		MaxTokens:    trainingPlanMaxTokens,
	})
	if err != nil {
		p.logger.Error("training plan generation failed", zap.String("account_id", accountID.String()), zap.Error(err))
		return nil, utils.ErrPlanGeneration
	}

	days, err := planparser.ParseTrainingTable(raw)
	if err != nil {
		p.logger.Error("training plan parse failed", zap.String("account_id", accountID.String()), zap.Error(err))
		return nil, utils.ErrPlanParse
	}

	plan := &db_models.RoutinePlan{AccountID: accountID}
	for _, day := range days {
		trainingDay := db_models.TrainingDay{Date: day.Date, DayType: day.DayType}
		for _, ex := range day.Exercises {
			trainingDay.Exercises = append(trainingDay.Exercises, db_models.ExerciseDetail{
				Name:  ex.Name,
				Sets:  ex.Sets,
				Reps:  ex.Reps,
				Rest:  ex.Rest,
				Notes: ex.Notes,
			})
		}
		plan.Days = append(plan.Days, trainingDay)
	}
	if err := p.planRepo.InsertRoutinePlan(ctx, plan); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.GeneratedPlanResponse{
		PlanID:      plan.ID.String(),
		RawTable:    raw,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (p *PlanService) GetMealPlan(ctx context.Context, accountID uuid.UUID) (*response_models.MealPlanResponse, error) {
	plan, err := p.planRepo.LatestDietPlan(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	resp := &response_models.MealPlanResponse{PlanID: plan.ID.String()}
	for _, day := range plan.Days {
		view := response_models.MealDayView{Date: day.Date.Format("2006-01-02")}
		for _, meal := range day.Meals {
			view.Meals = append(view.Meals, response_models.MealItemView{
				MealType: meal.MealType,
				Dish:     meal.Dish,
				Protein:  meal.Protein,
				Fat:      meal.Fat,
				Carbs:    meal.Carbs,
				Calories: meal.Calories,
			})
		}
		resp.Days = append(resp.Days, view)
	}
	return resp, nil
}

func (p *PlanService) GetTrainingPlan(ctx context.Context, accountID uuid.UUID) (*response_models.TrainingPlanResponse, error) {
	plan, err := p.planRepo.LatestRoutinePlan(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	resp := &response_models.TrainingPlanResponse{PlanID: plan.ID.String()}
	for _, day := range plan.Days {
		view := response_models.TrainingDayView{
			Date:    day.Date.Format("2006-01-02"),
			DayType: day.DayType,
		}
		for _, ex := range day.Exercises {
			view.Exercises = append(view.Exercises, response_models.ExerciseView{
				Name:  ex.Name,
				Sets:  ex.Sets,
				Reps:  ex.Reps,
				Rest:  ex.Rest,
				Notes: ex.Notes,
			})
		}
		resp.Days = append(resp.Days, view)
	}
	return resp, nil
}

const mealSystemPrompt = "Eres un nutricionista profesional. Respondes únicamente con una tabla " +
	"en texto plano separada por el carácter |, sin explicaciones adicionales."

const trainingSystemPrompt = "Eres un entrenador personal profesional. Respondes únicamente con una " +
	"tabla en texto plano separada por el carácter |, sin explicaciones adicionales."

// buildMealPrompt renders the user prompt for the meal table. The column
// names and the dd-mm-yyyy dates are a wire contract with the table parser.
func buildMealPrompt(state *repositories.SurveyState, now time.Time) string {
	start := now
	end := now.AddDate(0, 0, planHorizon)

	var b strings.Builder
	fmt.Fprintf(&b, "Genera un plan de alimentación diario desde el %s hasta el %s para la siguiente persona:\n",
		start.Format(planDateLayout), end.Format(planDateLayout))
	writeProfileContext(&b, state)

	diets, allergies, favorites := splitFoodPreferences(state.FoodPreferences)
	writeList(&b, "Tipo de dieta", diets)
	writeList(&b, "Alergias alimentarias", allergies)
	writeList(&b, "Alimentos favoritos", favorites)
	for _, avoided := range state.AvoidedFoods {
		fmt.Fprintf(&b, "Alimentos a evitar: %s\n", avoided.Description)
	}

	b.WriteString("\nIncluye exactamente 5 comidas por día: Desayuno, Snack 1, Almuerzo, Snack 2 y Cena.\n")
	b.WriteString("Devuelve únicamente una tabla con las columnas:\n")
	b.WriteString("Fecha | Comida | Plato | Proteínas | Grasas | Carbohidratos | Kcal Totales\n")
	b.WriteString("Las fechas deben ir en formato dd-mm-yyyy y los macronutrientes en gramos, solo números.\n")
	return b.String()
}

func buildTrainingPrompt(state *repositories.SurveyState, now time.Time) string {
	start := now
	end := now.AddDate(0, 0, planHorizon)

	var b strings.Builder
	fmt.Fprintf(&b, "Genera un plan de entrenamiento semanal desde el %s hasta el %s para la siguiente persona:\n",
		start.Format(planDateLayout), end.Format(planDateLayout))
	writeProfileContext(&b, state)

	if state.FitnessCondition != nil {
		fmt.Fprintf(&b, "Frecuencia de ejercicio actual: %s\n", state.FitnessCondition.ExerciseFrequency)
		fmt.Fprintf(&b, "Tiempo disponible por sesión: %s\n", state.FitnessCondition.AvailableTime)
	}
	var exercises, equipment []string
	for _, ex := range state.PreferredExercises {
		exercises = append(exercises, ex.Kind)
	}
	for _, eq := range state.Equipment {
		equipment = append(equipment, eq.Name)
	}
	writeList(&b, "Ejercicios preferidos", exercises)
	writeList(&b, "Equipamiento disponible", equipment)

	b.WriteString("\nCada semana debe tener 5 días de entrenamiento y 2 días de descanso.\n")
	b.WriteString("Cada día de entrenamiento incluye exactamente 5 ejercicios; los días de descanso llevan una sola fila con el ejercicio vacío.\n")
	b.WriteString("Devuelve únicamente una tabla con las columnas:\n")
	b.WriteString("Fecha | Tipo de día | Ejercicio | Series | Repeticiones | Descanso | Notas\n")
	b.WriteString("Las fechas deben ir en formato dd-mm-yyyy. El tipo de día es fuerza, cardio o descanso.\n")
	return b.String()
}

func writeProfileContext(b *strings.Builder, state *repositories.SurveyState) {
	p := state.Profile
	fmt.Fprintf(b, "Género: %s, edad: %d años, peso: %.1f kg, altura: %.1f cm.\n", p.Gender, p.Age, p.WeightKg, p.HeightCm)
	fmt.Fprintf(b, "Nivel de actividad: %s. Objetivo principal: %s", p.ActivityLevel, p.PrimaryGoal)
	if p.GoalTimeframe != "" {
		fmt.Fprintf(b, " en un plazo de %s", p.GoalTimeframe)
	}
	b.WriteString(".\n")
}

func writeList(b *strings.Builder, label string, values []string) {
	if len(values) == 0 {
		return
	}
	fmt.Fprintf(b, "%s: %s\n", label, strings.Join(values, ", "))
}

func splitFoodPreferences(prefs []db_models.FoodPreference) (diets, allergies, favorites []string) {
	for _, pref := range prefs {
		switch pref.Kind {
		case foodKindDiet:
			diets = append(diets, pref.Value)
		case foodKindAllergy:
			allergies = append(allergies, pref.Value)
		case foodKindFavorite:
			favorites = append(favorites, pref.Value)
		}
	}
	return diets, allergies, favorites
}
