package response_models

type GeneratedPlanResponse struct {
	PlanID      string `json:"plan_id"`
	RawTable    string `json:"raw_table"`
	GeneratedAt string `json:"generated_at"`
}

type MealPlanResponse struct {
	PlanID string        `json:"plan_id"`
	Days   []MealDayView `json:"days"`
}

type MealDayView struct {
	Date  string         `json:"date"`
	Meals []MealItemView `json:"meals"`
}

type MealItemView struct {
	MealType string  `json:"meal_type"`
	Dish     string  `json:"dish"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
	Calories float64 `json:"calories"`
}

type TrainingPlanResponse struct {
	PlanID string            `json:"plan_id"`
	Days   []TrainingDayView `json:"days"`
}

type TrainingDayView struct {
	Date      string         `json:"date"`
	DayType   string         `json:"day_type"`
	Exercises []ExerciseView `json:"exercises"`
}

type ExerciseView struct {
	Name  string `json:"name"`
	Sets  int    `json:"sets"`
	Reps  int    `json:"reps"`
	Rest  string `json:"rest"`
	Notes string `json:"notes"`
}
