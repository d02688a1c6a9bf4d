package response_models

type CatalogEntry struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

type ActivityLevelEntry struct {
	Key         string `json:"key"`
	Description string `json:"description"`
}

type CatalogsResponse struct {
	UserTypes        []CatalogEntry       `json:"user_types"`
	GoalTypes        []CatalogEntry       `json:"goal_types"`
	GoalStates       []CatalogEntry       `json:"goal_states"`
	PlanStates       []CatalogEntry       `json:"plan_states"`
	RoutineStates    []CatalogEntry       `json:"routine_states"`
	RestrictionTypes []CatalogEntry       `json:"restriction_types"`
	ActivityLevels   []ActivityLevelEntry `json:"activity_levels"`

	SuggestedDiets     []string `json:"suggested_diets"`
	SuggestedAllergies []string `json:"suggested_allergies"`
	SuggestedFavorites []string `json:"suggested_favorites"`
	SuggestedExercises []string `json:"suggested_exercises"`
	SuggestedEquipment []string `json:"suggested_equipment"`
}
