package planparser

import (
	"strings"
	"testing"
	"time"
)

const trainingHeader = "| Fecha | Tipo de día | Ejercicio | Series | Repeticiones | Descanso | Notas |"

const mealHeader = "| Fecha | Comida | Plato | Proteínas | Grasas | Carbohidratos | Kcal Totales |"

func trainingTable(rows ...string) string {
	lines := append([]string{
		trainingHeader,
		"|-------|-------------|-----------|--------|--------------|----------|-------|",
	}, rows...)
	return strings.Join(lines, "\n")
}

func mealTable(rows ...string) string {
	lines := append([]string{
		mealHeader,
		"|-------|--------|-------|-----------|--------|---------------|--------------|",
	}, rows...)
	return strings.Join(lines, "\n")
}

func mustDate(t *testing.T, iso string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", iso)
	if err != nil {
		t.Fatalf("bad test date %q: %v", iso, err)
	}
	return d
}

func TestParseTrainingTable_GroupsRowsByDate(t *testing.T) {
	text := trainingTable(
		"| 01-01-2025 | Cardio | Burpees | 4 | 15 | 60s | - |",
		"| 01-01-2025 | Cardio | Mountain climbers | 4 | 20 | 45s | - |",
		"| 02-01-2025 | Cardio | Jumping jacks | 3 | 30 | 30s | - |",
		"| 03-01-2025 | Descanso |  |  |  |  | - |",
	)

	days, err := ParseTrainingTable(text)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}

	if !days[0].Date.Equal(mustDate(t, "2025-01-01")) {
		t.Errorf("day 0 date = %v", days[0].Date)
	}
	if len(days[0].Exercises) != 2 {
		t.Fatalf("day 0: expected 2 exercises, got %d", len(days[0].Exercises))
	}
	if days[0].Exercises[0].Name != "Burpees" || days[0].Exercises[1].Name != "Mountain climbers" {
		t.Errorf("day 0 exercises out of order: %+v", days[0].Exercises)
	}
	if days[2].DayType != "Descanso" || len(days[2].Exercises) != 0 {
		t.Errorf("rest day should keep its label and stay empty: %+v", days[2])
	}
}

func TestParseTrainingTable_StrengthFloors(t *testing.T) {
	text := trainingTable(
		"| 01-01-2025 | Fuerza | Sentadilla | 2 | 6 | 90s | - |",
	)

	days, err := ParseTrainingTable(text)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(days))
	}
	ex := days[0].Exercises[0]
	if ex.Name != "Sentadilla" {
		t.Errorf("name = %q", ex.Name)
	}
	if ex.Sets != 3 || ex.Reps != 8 {
		t.Errorf("floors not applied: sets=%d reps=%d, want 3/8", ex.Sets, ex.Reps)
	}
}

func TestParseTrainingTable_FloorsOnlyForStrengthDays(t *testing.T) {
	text := trainingTable(
		"| 01-01-2025 | Cardio | Sprints | 2 | 6 | 90s | - |",
	)

	days, err := ParseTrainingTable(text)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	ex := days[0].Exercises[0]
	if ex.Sets != 2 || ex.Reps != 6 {
		t.Errorf("cardio day must keep parsed values, got sets=%d reps=%d", ex.Sets, ex.Reps)
	}
}

func TestParseTrainingTable_NonNumericSetsDefaultToZero(t *testing.T) {
	text := trainingTable(
		"| 01-01-2025 | Cardio | Plancha | — | 30s | 60s | isométrico |",
	)

	days, err := ParseTrainingTable(text)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	ex := days[0].Exercises[0]
	if ex.Sets != 0 || ex.Reps != 0 {
		t.Errorf("non-numeric values must parse to zero, got sets=%d reps=%d", ex.Sets, ex.Reps)
	}
}

func TestParseTrainingTable_SingleDayFiveExercises(t *testing.T) {
	text := trainingTable(
		"| 05-03-2025 | Fuerza | Sentadilla | 4 | 10 | 90s | - |",
		"| 05-03-2025 | Fuerza | Peso muerto | 4 | 8 | 120s | - |",
		"| 05-03-2025 | Fuerza | Press banca | 4 | 10 | 90s | - |",
		"| 05-03-2025 | Fuerza | Remo | 3 | 12 | 60s | - |",
		"| 05-03-2025 | Fuerza | Press militar | 3 | 10 | 90s | - |",
	)

	days, err := ParseTrainingTable(text)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(days))
	}
	if len(days[0].Exercises) != 5 {
		t.Fatalf("expected 5 exercises, got %d", len(days[0].Exercises))
	}
}

func TestParseTrainingTable_ReorderedColumns(t *testing.T) {
	text := strings.Join([]string{
		"| Ejercicio | Fecha | Series | Tipo de día | Repeticiones | Descanso | Notas |",
		"|-----------|-------|--------|-------------|--------------|----------|-------|",
		"| Sentadilla | 01-01-2025 | 5 | Fuerza | 10 | 90s | - |",
	}, "\n")

	days, err := ParseTrainingTable(text)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	ex := days[0].Exercises[0]
	if ex.Name != "Sentadilla" || ex.Sets != 5 || ex.Reps != 10 {
		t.Errorf("columns must be resolved by name, got %+v", ex)
	}
}

func TestParseTrainingTable_HeaderMissingIsFatal(t *testing.T) {
	_, err := ParseTrainingTable("I cannot generate a plan right now, sorry.")
	if err == nil {
		t.Fatal("expected error when no header line exists")
	}
}

func TestParseTrainingTable_MalformedRowsAreSkipped(t *testing.T) {
	text := trainingTable(
		"| not-a-date | Fuerza | Sentadilla | 3 | 10 | 90s | - |",
		"| 01-01-2025 | Fuerza | Peso muerto | 3 | 8 | 120s | - |",
		"garbage line without pipes",
	)

	days, err := ParseTrainingTable(text)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(days) != 1 || len(days[0].Exercises) != 1 {
		t.Fatalf("only the valid row should survive, got %+v", days)
	}
}

func TestParseMealTable_GroupsAndParsesMacros(t *testing.T) {
	text := mealTable(
		"| 01-01-2025 | Desayuno | Avena con fruta | 12.50 | 6.00 | 45.00 | 290.00 |",
		"| 01-01-2025 | Almuerzo | Pollo con arroz | 35.00 | 10.50 | 55.00 | 480.50 |",
		"| 02-01-2025 | Desayuno | Tortilla | 18.00 | 14.00 | 2.00 | 210.00 |",
	)

	days, err := ParseMealTable(text)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}
	if len(days[0].Meals) != 2 || len(days[1].Meals) != 1 {
		t.Fatalf("unexpected meal grouping: %+v", days)
	}
	m := days[0].Meals[1]
	if m.MealType != "Almuerzo" || m.Dish != "Pollo con arroz" {
		t.Errorf("meal fields wrong: %+v", m)
	}
	if m.Protein != 35 || m.Fat != 10.5 || m.Carbs != 55 || m.Calories != 480.5 {
		t.Errorf("macros wrong: %+v", m)
	}
}

func TestParseMealTable_NonNumericMacroDropsRow(t *testing.T) {
	text := mealTable(
		"| 01-01-2025 | Desayuno | Avena | 12.5 | 6.0 | 45.0 | 290.0 |",
		"| 01-01-2025 | Almuerzo | Pollo | mucho | 10.0 | 55.0 | 480.0 |",
		"| 01-01-2025 | Cena | Pescado | 28.0 | 9.0 | 20.0 | 310.0 |",
	)

	days, err := ParseMealTable(text)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(days))
	}
	if len(days[0].Meals) != 2 {
		t.Fatalf("row with non-numeric macro must be dropped, got %d meals", len(days[0].Meals))
	}
	for _, m := range days[0].Meals {
		if m.Dish == "Pollo" {
			t.Errorf("dropped row leaked into output: %+v", m)
		}
	}
}

func TestParseMealTable_DayWithOnlyBadMacrosStillEmitted(t *testing.T) {
	text := mealTable(
		"| 01-01-2025 | Desayuno | Avena | 12.5 | 6.0 | 45.0 | 290.0 |",
		"| 02-01-2025 | Desayuno | Tortilla | mucho | poco | 2.0 | 210.0 |",
		"| 02-01-2025 | Cena | Sopa | n/a | 5.0 | 20.0 | 160.0 |",
		"| 03-01-2025 | Cena | Pescado | 28.0 | 9.0 | 20.0 | 310.0 |",
	)

	days, err := ParseMealTable(text)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}
	if len(days[1].Meals) != 0 {
		t.Fatalf("day with no parseable rows must be empty, got %d meals", len(days[1].Meals))
	}
	if !days[1].Date.Equal(mustDate(t, "2025-01-02")) {
		t.Errorf("empty day has wrong date: %v", days[1].Date)
	}
	if len(days[0].Meals) != 1 || len(days[2].Meals) != 1 {
		t.Errorf("neighboring days affected: %+v", days)
	}
}

func TestParseMealTable_HeaderMissingIsFatal(t *testing.T) {
	if _, err := ParseMealTable("no table here"); err == nil {
		t.Fatal("expected error when header is absent")
	}
}

func TestParseMealTable_LastDayIsFlushed(t *testing.T) {
	// 30 distinct dates, one meal each: the final group must be emitted too.
	var rows []string
	base := mustDate(t, "2025-01-01")
	for i := 0; i < 30; i++ {
		d := base.AddDate(0, 0, i).Format("02-01-2006")
		rows = append(rows, "| "+d+" | Cena | Sopa | 10.0 | 5.0 | 20.0 | 160.0 |")
	}

	days, err := ParseMealTable(mealTable(rows...))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(days) != 30 {
		t.Fatalf("expected 30 days, got %d", len(days))
	}
	if !days[29].Date.Equal(base.AddDate(0, 0, 29)) {
		t.Errorf("last day has wrong date: %v", days[29].Date)
	}
}
