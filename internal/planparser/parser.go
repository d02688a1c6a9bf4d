// Package planparser turns the pipe-delimited tables returned by the LLM
// into typed day records. The column labels are part of the prompt contract
// and arrive in Spanish; column order is not guaranteed, so every column is
// located by name in the header line.
package planparser

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const tableDateLayout = "02-01-2006" // dd-mm-yyyy on the wire

// Training table columns.
const (
	colDate     = "Fecha"
	colDayType  = "Tipo de día"
	colExercise = "Ejercicio"
	colSets     = "Series"
	colReps     = "Repeticiones"
	colRest     = "Descanso"
	colNotes    = "Notas"
)

// Meal table columns.
const (
	colMealType = "Comida"
	colDish     = "Plato"
	colProtein  = "Proteínas"
	colFat      = "Grasas"
	colCarbs    = "Carbohidratos"
	colCalories = "Kcal Totales"
)

// Strength-day floors. Applied uniformly as domain policy, the LLM does not
// get to produce lower values.
const (
	minStrengthSets = 3
	minStrengthReps = 8
)

type TrainingDay struct {
	Date      time.Time
	DayType   string
	Exercises []Exercise
}

type Exercise struct {
	Name  string
	Sets  int
	Reps  int
	Rest  string
	Notes string
}

type MealDay struct {
	Date  time.Time
	Meals []Meal
}

type Meal struct {
	MealType string
	Dish     string
	Protein  float64
	Fat      float64
	Carbs    float64
	Calories float64
}

// ParseTrainingTable parses a training plan table. Rows sharing a date are
// grouped into one day; malformed rows are skipped. A missing header is the
// only fatal condition: it means the whole response is not a table and
// nothing should be persisted.
func ParseTrainingTable(text string) ([]TrainingDay, error) {
	lines := tableLines(text)

	cols, dataStart, err := resolveColumns(lines, []string{
		colDate, colDayType, colExercise, colSets, colReps, colRest, colNotes,
	})
	if err != nil {
		return nil, err
	}

	var (
		plan       []TrainingDay
		currentDay *TrainingDay
	)

	for _, line := range lines[dataStart:] {
		if !strings.Contains(line, "|") || strings.Contains(line, colDate) {
			continue
		}
		values := splitRow(line)
		if len(values) <= cols.max() {
			continue
		}

		date, err := time.Parse(tableDateLayout, values[cols.idx[colDate]])
		if err != nil {
			continue
		}

		if currentDay == nil || !date.Equal(currentDay.Date) {
			if currentDay != nil {
				plan = append(plan, *currentDay)
			}
			currentDay = &TrainingDay{
				Date:    date,
				DayType: values[cols.idx[colDayType]],
			}
		}

		name := values[cols.idx[colExercise]]
		if name == "" {
			continue
		}

		sets := atoiOrZero(values[cols.idx[colSets]])
		reps := atoiOrZero(values[cols.idx[colReps]])
		if strings.EqualFold(currentDay.DayType, "fuerza") {
			sets = max(sets, minStrengthSets)
			reps = max(reps, minStrengthReps)
		}

		currentDay.Exercises = append(currentDay.Exercises, Exercise{
			Name:  name,
			Sets:  sets,
			Reps:  reps,
			Rest:  values[cols.idx[colRest]],
			Notes: values[cols.idx[colNotes]],
		})
	}

	// Grouping is driven by date changes, so the last open day is never
	// flushed by the loop itself.
	if currentDay != nil {
		plan = append(plan, *currentDay)
	}
	return plan, nil
}

// ParseMealTable parses a meal plan table. Rows whose numeric fields do not
// parse are dropped without failing the rest of the table.
func ParseMealTable(text string) ([]MealDay, error) {
	lines := tableLines(text)

	cols, dataStart, err := resolveColumns(lines, []string{
		colDate, colMealType, colDish, colProtein, colFat, colCarbs, colCalories,
	})
	if err != nil {
		return nil, err
	}

	var (
		plan       []MealDay
		currentDay *MealDay
	)

	for _, line := range lines[dataStart:] {
		if !strings.Contains(line, "|") || strings.Contains(line, colDate) {
			continue
		}
		values := splitRow(line)
		if len(values) <= cols.max() {
			continue
		}

		date, err := time.Parse(tableDateLayout, values[cols.idx[colDate]])
		if err != nil {
			continue
		}

		// The day group opens as soon as the date changes, even when the
		// row itself turns out to be unusable. A date whose rows all fail
		// the numeric parse still yields a day with no meals.
		if currentDay == nil || !date.Equal(currentDay.Date) {
			if currentDay != nil {
				plan = append(plan, *currentDay)
			}
			currentDay = &MealDay{Date: date}
		}

		protein, err1 := strconv.ParseFloat(values[cols.idx[colProtein]], 64)
		fat, err2 := strconv.ParseFloat(values[cols.idx[colFat]], 64)
		carbs, err3 := strconv.ParseFloat(values[cols.idx[colCarbs]], 64)
		calories, err4 := strconv.ParseFloat(values[cols.idx[colCalories]], 64)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			continue
		}

		currentDay.Meals = append(currentDay.Meals, Meal{
			MealType: values[cols.idx[colMealType]],
			Dish:     values[cols.idx[colDish]],
			Protein:  protein,
			Fat:      fat,
			Carbs:    carbs,
			Calories: calories,
		})
	}

	if currentDay != nil {
		plan = append(plan, *currentDay)
	}
	return plan, nil
}

type columnSet struct {
	idx map[string]int
}

func (c columnSet) max() int {
	m := 0
	for _, i := range c.idx {
		if i > m {
			m = i
		}
	}
	return m
}

// resolveColumns finds the header line (first line carrying the date label)
// and maps every required column name to its position in the row split.
// Returns the index of the first data line.
func resolveColumns(lines []string, required []string) (columnSet, int, error) {
	headerAt := -1
	for i, line := range lines {
		if strings.Contains(line, colDate) && strings.Contains(line, "|") {
			headerAt = i
			break
		}
	}
	if headerAt == -1 {
		return columnSet{}, 0, fmt.Errorf("plan table header not found")
	}

	headers := splitRow(lines[headerAt])
	cols := columnSet{idx: make(map[string]int, len(required))}
	for _, name := range required {
		pos := -1
		for i, h := range headers {
			if h == name {
				pos = i
				break
			}
		}
		if pos == -1 {
			return columnSet{}, 0, fmt.Errorf("plan table header missing column %q", name)
		}
		cols.idx[name] = pos
	}
	return cols, headerAt + 1, nil
}

// tableLines splits the raw text into trimmed, non-empty lines with pure
// separator lines (|---|---|) removed.
func tableLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || isSeparator(line) {
			continue
		}
		out = append(out, line)
	}
	return out
}

func isSeparator(line string) bool {
	if !strings.HasPrefix(line, "|") {
		return false
	}
	for _, r := range line {
		switch r {
		case '|', '-', ':', ' ':
		default:
			return false
		}
	}
	return true
}

func splitRow(line string) []string {
	parts := strings.Split(line, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
