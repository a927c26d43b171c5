package program

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/claude/liftplan/internal/models"
	"github.com/google/go-cmp/cmp"
)

// TestWeight verifies the training-max formula and both rounding modes against
// hand-computed values.
func TestWeight(t *testing.T) {
	tests := []struct {
		name       string
		oneRepMax  float64
		percentage float64
		round25    bool
		want       float64
	}{
		{"100 at 85% to 2.5", 100, 85, true, 77.5},
		{"100 at 85% to 0.5", 100, 85, false, 76.5},
		{"80 at 65% to 2.5", 80, 65, true, 47.5},
		{"80 at 65% to 0.5", 80, 65, false, 47},
		{"110 at 85% to 0.5", 110, 85, false, 84},
		{"45 at 40% to 2.5", 45, 40, true, 15},
		{"zero max", 0, 95, true, 0},
		{"zero max half steps", 0, 95, false, 0},
		{"negative max", -100, 50, true, -45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Weight(tt.oneRepMax, tt.percentage, tt.round25)
			if got != tt.want {
				t.Errorf("Weight(%v, %v, %v) = %v, want %v", tt.oneRepMax, tt.percentage, tt.round25, got, tt.want)
			}
		})
	}
}

// TestGenerateShape verifies 16 activities in week-major, fixed lift order with
// three main sets matching the week template.
func TestGenerateShape(t *testing.T) {
	r := Wendler531{}.Generate(Wendler531{}.Defaults())

	if len(r.Activities) != 16 {
		t.Fatalf("activities = %d, want 16", len(r.Activities))
	}

	lifts := []string{"Standing Shoulder Press", "Deadlift", "Bench Press", "Squat"}
	wantReps := [][]int{{5, 5, 5}, {3, 3, 3}, {5, 3, 1}, {5, 5, 5}}

	for w := 0; w < 4; w++ {
		for l, lift := range lifts {
			a := r.Activities[w*4+l]
			wantTitle := fmt.Sprintf("%s Week %d", lift, w+1)
			if a.Title != wantTitle {
				t.Errorf("activity %d title = %q, want %q", w*4+l, a.Title, wantTitle)
			}
			if len(a.Exercises) != 3 {
				t.Fatalf("%s: exercises = %d, want 3", a.Title, len(a.Exercises))
			}
			main := a.Exercises[0]
			if main.Name != lift {
				t.Errorf("%s: main exercise = %q, want %q", a.Title, main.Name, lift)
			}
			if len(main.Sets) != 3 {
				t.Fatalf("%s: main sets = %d, want 3", a.Title, len(main.Sets))
			}
			for i, s := range main.Sets {
				if s.Reps != wantReps[w][i] {
					t.Errorf("%s set %d reps = %d, want %d", a.Title, i, s.Reps, wantReps[w][i])
				}
				if s.Completed {
					t.Errorf("%s set %d completed at creation", a.Title, i)
				}
			}
		}
	}
}

type accessoryWant struct {
	name   string
	reps   int
	weight float64
}

var goldenAccessories = map[string][2]accessoryWant{
	"Standing Shoulder Press": {{"Dip", 15, -1}, {"Chin-Up", 10, -1}},
	"Deadlift":                {{"Good Morning", 12, 20}, {"Hanging Leg Raise", 15, -1}},
	"Bench Press":             {{"Dumbbell Chest Press", 15, 50}, {"Dumbbell Row", 10, 50}},
	"Squat":                   {{"Leg Press", 15, 50}, {"Leg Curl", 10, 50}},
}

// goldenDefaultWeights are the main-lift loads for the default parameters,
// in week-major, Standing Shoulder Press, Deadlift, Bench Press, Squat order.
var goldenDefaultWeights = [][3]float64{
	{27.5, 30, 35}, {65, 75, 85}, {47.5, 55, 60}, {57.5, 67.5, 77.5},
	{27.5, 32.5, 37.5}, {70, 80, 90}, {50, 57.5, 65}, {62.5, 72.5, 80},
	{30, 35, 37.5}, {75, 85, 95}, {55, 60, 67.5}, {67.5, 77.5, 85},
	{15, 20, 25}, {40, 50, 60}, {30, 35, 42.5}, {35, 45, 55},
}

func goldenDefaultRoutine() *models.Routine {
	lifts := []string{"Standing Shoulder Press", "Deadlift", "Bench Press", "Squat"}
	reps := [][3]int{{5, 5, 5}, {3, 3, 3}, {5, 3, 1}, {5, 5, 5}}

	var activities []models.Activity
	for w := 0; w < 4; w++ {
		for l, lift := range lifts {
			weights := goldenDefaultWeights[w*4+l]
			main := models.Exercise{Name: lift}
			for i := 0; i < 3; i++ {
				main.Sets = append(main.Sets, models.Set{Reps: reps[w][i], Weight: weights[i]})
			}
			exercises := []models.Exercise{main}
			for _, acc := range goldenAccessories[lift] {
				ex := models.Exercise{Name: acc.name}
				for i := 0; i < 5; i++ {
					ex.Sets = append(ex.Sets, models.Set{Reps: acc.reps, Weight: acc.weight})
				}
				exercises = append(exercises, ex)
			}
			activities = append(activities, models.Activity{
				Title:     fmt.Sprintf("%s Week %d", lift, w+1),
				Exercises: exercises,
			})
		}
	}

	return &models.Routine{
		ID:          "routine.wendler531",
		Name:        "Wendler 5/3/1 Triumvirate",
		Description: "Triumvirate variant of Jon Wendler's 5/3/1",
		URL:         "https://www.t-nation.com/workouts/531-how-to-build-pure-strength",
		Activities:  activities,
		RoutineParameters: models.ParameterSchema{
			Fields: []models.ParameterField{
				{Name: "benchPress1RM", Kind: "number", Title: "Bench Press 1RM", Default: float64(0)},
				{Name: "squat1RM", Kind: "number", Title: "Squat 1RM", Default: float64(0)},
				{Name: "deadlift1RM", Kind: "number", Title: "Deadlift 1RM", Default: float64(0)},
				{Name: "standingShoulderPress1RM", Kind: "number", Title: "Standing Shoulder Press 1RM", Default: float64(0)},
				{Name: "roundToNearest25", Kind: "boolean", Title: "Round to 2.5 kg", Default: true},
			},
			Required: []string{"benchPress1RM", "squat1RM", "deadlift1RM", "standingShoulderPress1RM", "roundToNearest25"},
		},
	}
}

// TestGenerateDefaultsGolden verifies the full routine for the default
// parameters (bench 80, squat 100, deadlift 110, press 45, 2.5 rounding).
func TestGenerateDefaultsGolden(t *testing.T) {
	got := Wendler531{}.Generate(models.RoutineParameters{
		BenchPress1RM:            80,
		Squat1RM:                 100,
		Deadlift1RM:              110,
		StandingShoulderPress1RM: 45,
		RoundToNearest25:         true,
	})
	if diff := cmp.Diff(goldenDefaultRoutine(), got); diff != "" {
		t.Errorf("default routine mismatch (-want +got):\n%s", diff)
	}
}

// TestGenerateHalfStepRounding verifies main-lift loads with 0.5 rounding for
// the default maxes.
func TestGenerateHalfStepRounding(t *testing.T) {
	params := Wendler531{}.Defaults()
	params.RoundToNearest25 = false
	r := Wendler531{}.Generate(params)

	want := map[string][3]float64{
		"Standing Shoulder Press Week 1": {26.5, 30.5, 34.5},
		"Deadlift Week 1":                {64.5, 74.5, 84},
		"Bench Press Week 2":             {50.5, 57.5, 65},
		"Squat Week 3":                   {67.5, 76.5, 85.5},
		"Bench Press Week 4":             {29, 36, 43},
	}
	for _, a := range r.Activities {
		w, ok := want[a.Title]
		if !ok {
			continue
		}
		for i, s := range a.Exercises[0].Sets {
			if s.Weight != w[i] {
				t.Errorf("%s set %d weight = %v, want %v", a.Title, i, s.Weight, w[i])
			}
		}
	}
}

// TestGenerateIdempotent verifies two calls with the same input produce deeply
// equal, independently owned routines.
func TestGenerateIdempotent(t *testing.T) {
	params := models.RoutineParameters{BenchPress1RM: 102.5, Squat1RM: 140, Deadlift1RM: 180, StandingShoulderPress1RM: 61, RoundToNearest25: false}
	a := Wendler531{}.Generate(params)
	b := Wendler531{}.Generate(params)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("second generation differs (-first +second):\n%s", diff)
	}

	a.Activities[0].Exercises[0].Sets[0].Completed = true
	if b.Activities[0].Exercises[0].Sets[0].Completed {
		t.Error("routines share set storage")
	}
	a.Activities[0].Exercises[1].Sets[0].Reps = 99
	if c := (Wendler531{}).Generate(params); c.Activities[0].Exercises[1].Sets[0].Reps != 15 {
		t.Error("mutating a routine leaked into the accessory table")
	}
}

// TestAccessoriesInvariantAcrossWeeks verifies accessory prescriptions do not
// depend on the week or on any max.
func TestAccessoriesInvariantAcrossWeeks(t *testing.T) {
	r := Wendler531{}.Generate(models.RoutineParameters{BenchPress1RM: 1, Squat1RM: 2, Deadlift1RM: 3, StandingShoulderPress1RM: 4})

	for i, a := range r.Activities {
		first := r.Activities[i%4]
		for e := 1; e < 3; e++ {
			if diff := cmp.Diff(first.Exercises[e], a.Exercises[e]); diff != "" {
				t.Errorf("%s accessory %d differs from week 1 (-week1 +got):\n%s", a.Title, e, diff)
			}
			if len(a.Exercises[e].Sets) != 5 {
				t.Errorf("%s accessory %s has %d sets, want 5", a.Title, a.Exercises[e].Name, len(a.Exercises[e].Sets))
			}
		}
	}

	dip := r.Activities[0].Exercises[1]
	if dip.Name != "Dip" {
		t.Fatalf("first accessory = %q, want Dip", dip.Name)
	}
	for i, s := range dip.Sets {
		if s.Reps != 15 || s.Weight != models.BodyweightLoad {
			t.Errorf("Dip set %d = %+v, want 15 reps at bodyweight", i, s)
		}
	}
}

// TestGenerateZeroMax verifies a zero 1RM yields zero main-lift weights for that
// lift only.
func TestGenerateZeroMax(t *testing.T) {
	params := Wendler531{}.Defaults()
	params.Squat1RM = 0
	r := Wendler531{}.Generate(params)

	for _, a := range r.Activities {
		main := a.Exercises[0]
		for i, s := range main.Sets {
			if main.Name == "Squat" && s.Weight != 0 {
				t.Errorf("%s set %d weight = %v, want 0", a.Title, i, s.Weight)
			}
			if main.Name != "Squat" && s.Weight <= 0 {
				t.Errorf("%s set %d weight = %v, want > 0", a.Title, i, s.Weight)
			}
		}
	}
}

// TestGenerateNegativeMax verifies negative input propagates arithmetically
// instead of failing.
func TestGenerateNegativeMax(t *testing.T) {
	params := Wendler531{}.Defaults()
	params.BenchPress1RM = -80
	r := Wendler531{}.Generate(params)

	bench := r.Activities[2].Exercises[0]
	if bench.Name != "Bench Press" {
		t.Fatalf("activity 2 main = %q, want Bench Press", bench.Name)
	}
	for i, s := range bench.Sets {
		if s.Weight >= 0 {
			t.Errorf("bench set %d weight = %v, want negative", i, s.Weight)
		}
	}
}

// TestGenerateJSONShape verifies the external field names of the routine.
func TestGenerateJSONShape(t *testing.T) {
	data, err := json.Marshal(Wendler531{}.Generate(Wendler531{}.Defaults()))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"id", "name", "description", "url", "activities", "routineParameters"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("routine JSON missing %q", key)
		}
	}
	if _, ok := raw["imageUrl"]; ok {
		t.Error("empty imageUrl should be omitted")
	}

	first := raw["activities"].([]any)[0].(map[string]any)
	set := first["exercises"].([]any)[0].(map[string]any)["sets"].([]any)[0].(map[string]any)
	if set["reps"] != float64(5) || set["weight"] != 27.5 || set["completed"] != false {
		t.Errorf("first set = %v, want reps 5, weight 27.5, completed false", set)
	}
}
