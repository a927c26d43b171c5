package program

import (
	"fmt"
	"math"

	"github.com/claude/liftplan/internal/models"
)

// Wendler531ID identifies the 5/3/1 Triumvirate routine.
const Wendler531ID = "routine.wendler531"

// trainingMaxRatio is the share of the true 1RM that percentages are taken from.
const trainingMaxRatio = 0.9

// Rounding factors: multiply, round, divide. 0.4 snaps to 2.5 steps, 2 to 0.5 steps.
const (
	roundingFactor25 = 0.4
	roundingFactor05 = 2
)

// TopSet is one (percentage of training max, reps) entry of a week template.
type TopSet struct {
	Percentage float64
	Reps       int
}

// WeekTemplate defines the top sets of every main lift for one week.
type WeekTemplate struct {
	Label string
	Sets  []TopSet
}

// Weeks is the four-week 5/3/1 cycle. Week 4 is the deload.
var Weeks = []WeekTemplate{
	{Label: "Week 1", Sets: []TopSet{{65, 5}, {75, 5}, {85, 5}}},
	{Label: "Week 2", Sets: []TopSet{{70, 3}, {80, 3}, {90, 3}}},
	{Label: "Week 3", Sets: []TopSet{{75, 5}, {85, 3}, {95, 1}}},
	{Label: "Week 4", Sets: []TopSet{{40, 5}, {50, 5}, {60, 5}}},
}

// Lift names the four main lifts in session order.
type Lift string

const (
	StandingShoulderPress Lift = "Standing Shoulder Press"
	Deadlift              Lift = "Deadlift"
	BenchPress            Lift = "Bench Press"
	Squat                 Lift = "Squat"
)

// LiftOrder is the order of sessions within each week.
var LiftOrder = []Lift{StandingShoulderPress, Deadlift, BenchPress, Squat}

// Accessory is a supplemental exercise with a fixed prescription.
type Accessory struct {
	Name   string
	Sets   int
	Reps   int
	Weight float64
}

// Accessories holds the two supplemental exercises performed after each main lift.
var Accessories = map[Lift][2]Accessory{
	StandingShoulderPress: {
		{Name: "Dip", Sets: 5, Reps: 15, Weight: models.BodyweightLoad},
		{Name: "Chin-Up", Sets: 5, Reps: 10, Weight: models.BodyweightLoad},
	},
	Deadlift: {
		{Name: "Good Morning", Sets: 5, Reps: 12, Weight: 20},
		{Name: "Hanging Leg Raise", Sets: 5, Reps: 15, Weight: models.BodyweightLoad},
	},
	BenchPress: {
		{Name: "Dumbbell Chest Press", Sets: 5, Reps: 15, Weight: 50},
		{Name: "Dumbbell Row", Sets: 5, Reps: 10, Weight: 50},
	},
	Squat: {
		{Name: "Leg Press", Sets: 5, Reps: 15, Weight: 50},
		{Name: "Leg Curl", Sets: 5, Reps: 10, Weight: 50},
	},
}

// supplementalText is the note attached to accessory exercises.
const supplementalText = ""

// Wendler531 is the Triumvirate variant of Jim Wendler's 5/3/1.
type Wendler531 struct{}

var _ Program = Wendler531{}

// ID implements Program.
func (Wendler531) ID() string { return Wendler531ID }

// Summary implements Program.
func (Wendler531) Summary() models.RoutineSummary {
	return models.RoutineSummary{
		ID:          Wendler531ID,
		Name:        "Wendler 5/3/1 Triumvirate",
		Description: "Triumvirate variant of Jon Wendler's 5/3/1",
		URL:         "https://www.t-nation.com/workouts/531-how-to-build-pure-strength",
	}
}

// Defaults implements Program. These are the values a form resets to.
func (Wendler531) Defaults() models.RoutineParameters {
	return models.RoutineParameters{
		BenchPress1RM:            80,
		Squat1RM:                 100,
		Deadlift1RM:              110,
		StandingShoulderPress1RM: 45,
		RoundToNearest25:         true,
	}
}

// Schema implements Program.
func (Wendler531) Schema() models.ParameterSchema {
	return models.ParameterSchema{
		Fields: []models.ParameterField{
			{Name: "benchPress1RM", Kind: models.KindNumber, Title: "Bench Press 1RM", Default: float64(0)},
			{Name: "squat1RM", Kind: models.KindNumber, Title: "Squat 1RM", Default: float64(0)},
			{Name: "deadlift1RM", Kind: models.KindNumber, Title: "Deadlift 1RM", Default: float64(0)},
			{Name: "standingShoulderPress1RM", Kind: models.KindNumber, Title: "Standing Shoulder Press 1RM", Default: float64(0)},
			{Name: "roundToNearest25", Kind: models.KindBoolean, Title: "Round to 2.5 kg", Default: true},
		},
		Required: []string{
			"benchPress1RM",
			"squat1RM",
			"deadlift1RM",
			"standingShoulderPress1RM",
			"roundToNearest25",
		},
	}
}

// Generate implements Program. It is total: zero or negative maxes yield
// correspondingly zero or negative weights.
func (w Wendler531) Generate(params models.RoutineParameters) *models.Routine {
	summary := w.Summary()
	routine := &models.Routine{
		ID:                summary.ID,
		Name:              summary.Name,
		Description:       summary.Description,
		URL:               summary.URL,
		Activities:        make([]models.Activity, 0, len(Weeks)*len(LiftOrder)),
		RoutineParameters: w.Schema(),
	}

	for _, week := range Weeks {
		for _, lift := range LiftOrder {
			oneRepMax := oneRepMaxFor(params, lift)
			main := models.Exercise{
				Name: string(lift),
				Sets: make([]models.Set, 0, len(week.Sets)),
			}
			for _, top := range week.Sets {
				main.Sets = append(main.Sets, models.Set{
					Reps:   top.Reps,
					Weight: Weight(oneRepMax, top.Percentage, params.RoundToNearest25),
				})
			}

			exercises := []models.Exercise{main}
			for _, acc := range Accessories[lift] {
				exercises = append(exercises, acc.exercise())
			}

			routine.Activities = append(routine.Activities, models.Activity{
				Title:     fmt.Sprintf("%s %s", lift, week.Label),
				Exercises: exercises,
			})
		}
	}

	return routine
}

// Weight returns the prescribed load for a top set: percentage of the
// training max (90% of oneRepMax), snapped to 2.5 or 0.5 increments.
func Weight(oneRepMax, percentage float64, roundToNearest25 bool) float64 {
	factor := float64(roundingFactor05)
	if roundToNearest25 {
		factor = roundingFactor25
	}
	raw := oneRepMax * trainingMaxRatio * percentage / 100
	return math.Round(raw*factor) / factor
}

func oneRepMaxFor(params models.RoutineParameters, lift Lift) float64 {
	switch lift {
	case StandingShoulderPress:
		return params.StandingShoulderPress1RM
	case Deadlift:
		return params.Deadlift1RM
	case BenchPress:
		return params.BenchPress1RM
	case Squat:
		return params.Squat1RM
	}
	return 0
}

func (a Accessory) exercise() models.Exercise {
	sets := make([]models.Set, a.Sets)
	for i := range sets {
		sets[i] = models.Set{Reps: a.Reps, Weight: a.Weight}
	}
	return models.Exercise{Name: a.Name, Sets: sets, Text: supplementalText}
}
