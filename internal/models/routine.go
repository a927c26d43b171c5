package models

// BodyweightLoad marks a set performed with bodyweight only. No weight is tracked.
const BodyweightLoad = -1

// RoutineParameters are the user-supplied one-rep maxes a routine is built from.
type RoutineParameters struct {
	BenchPress1RM            float64 `json:"benchPress1RM" yaml:"benchPress1RM"`
	Squat1RM                 float64 `json:"squat1RM" yaml:"squat1RM"`
	Deadlift1RM              float64 `json:"deadlift1RM" yaml:"deadlift1RM"`
	StandingShoulderPress1RM float64 `json:"standingShoulderPress1RM" yaml:"standingShoulderPress1RM"`
	RoundToNearest25         bool    `json:"roundToNearest25" yaml:"roundToNearest25"`
}

// Set is one prescribed set. A zero weight means unspecified and
// BodyweightLoad means bodyweight only.
type Set struct {
	Reps      int     `json:"reps" yaml:"reps"`
	Weight    float64 `json:"weight" yaml:"weight"`
	Completed bool    `json:"completed" yaml:"completed"`
}

// Exercise is a named movement with its prescribed sets.
type Exercise struct {
	Name string `json:"name" yaml:"name"`
	Sets []Set  `json:"sets" yaml:"sets"`
	Text string `json:"text" yaml:"text"`
}

// Activity is a single training session, main lift first.
type Activity struct {
	Title     string     `json:"title" yaml:"title"`
	Exercises []Exercise `json:"exercises" yaml:"exercises"`
}

// Routine is a complete generated training program.
type Routine struct {
	ID                string          `json:"id" yaml:"id"`
	Name              string          `json:"name" yaml:"name"`
	Description       string          `json:"description" yaml:"description"`
	URL               string          `json:"url" yaml:"url"`
	ImageURL          string          `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
	Activities        []Activity      `json:"activities" yaml:"activities"`
	RoutineParameters ParameterSchema `json:"routineParameters" yaml:"routineParameters"`
}

// RoutineSummary is the static identity of a routine program, without activities.
type RoutineSummary struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	URL         string `json:"url" yaml:"url"`
	ImageURL    string `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
}
