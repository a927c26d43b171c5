package program

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/claude/liftplan/internal/models"
)

// ErrUnknownProgram is returned when no program is registered under an id.
var ErrUnknownProgram = errors.New("unknown routine program")

// Program is a routine template that expands parameters into a Routine.
// Generate must be pure: identical parameters give deeply equal routines.
type Program interface {
	ID() string
	Summary() models.RoutineSummary
	Schema() models.ParameterSchema
	Defaults() models.RoutineParameters
	Generate(params models.RoutineParameters) *models.Routine
}

// Catalog holds the registered programs keyed by id.
type Catalog struct {
	programs map[string]Program
}

// NewCatalog registers the given programs. Later duplicates replace earlier ones.
func NewCatalog(programs ...Program) *Catalog {
	c := &Catalog{programs: make(map[string]Program, len(programs))}
	for _, p := range programs {
		c.programs[p.ID()] = p
	}
	return c
}

// DefaultCatalog returns a catalog with every built-in program.
func DefaultCatalog() *Catalog {
	return NewCatalog(Wendler531{})
}

// Get returns the program registered under id.
func (c *Catalog) Get(id string) (Program, error) {
	p, ok := c.programs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProgram, id)
	}
	return p, nil
}

// Summaries lists the registered programs sorted by id.
func (c *Catalog) Summaries() []models.RoutineSummary {
	out := make([]models.RoutineSummary, 0, len(c.programs))
	for _, p := range c.programs {
		out = append(out, p.Summary())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ValidationError lists required parameters that were not supplied.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required parameters: " + strings.Join(e.Missing, ", ")
}

// ParamsInput is a partially supplied parameter set as decoded from a
// collaborator. Nil fields were absent from the input.
type ParamsInput struct {
	BenchPress1RM            *float64 `json:"benchPress1RM"`
	Squat1RM                 *float64 `json:"squat1RM"`
	Deadlift1RM              *float64 `json:"deadlift1RM"`
	StandingShoulderPress1RM *float64 `json:"standingShoulderPress1RM"`
	RoundToNearest25         *bool    `json:"roundToNearest25"`
}

// Resolve checks that every required field is present. Values are not
// range-checked; the generator accepts any number.
func (in ParamsInput) Resolve() (models.RoutineParameters, error) {
	var missing []string
	var p models.RoutineParameters

	if in.BenchPress1RM == nil {
		missing = append(missing, "benchPress1RM")
	} else {
		p.BenchPress1RM = *in.BenchPress1RM
	}
	if in.Squat1RM == nil {
		missing = append(missing, "squat1RM")
	} else {
		p.Squat1RM = *in.Squat1RM
	}
	if in.Deadlift1RM == nil {
		missing = append(missing, "deadlift1RM")
	} else {
		p.Deadlift1RM = *in.Deadlift1RM
	}
	if in.StandingShoulderPress1RM == nil {
		missing = append(missing, "standingShoulderPress1RM")
	} else {
		p.StandingShoulderPress1RM = *in.StandingShoulderPress1RM
	}
	if in.RoundToNearest25 == nil {
		missing = append(missing, "roundToNearest25")
	} else {
		p.RoundToNearest25 = *in.RoundToNearest25
	}

	if len(missing) > 0 {
		return models.RoutineParameters{}, &ValidationError{Missing: missing}
	}
	return p, nil
}
