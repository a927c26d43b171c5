package mcp

import (
	"context"

	"github.com/claude/liftplan/internal/models"
	"github.com/claude/liftplan/internal/program"
)

// RoutineSource abstracts routine generation for MCP tools. Both
// *program.Service (local) and HTTPClient (remote via REST API) satisfy it.
type RoutineSource interface {
	Programs(ctx context.Context) ([]models.RoutineSummary, error)
	Parameters(ctx context.Context, id string) (models.ParameterSchema, error)
	Defaults(ctx context.Context, id string) (models.RoutineParameters, error)
	Generate(ctx context.Context, id string, params models.RoutineParameters) (*models.Routine, error)
}

// Compile-time check: *program.Service satisfies RoutineSource.
var _ RoutineSource = (*program.Service)(nil)
