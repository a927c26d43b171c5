package mcp

import (
	"context"
	"errors"

	"github.com/claude/liftplan/internal/program"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolListRoutines = mcp.NewTool("list_routines",
	mcp.WithDescription("List the available routine programs with id, name, description and source URL."),
)

var toolGetRoutineParameters = mcp.NewTool("get_routine_parameters",
	mcp.WithDescription("Get the input schema of a routine program (field types, titles, schema defaults, required fields) together with suggested default one-rep maxes."),
	mcp.WithString("routine_id", mcp.Description("Routine program id. Defaults to routine.wendler531.")),
)

var toolGenerateRoutine = mcp.NewTool("generate_routine",
	mcp.WithDescription("Generate a 4-week routine (16 sessions, main lift plus two accessories each) from one-rep maxes. Omitted maxes use the program's default values. A weight of -1 means bodyweight."),
	mcp.WithString("routine_id", mcp.Description("Routine program id. Defaults to routine.wendler531.")),
	mcp.WithNumber("bench_press_1rm", mcp.Description("Bench press one-rep max")),
	mcp.WithNumber("squat_1rm", mcp.Description("Squat one-rep max")),
	mcp.WithNumber("deadlift_1rm", mcp.Description("Deadlift one-rep max")),
	mcp.WithNumber("standing_shoulder_press_1rm", mcp.Description("Standing shoulder press one-rep max")),
	mcp.WithBoolean("round_to_nearest_2_5", mcp.Description("Round loads to 2.5 steps instead of 0.5 steps. Defaults to true.")),
)

// --- Tool handlers ---

func (h *handlers) listRoutines(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	summaries, err := h.src.Programs(ctx)
	if err != nil {
		h.log.Error("mcp list_routines", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(summaries)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getRoutineParameters(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("routine_id", program.Wendler531ID)

	schema, err := h.src.Parameters(ctx, id)
	if err != nil {
		return toolError(h, "get_routine_parameters", err), nil
	}
	defaults, err := h.src.Defaults(ctx, id)
	if err != nil {
		return toolError(h, "get_routine_parameters", err), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"routineParameters": schema,
		"defaults":          defaults,
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) generateRoutine(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("routine_id", program.Wendler531ID)

	params, err := h.src.Defaults(ctx, id)
	if err != nil {
		return toolError(h, "generate_routine", err), nil
	}
	params.BenchPress1RM = req.GetFloat("bench_press_1rm", params.BenchPress1RM)
	params.Squat1RM = req.GetFloat("squat_1rm", params.Squat1RM)
	params.Deadlift1RM = req.GetFloat("deadlift_1rm", params.Deadlift1RM)
	params.StandingShoulderPress1RM = req.GetFloat("standing_shoulder_press_1rm", params.StandingShoulderPress1RM)
	params.RoundToNearest25 = req.GetBool("round_to_nearest_2_5", params.RoundToNearest25)

	routine, err := h.src.Generate(ctx, id, params)
	if err != nil {
		return toolError(h, "generate_routine", err), nil
	}

	result, err := mcp.NewToolResultJSON(routine)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func toolError(h *handlers, tool string, err error) *mcp.CallToolResult {
	if errors.Is(err, program.ErrUnknownProgram) {
		return mcp.NewToolResultError(err.Error())
	}
	h.log.Error("mcp "+tool, "error", err)
	return mcp.NewToolResultError("query failed: " + err.Error())
}
