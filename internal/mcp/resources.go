package mcp

import (
	"context"
	"encoding/json"

	"github.com/claude/liftplan/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
)

type catalogEntry struct {
	models.RoutineSummary
	RoutineParameters models.ParameterSchema   `json:"routineParameters"`
	Defaults          models.RoutineParameters `json:"defaults"`
}

func (h *handlers) routineCatalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	summaries, err := h.src.Programs(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]catalogEntry, 0, len(summaries))
	for _, s := range summaries {
		schema, err := h.src.Parameters(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		defaults, err := h.src.Defaults(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, catalogEntry{RoutineSummary: s, RoutineParameters: schema, Defaults: defaults})
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
