package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(src RoutineSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("liftplan", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("liftplan generates percentage-based strength training routines from one-rep maxes. Use get_routine_parameters to see the inputs, then generate_routine."),
	)

	h := &handlers{src: src, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolListRoutines, Handler: h.listRoutines},
		server.ServerTool{Tool: toolGetRoutineParameters, Handler: h.getRoutineParameters},
		server.ServerTool{Tool: toolGenerateRoutine, Handler: h.generateRoutine},
	)

	s.AddResources(
		server.ServerResource{Resource: resRoutineCatalog, Handler: h.routineCatalog},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	src RoutineSource
	log *slog.Logger
}

// --- Resource definitions ---

var resRoutineCatalog = mcp.NewResource(
	"liftplan://routines",
	"Routine Catalog",
	mcp.WithResourceDescription("All routine programs with their parameter schema and default one-rep maxes"),
	mcp.WithMIMEType("application/json"),
)
