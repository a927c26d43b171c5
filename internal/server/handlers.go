package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/claude/liftplan/internal/models"
	"github.com/claude/liftplan/internal/program"
	"github.com/go-chi/chi/v5"
)

// maxBodyBytes bounds generate request bodies.
const maxBodyBytes = 64 << 10

// RoutineInfo describes a program and the inputs it needs.
type RoutineInfo struct {
	models.RoutineSummary
	RoutineParameters models.ParameterSchema   `json:"routineParameters"`
	Defaults          models.RoutineParameters `json:"defaults"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListRoutines(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.routines.Programs(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleGetRoutine(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	summary, err := s.routines.Summary(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	schema, err := s.routines.Parameters(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	defaults, err := s.routines.Defaults(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, RoutineInfo{
		RoutineSummary:    summary,
		RoutineParameters: schema,
		Defaults:          defaults,
	})
}

func (s *Server) handleParameters(w http.ResponseWriter, r *http.Request) {
	schema, err := s.routines.Parameters(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, schema)
}

func (s *Server) handleDefaults(w http.ResponseWriter, r *http.Request) {
	defaults, err := s.routines.Defaults(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, defaults)
}

func (s *Server) handleDefaultRoutine(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	defaults, err := s.routines.Defaults(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	routine, err := s.routines.Generate(r.Context(), id, defaults)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, routine)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var in program.ParamsInput
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	params, err := in.Resolve()
	if err != nil {
		s.writeError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	routine, err := s.routines.Generate(r.Context(), id, params)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.log.Info("routine generated", "id", id, "request_id", requestIDFromContext(r))
	writeJSON(w, http.StatusOK, routine)
}

// writeError maps service errors to HTTP statuses.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var verr *program.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": verr.Error(), "missing": verr.Missing})
	case errors.Is(err, program.ErrUnknownProgram):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	default:
		s.log.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
