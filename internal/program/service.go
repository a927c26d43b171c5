package program

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"

	"github.com/claude/liftplan/internal/cache"
	"github.com/claude/liftplan/internal/models"
)

// Service serves programs from a catalog and memoizes generated routines.
type Service struct {
	catalog *Catalog
	cache   cache.Cache
	log     *slog.Logger
}

// NewService creates a Service. c may be nil to disable memoization.
func NewService(catalog *Catalog, c cache.Cache, log *slog.Logger) *Service {
	return &Service{catalog: catalog, cache: c, log: log}
}

// Programs lists the summaries of every registered program.
func (s *Service) Programs(_ context.Context) ([]models.RoutineSummary, error) {
	return s.catalog.Summaries(), nil
}

// Summary returns the identity of program id.
func (s *Service) Summary(_ context.Context, id string) (models.RoutineSummary, error) {
	p, err := s.catalog.Get(id)
	if err != nil {
		return models.RoutineSummary{}, err
	}
	return p.Summary(), nil
}

// Parameters returns the parameter descriptor of program id.
func (s *Service) Parameters(_ context.Context, id string) (models.ParameterSchema, error) {
	p, err := s.catalog.Get(id)
	if err != nil {
		return models.ParameterSchema{}, err
	}
	return p.Schema(), nil
}

// Defaults returns the reset values of program id.
func (s *Service) Defaults(_ context.Context, id string) (models.RoutineParameters, error) {
	p, err := s.catalog.Get(id)
	if err != nil {
		return models.RoutineParameters{}, err
	}
	return p.Defaults(), nil
}

// Generate expands params with program id. A cached routine is returned when
// present; cache errors are logged and generation proceeds without it.
func (s *Service) Generate(ctx context.Context, id string, params models.RoutineParameters) (*models.Routine, error) {
	p, err := s.catalog.Get(id)
	if err != nil {
		return nil, err
	}
	if s.cache == nil {
		return p.Generate(params), nil
	}

	key := CacheKey(id, params)
	if data, ok, err := s.cache.Get(ctx, key); err != nil {
		s.log.Warn("routine cache get failed", "key", key, "error", err)
	} else if ok {
		var cached models.Routine
		if err := json.Unmarshal(data, &cached); err == nil {
			s.log.Debug("routine cache hit", "key", key)
			return &cached, nil
		}
		s.log.Warn("discarding undecodable cached routine", "key", key)
	}

	routine := p.Generate(params)
	data, err := json.Marshal(routine)
	if err != nil {
		s.log.Warn("encoding routine for cache", "key", key, "error", err)
		return routine, nil
	}
	if err := s.cache.Set(ctx, key, data); err != nil {
		s.log.Warn("routine cache set failed", "key", key, "error", err)
	}
	return routine, nil
}

// CacheKey is the canonical memo key for a program and parameter set.
func CacheKey(id string, params models.RoutineParameters) string {
	var b strings.Builder
	b.WriteString(id)
	for _, v := range []float64{
		params.BenchPress1RM,
		params.Squat1RM,
		params.Deadlift1RM,
		params.StandingShoulderPress1RM,
	} {
		b.WriteByte(':')
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	b.WriteByte(':')
	b.WriteString(strconv.FormatBool(params.RoundToNearest25))
	return b.String()
}
