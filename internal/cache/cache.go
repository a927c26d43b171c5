package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache stores encoded routines keyed by program id and parameters.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Backend names accepted by New.
const (
	BackendNone   = "none"
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Options configures New.
type Options struct {
	Backend  string
	Size     int
	TTL      time.Duration
	Addr     string
	Password string
	DB       int
}

// New builds the configured cache. BackendNone and an empty backend return a
// nil Cache, which callers treat as "no memoization".
func New(ctx context.Context, opts Options) (Cache, error) {
	switch opts.Backend {
	case "", BackendNone:
		return nil, nil
	case BackendMemory:
		return NewMemory(opts.Size), nil
	case BackendRedis:
		r, err := NewRedis(ctx, opts.Addr, opts.Password, opts.DB, opts.TTL)
		if err != nil {
			return nil, err
		}
		return r, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", opts.Backend)
	}
}
