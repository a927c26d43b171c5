package cache

import (
	"context"
	"sync"

	"github.com/golang/groupcache/lru"
)

// DefaultMemorySize bounds the in-process cache when no size is configured.
const DefaultMemorySize = 128

// Memory is an in-process LRU cache safe for concurrent use.
type Memory struct {
	mu  sync.Mutex
	lru *lru.Cache
}

var _ Cache = (*Memory)(nil)

// NewMemory creates a Memory cache holding at most size entries.
func NewMemory(size int) *Memory {
	if size <= 0 {
		size = DefaultMemorySize
	}
	return &Memory{lru: lru.New(size)}
}

// Get implements Cache.
func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.lru.Get(key)
	if !ok {
		return nil, false, nil
	}
	return v.([]byte), true, nil
}

// Set implements Cache.
func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lru.Add(key, value)
	return nil
}

// Len returns the number of cached entries.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lru.Len()
}
