package advicestore

import (
	"context"
	"sync"
	"time"

	"github.com/inetready/travel-advisor/internal/domain/traveladvisor"
)

type entry struct {
	result    traveladvisor.TravelRiskResult
	expiresAt time.Time
}

// MemoryStore is an in-process implementation of the advice cache for
// tests/dev.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]entry)}
}

// Get implements traveladvisor.AdviceStore.
func (s *MemoryStore) Get(_ context.Context, key string) (traveladvisor.TravelRiskResult, bool, error) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return traveladvisor.TravelRiskResult{}, false, nil
	}
	if hasExpired(e.expiresAt) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return traveladvisor.TravelRiskResult{}, false, nil
	}
	return e.result, true, nil
}

// Save caches a result with optional TTL.
func (s *MemoryStore) Save(_ context.Context, key string, result traveladvisor.TravelRiskResult, ttl time.Duration) error {
	exp := time.Time{}
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	s.mu.Lock()
	s.entries[key] = entry{result: result, expiresAt: exp}
	s.mu.Unlock()
	return nil
}

func hasExpired(ts time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return ts.Before(time.Now())
}

var _ traveladvisor.AdviceStore = (*MemoryStore)(nil)
