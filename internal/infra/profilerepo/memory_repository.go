package profilerepo

import (
	"context"
	"sync"

	"github.com/inetready/travel-advisor/internal/domain/traveladvisor"
)

// MemoryRepository is an in-memory profile store for tests/dev.
type MemoryRepository struct {
	mu       sync.RWMutex
	profiles map[string]*traveladvisor.MedicalProfile
}

// NewMemoryRepository constructs an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{profiles: make(map[string]*traveladvisor.MedicalProfile)}
}

// Put stores or replaces a user's profile.
func (r *MemoryRepository) Put(userID string, profile *traveladvisor.MedicalProfile) {
	r.mu.Lock()
	r.profiles[userID] = profile
	r.mu.Unlock()
}

// GetByUserID implements traveladvisor.ProfileRepository.
func (r *MemoryRepository) GetByUserID(_ context.Context, userID string) (*traveladvisor.MedicalProfile, bool, error) {
	r.mu.RLock()
	profile, ok := r.profiles[userID]
	r.mu.RUnlock()
	return profile, ok, nil
}

var _ traveladvisor.ProfileRepository = (*MemoryRepository)(nil)
