package repository

import (
	"context"
	"sync"
	"time"

	"tikang-admin/internal/models"
)

type MemorySessionRepository struct {
	mu      sync.RWMutex
	session *models.Session
	ttl     time.Duration
}

func NewMemorySessionRepository(ttl time.Duration) *MemorySessionRepository {
	return &MemorySessionRepository{ttl: ttl}
}

func (r *MemorySessionRepository) Get(ctx context.Context) (*models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.session == nil {
		return nil, nil
	}
	if r.ttl > 0 && time.Since(r.session.SavedAt) > r.ttl {
		return nil, nil
	}
	copied := *r.session
	return &copied, nil
}

func (r *MemorySessionRepository) Set(ctx context.Context, session *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *session
	if copied.SavedAt.IsZero() {
		copied.SavedAt = time.Now()
	}
	r.session = &copied
	return nil
}

func (r *MemorySessionRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session = nil
	return nil
}
