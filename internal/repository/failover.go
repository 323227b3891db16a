package repository

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"tikang-admin/internal/models"

	"github.com/rs/zerolog"
)

// FailoverSessionRepository reads and writes through a primary store and
// falls back to a secondary when the primary errors. After a failure the
// primary is probed again at most once a minute.
type FailoverSessionRepository struct {
	primary   SessionRepository
	fallback  SessionRepository
	logger    *zerolog.Logger
	isDown    atomic.Bool
	mu        sync.Mutex
	lastCheck time.Time
}

func NewFailoverSessionRepository(primary, fallback SessionRepository, logger *zerolog.Logger) *FailoverSessionRepository {
	return &FailoverSessionRepository{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

func (r *FailoverSessionRepository) markDown(err error) {
	r.logger.Error().Err(err).Msg("primary session store failed, using fallback")
	r.isDown.Store(true)
	r.mu.Lock()
	r.lastCheck = time.Now()
	r.mu.Unlock()
}

func (r *FailoverSessionRepository) shouldProbe() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if time.Since(r.lastCheck) < time.Minute {
		return false
	}
	r.lastCheck = time.Now()
	return true
}

func (r *FailoverSessionRepository) Get(ctx context.Context) (*models.Session, error) {
	if !r.isDown.Load() {
		session, err := r.primary.Get(ctx)
		if err == nil {
			return session, nil
		}
		r.markDown(err)
	} else if r.shouldProbe() {
		session, err := r.primary.Get(ctx)
		if err == nil {
			r.isDown.Store(false)
			return session, nil
		}
	}

	return r.fallback.Get(ctx)
}

func (r *FailoverSessionRepository) Set(ctx context.Context, session *models.Session) error {
	if !r.isDown.Load() {
		if err := r.primary.Set(ctx, session); err != nil {
			r.markDown(err)
		}
	}
	return r.fallback.Set(ctx, session)
}

func (r *FailoverSessionRepository) Clear(ctx context.Context) error {
	if !r.isDown.Load() {
		if err := r.primary.Clear(ctx); err != nil {
			r.markDown(err)
		}
	}
	return r.fallback.Clear(ctx)
}
