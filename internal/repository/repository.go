package repository

import (
	"context"

	"tikang-admin/internal/models"
)

// SessionRepository persists the single authentication snapshot across runs.
// Get returns (nil, nil) when no session is stored.
type SessionRepository interface {
	Get(ctx context.Context) (*models.Session, error)
	Set(ctx context.Context, session *models.Session) error
	Clear(ctx context.Context) error
}
