package repository

import (
	"context"

	"medicita/internal/domain/entity"
)

// SessionRepository owns the single session slot
type SessionRepository interface {
	// Get returns nil when nobody is logged in.
	Get(ctx context.Context) (*entity.Session, error)
	Set(ctx context.Context, session *entity.Session) error
	Clear(ctx context.Context) error
}
