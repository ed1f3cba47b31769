package ports

import (
	"context"

	"github.com/Hritik-Singh067/crm-backend/internal/core/domain"
)

// SessionStore persists server-side session records keyed by session id.
// Records expire on their own after the store's configured TTL.
type SessionStore interface {
	Create(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}
