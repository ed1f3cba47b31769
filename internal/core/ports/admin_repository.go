package ports

import (
	"context"

	"github.com/Hritik-Singh067/crm-backend/internal/core/domain"
)

// AdminRepository defines persistence for administrator identities.
// Admins are created through registration and never deleted.
type AdminRepository interface {
	Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error)
	FindByEmail(ctx context.Context, email string) (*domain.Admin, error)
}
