package ports

import (
	"context"

	"github.com/Hritik-Singh067/crm-backend/internal/core/domain"
)

// RegisterInput carries the fields supplied when registering a new admin.
// The store identifier is generated by the service, not supplied.
type RegisterInput struct {
	Name          string
	StoreLocation string
	PhoneNo       string
	PinCode       string
	Email         string
	Password      string
}

// AuthService implements registration, login, logout, and session token
// resolution. Login and Register both establish a session; the returned
// token is what callers present on subsequent requests.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.Admin, string, error)
	Login(ctx context.Context, username, password string) (string, *domain.Admin, error)
	// Logout destroys the session behind token. Destroy errors are logged,
	// never returned: logout reports success regardless.
	Logout(ctx context.Context, token string)
	// Resolve maps a session token back to its live session record.
	Resolve(ctx context.Context, token string) (*domain.Session, error)
}
