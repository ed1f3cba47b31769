package ports

import (
	"context"

	"github.com/Hritik-Singh067/crm-backend/internal/core/domain"
)

// CreateClientInput carries caller-supplied fields for a new client.
// JoinedAt is defaulted to the service clock's notion of now.
type CreateClientInput struct {
	Email   string
	Name    string
	Contact string
	Address string
}

// ClientService defines the use-case operations for the clients resource.
// Create enqueues the write and returns before the insert is confirmed;
// insert failures are logged by the write queue, never surfaced.
type ClientService interface {
	List(ctx context.Context) ([]*domain.Client, error)
	Create(ctx context.Context, input CreateClientInput)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}
