package ports

import (
	"context"

	"github.com/Hritik-Singh067/crm-backend/internal/core/domain"
)

// CreateTransactionInput carries caller-supplied fields for a new
// transaction. Category is normalized to the closed set, defaulting to
// Others; Date is defaulted to the service clock's notion of now.
type CreateTransactionInput struct {
	StoreID  string
	UID      string
	Amount   float64
	Detail   string
	Category string
}

// TransactionService defines the use-case operations for the transactions
// resource. Create follows the same fire-and-forget contract as
// ClientService.Create.
type TransactionService interface {
	List(ctx context.Context) ([]*domain.Transaction, error)
	Create(ctx context.Context, input CreateTransactionInput)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}
