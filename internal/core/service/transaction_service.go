package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/Hritik-Singh067/crm-backend/internal/core/domain"
	"github.com/Hritik-Singh067/crm-backend/internal/core/ports"
)

// TransactionService implements the transactions resource operations.
type TransactionService struct {
	repo   ports.TransactionRepository
	writes ports.WriteQueue
	logger zerolog.Logger
	now    func() time.Time
}

func NewTransactionService(repo ports.TransactionRepository, writes ports.WriteQueue, logger zerolog.Logger) *TransactionService {
	return &TransactionService{repo: repo, writes: writes, logger: logger, now: time.Now}
}

// WithClock overrides the service clock. Intended for tests.
func (s *TransactionService) WithClock(now func() time.Time) *TransactionService {
	s.now = now
	return s
}

func (s *TransactionService) List(ctx context.Context) ([]*domain.Transaction, error) {
	return s.repo.FindAll(ctx)
}

// Create normalizes the category, stamps the date, and enqueues the insert.
// Same fire-and-forget contract as ClientService.Create.
func (s *TransactionService) Create(_ context.Context, input ports.CreateTransactionInput) {
	tx := &domain.Transaction{
		StoreID:  input.StoreID,
		UID:      input.UID,
		Amount:   input.Amount,
		Date:     s.now().UTC(),
		Detail:   input.Detail,
		Category: domain.NormalizeCategory(input.Category),
	}

	s.writes.Enqueue("transactions", ports.WriteOp{
		Resource: "transactions",
		Do: func(ctx context.Context) error {
			return s.repo.Insert(ctx, tx)
		},
	})
}

func (s *TransactionService) Update(ctx context.Context, id string, fields map[string]any) error {
	return s.repo.UpdateFields(ctx, id, fields)
}

func (s *TransactionService) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}
