package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/Hritik-Singh067/crm-backend/internal/core/domain"
	"github.com/Hritik-Singh067/crm-backend/internal/core/ports"
)

// ClientService implements the clients resource operations.
type ClientService struct {
	repo   ports.ClientRepository
	writes ports.WriteQueue
	logger zerolog.Logger
	now    func() time.Time
}

func NewClientService(repo ports.ClientRepository, writes ports.WriteQueue, logger zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, writes: writes, logger: logger, now: time.Now}
}

// WithClock overrides the service clock. Intended for tests.
func (s *ClientService) WithClock(now func() time.Time) *ClientService {
	s.now = now
	return s
}

// List returns every client, unfiltered and unpaginated. No ordering
// guarantee beyond what the store returns.
func (s *ClientService) List(ctx context.Context) ([]*domain.Client, error) {
	return s.repo.FindAll(ctx)
}

// Create enqueues the insert and returns immediately. The caller is never
// told whether the write landed; failures surface only in the log.
func (s *ClientService) Create(_ context.Context, input ports.CreateClientInput) {
	client := &domain.Client{
		Email:    input.Email,
		Name:     input.Name,
		Contact:  input.Contact,
		JoinedAt: s.now().UTC(),
		Address:  input.Address,
	}

	s.writes.Enqueue("clients", ports.WriteOp{
		Resource: "clients",
		Do: func(ctx context.Context) error {
			return s.repo.Insert(ctx, client)
		},
	})
}

// Update applies fields as a merge-patch against the record matching id.
// Any field name writes through unchanged, the identifier included.
func (s *ClientService) Update(ctx context.Context, id string, fields map[string]any) error {
	return s.repo.UpdateFields(ctx, id, fields)
}

// Delete removes at most one record. An absent id is a no-op, not an error.
func (s *ClientService) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}
