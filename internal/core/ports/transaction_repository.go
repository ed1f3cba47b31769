package ports

import (
	"context"
	"time"

	"github.com/Hritik-Singh067/crm-backend/internal/core/domain"
)

// DailyAmount is one bucket of a day-grouped revenue series.
type DailyAmount struct {
	Day   string  `json:"day" bson:"_id"`
	Total float64 `json:"total" bson:"total"`
}

// TransactionRepository defines persistence and aggregation over the
// transactions collection.
type TransactionRepository interface {
	Insert(ctx context.Context, tx *domain.Transaction) error
	FindAll(ctx context.Context) ([]*domain.Transaction, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	DeleteByID(ctx context.Context, id string) error
	// RevenueTotal sums amount over transactions dated in [from, to].
	// An empty window yields 0, not an error.
	RevenueTotal(ctx context.Context, from, to time.Time) (float64, error)
	DailyRevenue(ctx context.Context, from, to time.Time) ([]DailyAmount, error)
}
