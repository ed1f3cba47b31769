package ports

import (
	"context"
	"time"

	"github.com/Hritik-Singh067/crm-backend/internal/core/domain"
)

// DailyCount is one bucket of a day-grouped count series.
// Day is a UTC calendar day in YYYY-MM-DD form.
type DailyCount struct {
	Day   string `json:"day" bson:"_id"`
	Count int64  `json:"count" bson:"count"`
}

// ClientRepository defines persistence and aggregation over the clients
// collection.
type ClientRepository interface {
	Insert(ctx context.Context, client *domain.Client) error
	FindAll(ctx context.Context) ([]*domain.Client, error)
	// UpdateFields applies fields as a merge-patch ($set) against the record
	// matching id. Fields are written through unchanged; there is no whitelist.
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	// DeleteByID removes at most one record. Deleting an absent id is a no-op.
	DeleteByID(ctx context.Context, id string) error
	CountJoinedBetween(ctx context.Context, from, to time.Time) (int64, error)
	// DailyJoins groups clients joined in [from, to] by calendar day,
	// ascending. Days with no joins are omitted.
	DailyJoins(ctx context.Context, from, to time.Time) ([]DailyCount, error)
}
