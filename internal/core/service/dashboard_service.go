package service

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/Hritik-Singh067/crm-backend/internal/core/ports"
)

const dashboardTitle = "Welcome to CRM"

// DashboardService computes the four dashboard aggregates by delegating to
// the store's aggregation pipelines. The clock is injectable so tests can
// pin "now".
type DashboardService struct {
	transactions ports.TransactionRepository
	clients      ports.ClientRepository
	logger       zerolog.Logger
	now          func() time.Time
}

func NewDashboardService(transactions ports.TransactionRepository, clients ports.ClientRepository, logger zerolog.Logger) *DashboardService {
	return &DashboardService{
		transactions: transactions,
		clients:      clients,
		logger:       logger,
		now:          time.Now,
	}
}

// WithClock overrides the service clock. Intended for tests.
func (s *DashboardService) WithClock(now func() time.Time) *DashboardService {
	s.now = now
	return s
}

// Stats runs all four aggregations and reshapes the results. The monthly
// figures are string-rendered; empty windows render "0". The weekly series
// omit days with no activity rather than zero-filling them.
func (s *DashboardService) Stats(ctx context.Context) (*ports.DashboardStats, error) {
	now := s.now().UTC()
	monthFrom, monthTo := trailingMonthWindow(now)
	weekFrom := now.AddDate(0, 0, -7)

	revenue, err := s.transactions.RevenueTotal(ctx, monthFrom, monthTo)
	if err != nil {
		return nil, err
	}

	clientCount, err := s.clients.CountJoinedBetween(ctx, monthFrom, monthTo)
	if err != nil {
		return nil, err
	}

	weeklyClients, err := s.clients.DailyJoins(ctx, weekFrom, now)
	if err != nil {
		return nil, err
	}

	weeklyRevenue, err := s.transactions.DailyRevenue(ctx, weekFrom, now)
	if err != nil {
		return nil, err
	}

	return &ports.DashboardStats{
		Title:             dashboardTitle,
		MonthlyRevenue:    strconv.FormatFloat(revenue, 'f', -1, 64),
		MonthlyNewClients: strconv.FormatInt(clientCount, 10),
		WeeklyClients:     weeklyClients,
		WeeklyRevenue:     weeklyRevenue,
	}, nil
}

// trailingMonthWindow spans from one calendar month ago at 00:00:00 to
// today at 23:59:59, both UTC.
func trailingMonthWindow(now time.Time) (time.Time, time.Time) {
	start := now.AddDate(0, -1, 0)
	from := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, time.UTC)
	return from, to
}
