package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Hritik-Singh067/crm-backend/internal/core/domain"
)

func TestTrailingMonthWindow(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 45, 12, 0, time.UTC)
	from, to := trailingMonthWindow(now)

	wantFrom := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	wantTo := time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC)
	if !from.Equal(wantFrom) {
		t.Errorf("window start = %v, want %v", from, wantFrom)
	}
	if !to.Equal(wantTo) {
		t.Errorf("window end = %v, want %v", to, wantTo)
	}
}

func TestDashboardService_Stats_RevenueWindows(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	txRepo := &stubTransactionRepo{txs: []*domain.Transaction{
		{StoreID: "s1", UID: "c1", Amount: 100, Date: now.AddDate(0, 0, -5)},
		{StoreID: "s1", UID: "c2", Amount: 50, Date: now.AddDate(0, 0, -10)},
	}}
	clientRepo := &stubClientRepo{}

	svc := NewDashboardService(txRepo, clientRepo, zerolog.Nop()).WithClock(fixedClock(now))
	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}

	// Both transactions fall inside the trailing 30 days.
	if stats.MonthlyRevenue != "150" {
		t.Errorf("monthly revenue = %q, want %q", stats.MonthlyRevenue, "150")
	}

	// Only the 5-days-ago transaction falls inside the trailing 7 days.
	if len(stats.WeeklyRevenue) != 1 {
		t.Fatalf("weekly revenue buckets = %d, want 1", len(stats.WeeklyRevenue))
	}
	bucket := stats.WeeklyRevenue[0]
	wantDay := now.AddDate(0, 0, -5).Format("2006-01-02")
	if bucket.Day != wantDay || bucket.Total != 100 {
		t.Errorf("weekly bucket = %+v, want day %s total 100", bucket, wantDay)
	}
}

func TestDashboardService_Stats_ZeroClientsIsStringZero(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	svc := NewDashboardService(&stubTransactionRepo{}, &stubClientRepo{}, zerolog.Nop()).WithClock(fixedClock(now))

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.MonthlyNewClients != "0" {
		t.Errorf("client count = %q, want the string %q", stats.MonthlyNewClients, "0")
	}
	if stats.MonthlyRevenue != "0" {
		t.Errorf("revenue = %q, want the string %q", stats.MonthlyRevenue, "0")
	}
	if stats.Title == "" {
		t.Errorf("expected a non-empty title")
	}
}

func TestDashboardService_Stats_WeeklyClientSeries(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	clientRepo := &stubClientRepo{clients: []*domain.Client{
		{Email: "a@x.com", JoinedAt: now.AddDate(0, 0, -1)},
		{Email: "b@x.com", JoinedAt: now.AddDate(0, 0, -1)},
		{Email: "c@x.com", JoinedAt: now.AddDate(0, 0, -3)},
		{Email: "old@x.com", JoinedAt: now.AddDate(0, 0, -20)},
	}}

	svc := NewDashboardService(&stubTransactionRepo{}, clientRepo, zerolog.Nop()).WithClock(fixedClock(now))
	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}

	// The 20-days-ago client counts toward the monthly figure but is absent
	// from the weekly series; days with no joins produce no bucket.
	if stats.MonthlyNewClients != "4" {
		t.Errorf("monthly clients = %q, want %q", stats.MonthlyNewClients, "4")
	}
	if len(stats.WeeklyClients) != 2 {
		t.Fatalf("weekly buckets = %d, want 2", len(stats.WeeklyClients))
	}
	first, second := stats.WeeklyClients[0], stats.WeeklyClients[1]
	if first.Day >= second.Day {
		t.Errorf("series not ascending: %s then %s", first.Day, second.Day)
	}
	if first.Count != 1 || second.Count != 2 {
		t.Errorf("unexpected counts: %+v %+v", first, second)
	}
}

func TestDashboardService_Stats_FractionalRevenueRendering(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	txRepo := &stubTransactionRepo{txs: []*domain.Transaction{
		{StoreID: "s1", UID: "c1", Amount: 99.95, Date: now.AddDate(0, 0, -2)},
	}}

	svc := NewDashboardService(txRepo, &stubClientRepo{}, zerolog.Nop()).WithClock(fixedClock(now))
	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.MonthlyRevenue != "99.95" {
		t.Errorf("revenue = %q, want %q", stats.MonthlyRevenue, "99.95")
	}
}
