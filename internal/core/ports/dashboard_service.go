package ports

import "context"

// DashboardStats is the aggregate view served at /dashboard.
// MonthlyRevenue and MonthlyNewClients are string-rendered numbers; an empty
// window renders "0". The weekly series omit days with no activity.
type DashboardStats struct {
	Title             string        `json:"title"`
	MonthlyRevenue    string        `json:"monthly_revenue"`
	MonthlyNewClients string        `json:"monthly_new_clients"`
	WeeklyClients     []DailyCount  `json:"weekly_clients"`
	WeeklyRevenue     []DailyAmount `json:"weekly_revenue"`
}

// DashboardService computes the dashboard statistics. All four aggregations
// must complete before a result is returned.
type DashboardService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}
