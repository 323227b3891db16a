package view

import "tikang-admin/internal/models"

// DashboardSummary condenses /dashboard-stats into the headline numbers the
// dashboard cards show.
type DashboardSummary struct {
	AdminName       string
	TikangCash      float64
	RecentBookings  int
	RecentUsers     int
	RecentListings  int
	RecentPayments  int
	RecentGross     float64
	PendingListings int
}

func SummarizeDashboard(stats *models.DashboardStats) DashboardSummary {
	summary := DashboardSummary{
		AdminName:      stats.Admin.FullName,
		TikangCash:     stats.Admin.TikangCash.Float64(),
		RecentBookings: len(stats.Bookings),
		RecentUsers:    len(stats.Users),
		RecentListings: len(stats.Properties),
		RecentPayments: len(stats.Transactions),
	}
	gross, _ := TransactionTotals(stats.Transactions)
	summary.RecentGross = gross
	summary.PendingListings = len(BucketProperties(stats.Properties).Pending)
	return summary
}
