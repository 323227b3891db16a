package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"tikang-admin/internal/view"
)

func dashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the last-7-day headline numbers",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := app.API.DashboardStats(cmd.Context())
			if err != nil {
				return err
			}
			summary := view.SummarizeDashboard(stats)

			fmt.Printf("Welcome back, %s\n\n", summary.AdminName)
			table([]string{"METRIC", "LAST 7 DAYS"}, [][]string{
				{"Bookings", fmt.Sprint(summary.RecentBookings)},
				{"New users", fmt.Sprint(summary.RecentUsers)},
				{"New listings", fmt.Sprint(summary.RecentListings)},
				{"Payments", fmt.Sprint(summary.RecentPayments)},
				{"Gross", fmt.Sprintf("%.2f", summary.RecentGross)},
				{"Pending listings", fmt.Sprint(summary.PendingListings)},
				{"Tikang cash", fmt.Sprintf("%.2f", summary.TikangCash)},
			})
			return nil
		},
	}
}
