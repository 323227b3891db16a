package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tikang-admin/internal/models"
	"tikang-admin/internal/view"
)

func bookingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "Review bookings and resolve pending payments",
	}
	cmd.AddCommand(bookingsListCmd(app))
	cmd.AddCommand(bookingsAcceptPaymentCmd(app))
	cmd.AddCommand(bookingsDeclinePaymentCmd(app))
	return cmd
}

func bookingsListCmd(app *App) *cobra.Command {
	var bucket string
	var onDate string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bookings, optionally a single bucket or calendar day",
		RunE: func(cmd *cobra.Command, args []string) error {
			bookings, err := app.Bookings.List(cmd.Context())
			if err != nil {
				return err
			}

			if onDate != "" {
				day, err := time.Parse("2006-01-02", onDate)
				if err != nil {
					return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", onDate)
				}
				printBookings(view.BookingsOnDate(bookings, day))
				return nil
			}

			buckets := view.BucketBookings(bookings, time.Now())
			switch bucket {
			case "":
				printBookings(bookings)
			case "upcoming":
				printBookings(buckets.Upcoming)
			case "ongoing":
				printBookings(buckets.Ongoing)
			case "completed":
				printBookings(buckets.Completed)
			case "cancelled":
				printBookings(buckets.Cancelled)
			default:
				return fmt.Errorf("unknown bucket %q (upcoming|ongoing|completed|cancelled)", bucket)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "upcoming, ongoing, completed or cancelled")
	cmd.Flags().StringVar(&onDate, "date", "", "only bookings checking in on this day (YYYY-MM-DD)")
	return cmd
}

func printBookings(bookings []models.Booking) {
	rows := make([][]string, 0, len(bookings))
	for _, b := range bookings {
		rows = append(rows, []string{
			fmt.Sprint(b.BookingID),
			orDash(b.GuestName),
			orDash(b.PropertyName),
			formatDate(b.CheckInDate),
			formatDate(b.CheckOutDate),
			formatMoney(b.TotalPrice),
			orDash(b.Status),
			orDash(b.PaymentState),
		})
	}
	table([]string{"ID", "GUEST", "PROPERTY", "CHECK-IN", "CHECK-OUT", "TOTAL", "STATUS", "PAYMENT"}, rows)
}

func bookingsAcceptPaymentCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "accept-payment <booking-id>",
		Short: "Accept a pending booking payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			bookings, err := app.Bookings.AcceptPayment(cmd.Context(), id)
			if err != nil {
				return err
			}
			printBookings(bookings)
			return nil
		},
	}
}

func bookingsDeclinePaymentCmd(app *App) *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "decline-payment <booking-id>",
		Short: "Decline a pending booking payment with a reason",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			bookings, err := app.Bookings.DeclinePayment(cmd.Context(), id, reason)
			if err != nil {
				return err
			}
			printBookings(bookings)
			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "why the payment is declined")
	return cmd
}
