package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"tikang-admin/internal/models"
	"tikang-admin/internal/view"
)

func transactionsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "Review the payment ledger",
	}
	cmd.AddCommand(transactionsListCmd(app))
	return cmd
}

func transactionsListCmd(app *App) *cobra.Command {
	var bookingOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List payments, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			transactions, err := app.API.ListTransactions(cmd.Context())
			if err != nil {
				return err
			}
			sorted := view.SortTransactionsByNewest(transactions)
			if bookingOnly {
				sorted, _ = view.SplitTransactions(sorted)
			}
			printTransactions(sorted)

			gross, charges := view.TransactionTotals(sorted)
			fmt.Printf("\nGross: %.2f  Service charges: %.2f\n", gross, charges)
			return nil
		},
	}

	cmd.Flags().BoolVar(&bookingOnly, "bookings", false, "only booking payments")
	return cmd
}

func printTransactions(transactions []models.Transaction) {
	rows := make([][]string, 0, len(transactions))
	for _, t := range transactions {
		bookingID := "-"
		if t.BookingID != nil {
			bookingID = fmt.Sprint(*t.BookingID)
		}
		rows = append(rows, []string{
			fmt.Sprint(t.TransactionID),
			bookingID,
			orDash(t.UserName),
			orDash(t.PaymentMethod),
			formatMoney(t.Subtotal),
			formatMoney(t.ServiceCharge),
			formatMoney(t.TotalPayment),
			formatTime(t.CreatedAt),
		})
	}
	table([]string{"ID", "BOOKING", "USER", "METHOD", "SUBTOTAL", "CHARGE", "TOTAL", "DATE"}, rows)
}

func walletCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Confirm or cancel Tikang cash requests",
	}
	cmd.AddCommand(walletListCmd(app))
	cmd.AddCommand(walletAcceptCmd(app))
	cmd.AddCommand(walletCancelCmd(app))
	return cmd
}

func walletListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pending wallet requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				transactions []models.WalletTransaction
				err          error
			)
			if all {
				transactions, err = app.Wallet.List(cmd.Context())
			} else {
				transactions, err = app.Wallet.Pending(cmd.Context())
			}
			if err != nil {
				return err
			}
			printWallet(transactions)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include resolved requests")
	return cmd
}

func printWallet(transactions []models.WalletTransaction) {
	rows := make([][]string, 0, len(transactions))
	for _, t := range transactions {
		rows = append(rows, []string{
			fmt.Sprint(t.TransactionID),
			orDash(t.UserName),
			orDash(t.Type),
			formatMoney(t.Amount),
			orDash(t.Status),
			formatTime(t.CreatedAt),
		})
	}
	table([]string{"ID", "USER", "TYPE", "AMOUNT", "STATUS", "DATE"}, rows)
}

func walletAcceptCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "accept <transaction-id>",
		Short: "Confirm a wallet request and apply it to the balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			pending, err := app.Wallet.Pending(cmd.Context())
			if err != nil {
				return err
			}
			for _, tx := range pending {
				if tx.TransactionID == id {
					transactions, err := app.Wallet.Accept(cmd.Context(), tx)
					if err != nil {
						return err
					}
					printWallet(transactions)
					return nil
				}
			}
			return fmt.Errorf("no pending wallet transaction %d", id)
		},
	}
}

func walletCancelCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <transaction-id>",
		Short: "Cancel a wallet request without touching the balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			transactions, err := app.Wallet.Cancel(cmd.Context(), id)
			if err != nil {
				return err
			}
			printWallet(transactions)
			return nil
		},
	}
}
