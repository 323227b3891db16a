package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tikang-admin/internal/export"
)

func exportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export collections for offline bookkeeping",
	}
	cmd.AddCommand(exportExcelCmd(app))
	cmd.AddCommand(exportSheetsCmd(app))
	return cmd
}

func exportExcelCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "excel",
		Short: "Write bookings and payments into an .xlsx workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			bookings, err := app.Bookings.List(ctx)
			if err != nil {
				return err
			}
			transactions, err := app.API.ListTransactions(ctx)
			if err != nil {
				return err
			}

			path, err := app.Excel.WriteSnapshot(bookings, transactions, time.Now())
			if err != nil {
				return err
			}
			fmt.Println("Export written to", path)
			return nil
		},
	}
}

func exportSheetsCmd(app *App) *cobra.Command {
	var showEmail bool

	cmd := &cobra.Command{
		Use:   "sheets",
		Short: "Push the payment ledger into the shared Google spreadsheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			google := app.Config.Google
			if google.CredentialsFile == "" || google.TransactionsSpreadsheetID == "" {
				return fmt.Errorf("google credentials_file and transactions_spreadsheet_id must be configured")
			}

			if showEmail {
				email, err := export.ServiceAccountEmail(google.CredentialsFile)
				if err != nil {
					return err
				}
				fmt.Println("Share the spreadsheet with:", email)
				return nil
			}

			ctx := cmd.Context()
			exporter, err := export.NewSheetsExporter(ctx, google.CredentialsFile, google.TransactionsSpreadsheetID, app.Logger)
			if err != nil {
				return err
			}
			if err := exporter.TestConnection(ctx); err != nil {
				return err
			}

			transactions, err := app.API.ListTransactions(ctx)
			if err != nil {
				return err
			}
			if err := exporter.ExportTransactions(ctx, transactions); err != nil {
				return err
			}
			fmt.Printf("Exported %d transactions.\n", len(transactions))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showEmail, "service-account", false, "print the service account email and exit")
	return cmd
}
