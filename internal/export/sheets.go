package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"tikang-admin/internal/models"
	"tikang-admin/internal/view"
)

// SheetsExporter pushes the payment ledger into a shared Google spreadsheet
// using a service account.
type SheetsExporter struct {
	service       *sheets.Service
	spreadsheetID string
	logger        *zerolog.Logger
}

func NewSheetsExporter(ctx context.Context, credentialsFile, spreadsheetID string, logger *zerolog.Logger) (*SheetsExporter, error) {
	credentialsJSON, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("unable to read credentials file: %w", err)
	}

	config, err := google.JWTConfigFromJSON(credentialsJSON, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse credentials: %w", err)
	}

	srv, err := sheets.NewService(ctx, option.WithHTTPClient(config.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("unable to create Sheets service: %w", err)
	}

	return &SheetsExporter{
		service:       srv,
		spreadsheetID: spreadsheetID,
		logger:        logger,
	}, nil
}

// TestConnection reads the header cell to confirm the service account has
// access to the spreadsheet.
func (s *SheetsExporter) TestConnection(ctx context.Context) error {
	_, err := s.service.Spreadsheets.Values.Get(s.spreadsheetID, "Transactions!A1").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("connection test failed: %w", err)
	}
	return nil
}

// ServiceAccountEmail reads the client_email from a credentials file so the
// operator knows which account to share the spreadsheet with.
func ServiceAccountEmail(credentialsFile string) (string, error) {
	raw, err := os.ReadFile(credentialsFile)
	if err != nil {
		return "", err
	}

	var creds struct {
		ClientEmail string `json:"client_email"`
	}
	if err := json.Unmarshal(raw, &creds); err != nil {
		return "", err
	}
	if creds.ClientEmail == "" {
		return "", fmt.Errorf("credentials file has no client_email")
	}
	return creds.ClientEmail, nil
}

// ExportTransactions replaces the Transactions sheet with the current ledger.
func (s *SheetsExporter) ExportTransactions(ctx context.Context, transactions []models.Transaction) error {
	rows := TransactionRows(transactions)

	clear := sheets.ClearValuesRequest{}
	if _, err := s.service.Spreadsheets.Values.Clear(s.spreadsheetID, "Transactions!A:H", &clear).Context(ctx).Do(); err != nil {
		return fmt.Errorf("error clearing sheet: %w", err)
	}

	values := &sheets.ValueRange{Values: rows}
	_, err := s.service.Spreadsheets.Values.Update(s.spreadsheetID, "Transactions!A1", values).
		ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("error writing sheet: %w", err)
	}

	s.logger.Info().Int("rows", len(rows)-1).Msg("transactions exported to Google Sheets")
	return nil
}

// TransactionRows builds the sheet rows, header first, newest transactions
// at the top.
func TransactionRows(transactions []models.Transaction) [][]any {
	rows := make([][]any, 0, len(transactions)+1)

	header := make([]any, len(transactionColumns))
	for i, column := range transactionColumns {
		header[i] = column
	}
	rows = append(rows, header)

	for _, t := range view.SortTransactionsByNewest(transactions) {
		bookingID := any("")
		if t.BookingID != nil {
			bookingID = *t.BookingID
		}
		rows = append(rows, []any{
			t.TransactionID, bookingID, t.UserName, t.PaymentMethod,
			float64(t.Subtotal), float64(t.ServiceCharge), float64(t.TotalPayment),
			formatDate(t.CreatedAt),
		})
	}
	return rows
}
