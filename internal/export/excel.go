// Package export renders platform collections into Excel workbooks and
// Google Sheets for offline bookkeeping.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"tikang-admin/internal/models"
	"tikang-admin/internal/view"
)

// ExcelWriter produces .xlsx snapshots under the configured export path.
type ExcelWriter struct {
	path   string
	logger *zerolog.Logger
}

func NewExcelWriter(path string, logger *zerolog.Logger) *ExcelWriter {
	return &ExcelWriter{path: path, logger: logger}
}

var bookingColumns = []string{
	"Booking ID", "Guest", "Email", "Property", "Room",
	"Check-in", "Check-out", "Guests", "Total", "Status", "Payment",
}

var transactionColumns = []string{
	"Transaction ID", "Booking ID", "User", "Method",
	"Subtotal", "Service Charge", "Total", "Date",
}

// WriteSnapshot writes bookings (bucketed per sheet) and the payment ledger
// into one workbook and returns the saved file path.
func (w *ExcelWriter) WriteSnapshot(bookings []models.Booking, transactions []models.Transaction, now time.Time) (string, error) {
	if err := os.MkdirAll(w.path, 0o755); err != nil {
		return "", fmt.Errorf("error creating export directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	buckets := view.BucketBookings(bookings, now)
	sheets := []struct {
		name     string
		bookings []models.Booking
	}{
		{"Upcoming", buckets.Upcoming},
		{"Ongoing", buckets.Ongoing},
		{"Completed", buckets.Completed},
		{"Cancelled", buckets.Cancelled},
	}

	for i, sheet := range sheets {
		index, err := f.NewSheet(sheet.name)
		if err != nil {
			return "", fmt.Errorf("error creating sheet: %w", err)
		}
		if i == 0 {
			f.SetActiveSheet(index)
		}
		if err := w.writeBookingSheet(f, sheet.name, sheet.bookings); err != nil {
			return "", err
		}
	}

	if _, err := f.NewSheet("Transactions"); err != nil {
		return "", fmt.Errorf("error creating sheet: %w", err)
	}
	if err := w.writeTransactionSheet(f, "Transactions", transactions); err != nil {
		return "", err
	}

	_ = f.DeleteSheet("Sheet1")

	fileName := fmt.Sprintf("tikang_export_%s.xlsx", now.Format("2006-01-02"))
	filePath := filepath.Join(w.path, fileName)
	if err := f.SaveAs(filePath); err != nil {
		return "", fmt.Errorf("error saving file: %w", err)
	}

	w.logger.Info().Str("file_path", filePath).Msg("Excel export created")
	return filePath, nil
}

func (w *ExcelWriter) writeBookingSheet(f *excelize.File, sheetName string, bookings []models.Booking) error {
	if err := writeHeaderRow(f, sheetName, bookingColumns); err != nil {
		return err
	}

	for i, b := range view.SortBookingsByNewest(bookings) {
		row := i + 2
		values := []any{
			b.BookingID, b.GuestName, b.GuestEmail, b.PropertyName, b.RoomName,
			formatDate(b.CheckInDate), formatDate(b.CheckOutDate),
			b.NumGuests, float64(b.TotalPrice), b.Status, b.PaymentState,
		}
		if err := writeRow(f, sheetName, row, values); err != nil {
			return err
		}
	}

	_ = f.SetColWidth(sheetName, "A", "K", 18)
	return nil
}

func (w *ExcelWriter) writeTransactionSheet(f *excelize.File, sheetName string, transactions []models.Transaction) error {
	if err := writeHeaderRow(f, sheetName, transactionColumns); err != nil {
		return err
	}

	for i, t := range view.SortTransactionsByNewest(transactions) {
		row := i + 2
		bookingID := any("")
		if t.BookingID != nil {
			bookingID = *t.BookingID
		}
		values := []any{
			t.TransactionID, bookingID, t.UserName, t.PaymentMethod,
			float64(t.Subtotal), float64(t.ServiceCharge), float64(t.TotalPayment),
			formatDate(t.CreatedAt),
		}
		if err := writeRow(f, sheetName, row, values); err != nil {
			return err
		}
	}

	gross, charges := view.TransactionTotals(transactions)
	totalRow := len(transactions) + 3
	if err := writeRow(f, sheetName, totalRow, []any{"Totals", "", "", "", "", charges, gross, ""}); err != nil {
		return err
	}

	_ = f.SetColWidth(sheetName, "A", "H", 18)
	return nil
}

func writeHeaderRow(f *excelize.File, sheetName string, columns []string) error {
	style, _ := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	for i, column := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, column); err != nil {
			return err
		}
		_ = f.SetCellStyle(sheetName, cell, cell, style)
	}
	return nil
}

func writeRow(f *excelize.File, sheetName string, row int, values []any) error {
	for i, value := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, value); err != nil {
			return err
		}
	}
	return nil
}

func formatDate(t models.APITime) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
