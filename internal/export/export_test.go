package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"tikang-admin/internal/models"
)

func apiTime(t *testing.T, value string) models.APITime {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return models.APITime{Time: parsed}
}

func intPtr(v int64) *int64 { return &v }

func TestWriteSnapshotCreatesWorkbook(t *testing.T) {
	dir := t.TempDir()
	logger := zerolog.Nop()
	writer := NewExcelWriter(dir, &logger)

	now := time.Date(2025, 6, 12, 10, 0, 0, 0, time.UTC)
	bookings := []models.Booking{
		{
			BookingID:    1,
			GuestName:    "Ana Cruz",
			PropertyName: "Seaside Villa",
			CheckInDate:  apiTime(t, "2025-06-20T14:00:00Z"),
			CheckOutDate: apiTime(t, "2025-06-22T12:00:00Z"),
			TotalPrice:   models.Money(3500),
			Status:       models.BookingStatusConfirmed,
			PaymentState: models.PaymentStatusPaid,
		},
		{
			BookingID:    2,
			GuestName:    "Ben Reyes",
			CheckInDate:  apiTime(t, "2025-06-10T14:00:00Z"),
			CheckOutDate: apiTime(t, "2025-06-15T12:00:00Z"),
			Status:       models.BookingStatusConfirmed,
		},
	}
	transactions := []models.Transaction{
		{TransactionID: 10, BookingID: intPtr(1), UserName: "Ana Cruz", Subtotal: 3300, ServiceCharge: 200, TotalPayment: 3500},
	}

	path, err := writer.WriteSnapshot(bookings, transactions, now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "tikang_export_2025-06-12.xlsx"), path)

	_, err = os.Stat(path)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	for _, name := range []string{"Upcoming", "Ongoing", "Completed", "Cancelled", "Transactions"} {
		idx, err := f.GetSheetIndex(name)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, idx, 0, "missing sheet %s", name)
	}

	// Booking 1 is strictly after now, booking 2 spans it.
	upcoming, err := f.GetCellValue("Upcoming", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Ana Cruz", upcoming)

	ongoing, err := f.GetCellValue("Ongoing", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Ben Reyes", ongoing)
}

func TestTransactionRows(t *testing.T) {
	transactions := []models.Transaction{
		{TransactionID: 1, UserName: "older", CreatedAt: apiTime(t, "2025-01-01T00:00:00Z"), TotalPayment: 100},
		{TransactionID: 2, BookingID: intPtr(9), UserName: "newer", CreatedAt: apiTime(t, "2025-02-01T00:00:00Z"), TotalPayment: 200},
	}

	rows := TransactionRows(transactions)
	require.Len(t, rows, 3)
	assert.Equal(t, "Transaction ID", rows[0][0])
	assert.Equal(t, "newer", rows[1][2])
	assert.Equal(t, int64(9), rows[1][1])
	assert.Equal(t, "", rows[2][1])
}

func TestServiceAccountEmail(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "creds.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"client_email":"exports@tikang.iam.gserviceaccount.com"}`), 0o600))

	email, err := ServiceAccountEmail(path)
	require.NoError(t, err)
	assert.Equal(t, "exports@tikang.iam.gserviceaccount.com", email)

	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o600))
	_, err = ServiceAccountEmail(path)
	assert.Error(t, err)
}
