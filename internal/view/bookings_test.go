package view

import (
	"testing"
	"time"

	"tikang-admin/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(t *testing.T, value string) models.APITime {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return models.APITime{Time: parsed}
}

func TestOngoingBookingIsNotUpcoming(t *testing.T) {
	// Stay 2025-06-10..2025-06-15 observed on 2025-06-12.
	booking := models.Booking{
		BookingID:    1,
		CheckInDate:  at(t, "2025-06-10"),
		CheckOutDate: at(t, "2025-06-15"),
	}
	now := time.Date(2025, 6, 12, 14, 0, 0, 0, time.UTC)

	assert.True(t, IsOngoing(booking, now))
	assert.False(t, IsUpcoming(booking, now))

	buckets := BucketBookings([]models.Booking{booking}, now)
	assert.Len(t, buckets.Ongoing, 1)
	assert.Empty(t, buckets.Upcoming)
}

func TestUpcomingAndOngoingAreDisjoint(t *testing.T) {
	bookings := []models.Booking{
		{BookingID: 1, CheckInDate: at(t, "2025-06-20"), CheckOutDate: at(t, "2025-06-25")},
		{BookingID: 2, CheckInDate: at(t, "2025-06-01"), CheckOutDate: at(t, "2025-06-30")},
		{BookingID: 3, CheckInDate: at(t, "2025-05-01"), CheckOutDate: at(t, "2025-05-05")},
	}
	now := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)

	for _, b := range bookings {
		assert.False(t, IsUpcoming(b, now) && IsOngoing(b, now),
			"booking %d classified both upcoming and ongoing", b.BookingID)
	}
}

func TestStatusBucketsOverlapTemporalBuckets(t *testing.T) {
	// Cancelled before the stay started: appears under Cancelled and
	// Upcoming at once. The buckets are views, not a partition.
	booking := models.Booking{
		BookingID:    7,
		CheckInDate:  at(t, "2025-07-01"),
		CheckOutDate: at(t, "2025-07-05"),
		Status:       models.BookingStatusCancelled,
	}
	now := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)

	buckets := BucketBookings([]models.Booking{booking}, now)
	assert.Len(t, buckets.Upcoming, 1)
	assert.Len(t, buckets.Cancelled, 1)
	assert.Empty(t, buckets.Completed)
}

func TestCheckInBoundaryIsOngoing(t *testing.T) {
	booking := models.Booking{
		CheckInDate:  at(t, "2025-06-12"),
		CheckOutDate: at(t, "2025-06-15"),
	}
	exactCheckIn := booking.CheckInDate.Time

	assert.True(t, IsOngoing(booking, exactCheckIn))
	assert.False(t, IsUpcoming(booking, exactCheckIn))
}

func TestBucketSkipsBookingsWithoutDates(t *testing.T) {
	booking := models.Booking{BookingID: 9, Status: models.BookingStatusCompleted}
	now := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)

	buckets := BucketBookings([]models.Booking{booking}, now)
	assert.Empty(t, buckets.Ongoing)
	assert.Len(t, buckets.Completed, 1)
}

func TestSortBookingsByNewest(t *testing.T) {
	bookings := []models.Booking{
		{BookingID: 1, CreatedAt: at(t, "2025-06-01")},
		{BookingID: 2, CreatedAt: at(t, "2025-06-10")},
		{BookingID: 3, CreatedAt: at(t, "2025-06-05")},
	}

	sorted := SortBookingsByNewest(bookings)
	assert.Equal(t, int64(2), sorted[0].BookingID)
	assert.Equal(t, int64(3), sorted[1].BookingID)
	assert.Equal(t, int64(1), sorted[2].BookingID)
	// Input untouched.
	assert.Equal(t, int64(1), bookings[0].BookingID)
}

func TestBookingsOnDateIgnoresTimeOfDay(t *testing.T) {
	morning := models.APITime{Time: time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)}
	evening := models.APITime{Time: time.Date(2025, 6, 10, 22, 30, 0, 0, time.UTC)}
	other := models.APITime{Time: time.Date(2025, 6, 11, 8, 0, 0, 0, time.UTC)}

	bookings := []models.Booking{
		{BookingID: 1, CheckInDate: morning},
		{BookingID: 2, CheckInDate: evening},
		{BookingID: 3, CheckInDate: other},
	}

	selected := BookingsOnDate(bookings, time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC))
	require.Len(t, selected, 2)
	assert.Equal(t, int64(1), selected[0].BookingID)
	assert.Equal(t, int64(2), selected[1].BookingID)
}
