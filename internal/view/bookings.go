package view

import (
	"sort"
	"time"

	"tikang-admin/internal/models"
)

// BookingBuckets are the display views over one fetched booking list.
// Upcoming and Ongoing are temporal predicates against "now"; Completed and
// Cancelled come straight from the server status. The buckets are
// overlapping views, not a partition: a cancelled booking whose check-in is
// still in the future appears under both Cancelled and Upcoming. Upcoming
// and Ongoing themselves never overlap since check-in precedes check-out.
type BookingBuckets struct {
	Upcoming  []models.Booking
	Ongoing   []models.Booking
	Completed []models.Booking
	Cancelled []models.Booking
}

// SortBookingsByNewest orders a copy of the list descending by creation
// time, ties keeping their fetched order.
func SortBookingsByNewest(bookings []models.Booking) []models.Booking {
	sorted := append([]models.Booking(nil), bookings...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt.Time)
	})
	return sorted
}

// IsUpcoming reports whether the stay starts strictly after now.
func IsUpcoming(b models.Booking, now time.Time) bool {
	return now.Before(b.CheckInDate.Time)
}

// IsOngoing reports whether now falls within [check-in, check-out].
func IsOngoing(b models.Booking, now time.Time) bool {
	if b.CheckInDate.IsZero() || b.CheckOutDate.IsZero() {
		return false
	}
	return !now.Before(b.CheckInDate.Time) && !now.After(b.CheckOutDate.Time)
}

// BucketBookings derives the four display views from a fetched list.
func BucketBookings(bookings []models.Booking, now time.Time) BookingBuckets {
	var buckets BookingBuckets
	for _, b := range bookings {
		if IsUpcoming(b, now) {
			buckets.Upcoming = append(buckets.Upcoming, b)
		}
		if IsOngoing(b, now) {
			buckets.Ongoing = append(buckets.Ongoing, b)
		}
		if b.IsCompleted() {
			buckets.Completed = append(buckets.Completed, b)
		}
		if b.IsCancelled() {
			buckets.Cancelled = append(buckets.Cancelled, b)
		}
	}
	return buckets
}

// BookingsOnDate filters to bookings whose check-in calendar date equals the
// selected day, time-of-day ignored.
func BookingsOnDate(bookings []models.Booking, day time.Time) []models.Booking {
	var selected []models.Booking
	for _, b := range bookings {
		if sameDate(b.CheckInDate.Time, day) {
			selected = append(selected, b)
		}
	}
	return selected
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
