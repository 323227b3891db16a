package service

import (
	"context"
	"strings"

	"tikang-admin/internal/events"
	"tikang-admin/internal/models"
	"tikang-admin/internal/view"
)

// BookingAPI is the slice of the gateway the bookings page uses.
type BookingAPI interface {
	ListBookings(ctx context.Context) ([]models.Booking, error)
	AcceptPayment(ctx context.Context, bookingID int64) error
	DeclinePayment(ctx context.Context, bookingID int64, reason string) error
}

type BookingService struct {
	api  BookingAPI
	core *Core
}

func NewBookingService(api BookingAPI, core *Core) *BookingService {
	return &BookingService{api: api, core: core}
}

// List fetches bookings sorted newest first.
func (s *BookingService) List(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.api.ListBookings(ctx)
	if err != nil {
		return nil, err
	}
	return view.SortBookingsByNewest(bookings), nil
}

// AcceptPayment marks the booking's payment accepted and returns the
// refetched list so the caller renders server state.
func (s *BookingService) AcceptPayment(ctx context.Context, bookingID int64) ([]models.Booking, error) {
	m := mutation{
		action:  "accept_payment",
		target:  "booking",
		id:      bookingID,
		prompt:  "Confirm accepting this payment?",
		success: "Payment accepted successfully.",
		event:   events.EventPaymentAccepted,
	}
	err := s.core.run(ctx, m, func(ctx context.Context) error {
		return s.api.AcceptPayment(ctx, bookingID)
	})
	if err != nil {
		return nil, err
	}
	return s.List(ctx)
}

// DeclinePayment rejects the payment with a reason. An empty reason is
// rejected client-side with no request sent.
func (s *BookingService) DeclinePayment(ctx context.Context, bookingID int64, reason string) ([]models.Booking, error) {
	m := mutation{
		action:  "decline_payment",
		target:  "booking",
		id:      bookingID,
		prompt:  "Decline this payment?",
		success: "Payment declined.",
		event:   events.EventPaymentDeclined,
		payload: events.MutationPayload{Reason: reason},
	}
	if strings.TrimSpace(reason) == "" {
		return nil, s.core.reject(ctx, m, "Please enter a reason.")
	}

	err := s.core.run(ctx, m, func(ctx context.Context) error {
		return s.api.DeclinePayment(ctx, bookingID, reason)
	})
	if err != nil {
		return nil, err
	}
	return s.List(ctx)
}
