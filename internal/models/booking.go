package models

// Booking is a reservation record as returned by /bookings. Temporal state
// (upcoming/ongoing) is derived at render time, never stored.
type Booking struct {
	BookingID    int64   `json:"booking_id"`
	GuestID      int64   `json:"guest_id"`
	GuestName    string  `json:"guest_name"`
	GuestEmail   string  `json:"guest_email"`
	PropertyID   int64   `json:"property_id"`
	PropertyName string  `json:"property_title"`
	RoomID       int64   `json:"room_id"`
	RoomName     string  `json:"room_name"`
	NumGuests    int     `json:"num_guests"`
	CheckInDate  APITime `json:"check_in_date"`
	CheckOutDate APITime `json:"check_out_date"`
	TotalPrice   Money   `json:"total_price"`
	Status       string  `json:"booking_status"`
	PaymentState string  `json:"payment_status"`
	CancelReason string  `json:"cancel_reason,omitempty"`
	CreatedAt    APITime `json:"created_at"`
}

func (b Booking) IsCompleted() bool { return b.Status == BookingStatusCompleted }
func (b Booking) IsCancelled() bool { return b.Status == BookingStatusCancelled }
