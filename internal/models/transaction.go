package models

// Transaction is a payment ledger row. Booking transactions carry a
// booking_id; wallet top-ups arriving through the same ledger do not.
type Transaction struct {
	TransactionID int64   `json:"transaction_id"`
	BookingID     *int64  `json:"booking_id,omitempty"`
	UserID        int64   `json:"user_id"`
	UserName      string  `json:"user_name"`
	PaymentMethod string  `json:"payment_method"`
	Subtotal      Money   `json:"subtotal"`
	ServiceCharge Money   `json:"service_charge"`
	TotalPayment  Money   `json:"total_payment"`
	CreatedAt     APITime `json:"created_at"`
}

func (t Transaction) IsBookingPayment() bool { return t.BookingID != nil }

// WalletTransaction is a deposit or withdrawal against a user's Tikang cash
// balance, pending admin confirmation. Reference is the receipt image path.
type WalletTransaction struct {
	TransactionID int64   `json:"transaction_id"`
	UserID        int64   `json:"user_id"`
	UserName      string  `json:"user_name"`
	Amount        Money   `json:"amount"`
	Type          string  `json:"type"`
	Status        string  `json:"status"`
	Reference     string  `json:"reference,omitempty"`
	CreatedAt     APITime `json:"created_at"`
}

func (w WalletTransaction) IsPending() bool { return w.Status == WalletStatusPending }

// DashboardStats is the /dashboard-stats aggregate: the admin profile plus
// last-7-day slices of each collection.
type DashboardStats struct {
	Admin        Admin         `json:"admin"`
	Bookings     []Booking     `json:"bookings"`
	Users        []User        `json:"users"`
	Transactions []Transaction `json:"transactions"`
	Properties   []Property    `json:"properties"`
}
