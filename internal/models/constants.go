package models

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusDeclined = "declined"
	PaymentStatusRefunded = "refunded"
)

const (
	UserTypeAdmin = "admin"
	UserTypeOwner = "owner"
	UserTypeGuest = "guest"
)

const (
	WalletTypeDeposit  = "deposit"
	WalletTypeWithdraw = "withdraw"
)

const (
	WalletStatusPending   = "pending"
	WalletStatusCompleted = "completed"
	WalletStatusCancelled = "cancelled"
)

const (
	ReportStatusPending  = "pending"
	ReportStatusResolved = "resolved"
)

// NewUserWindowDays is the trailing window for the "new users" view.
const NewUserWindowDays = 7

// BannerSlots is the fixed number of banner upload slots.
const BannerSlots = 5
