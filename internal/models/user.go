package models

// Admin is the authenticated operator returned by the identity endpoint.
type Admin struct {
	UserID         int64   `json:"user_id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	FullName       string  `json:"full_name"`
	Email          string  `json:"email"`
	UserType       string  `json:"user_type"`
	TikangCash     Money   `json:"tikang_cash"`
	ProfilePicture string  `json:"profile_picture,omitempty"`
	CreatedAt      APITime `json:"created_at"`
}

// User is a platform account (guest, owner or admin) from the user endpoints.
// The verification and blocked flags arrive in mixed encodings and are
// normalized by Flag.
type User struct {
	UserID         int64   `json:"user_id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	FullName       string  `json:"full_name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	UserType       string  `json:"user_type"`
	Address        string  `json:"address,omitempty"`
	City           string  `json:"city,omitempty"`
	Province       string  `json:"province,omitempty"`
	Country        string  `json:"country,omitempty"`
	Age            int     `json:"age,omitempty"`
	EmailVerified  Flag    `json:"email_verify"`
	PhoneVerified  Flag    `json:"phone_verify"`
	UserVerified   Flag    `json:"user_verify"`
	Blocked        Flag    `json:"blocked"`
	ProfilePicture string  `json:"profile_picture,omitempty"`
	LoginTime      APITime `json:"login_time"`
	CreatedAt      APITime `json:"created_at"`
}

func (u User) IsAdmin() bool { return u.UserType == UserTypeAdmin }

// UserReport is an abuse report filed against a user.
type UserReport struct {
	ReportID     int64   `json:"report_id"`
	UserID       int64   `json:"user_id"`
	ReportedName string  `json:"reported_name"`
	SenderID     int64   `json:"sender_id"`
	SenderName   string  `json:"sender_name"`
	Status       string  `json:"status"`
	Comments     string  `json:"comments,omitempty"`
	CreatedAt    APITime `json:"created_at"`
}
