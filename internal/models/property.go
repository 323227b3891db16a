package models

// Property is a listed accommodation with its nested rooms.
type Property struct {
	PropertyID int64   `json:"property_id"`
	Title      string  `json:"title"`
	Type       string  `json:"type"`
	Address    string  `json:"address"`
	City       string  `json:"city"`
	Province   string  `json:"province"`
	Country    string  `json:"country"`
	Price      Money   `json:"price"`
	Verified   Flag    `json:"is_verify"`
	OwnerID    int64   `json:"owner_id"`
	OwnerName  string  `json:"owner_name"`
	OwnerEmail string  `json:"owner_email"`
	Thumbnail  string  `json:"thumbnail_url,omitempty"`
	Rooms      []Room  `json:"rooms"`
	CreatedAt  APITime `json:"created_at"`
}

type Room struct {
	RoomID    int64    `json:"room_id"`
	Name      string   `json:"room_name"`
	Price     Money    `json:"room_price"`
	Capacity  int      `json:"max_guests"`
	Amenities []string `json:"amenities"`
	Images    []string `json:"room_images"`
}
