package models

import "time"

// Session is the persisted authentication snapshot: one bearer token plus the
// admin profile fetched with it. A zero Token means logged out.
type Session struct {
	Token   string    `json:"token"`
	Admin   *Admin    `json:"admin,omitempty"`
	SavedAt time.Time `json:"saved_at"`
}

func (s *Session) LoggedIn() bool {
	return s != nil && s.Token != ""
}
