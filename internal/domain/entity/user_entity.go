package entity

import "time"

// User is the aggregate root for the user domain.
// Password holds the bcrypt hash; the plaintext is never stored and the field
// is suppressed in every API response.
type User struct {
	ID            string
	Email         string
	Password      string
	CreatedEvents []string // event ids in creation order, append-only
	CreatedAt     time.Time
}
