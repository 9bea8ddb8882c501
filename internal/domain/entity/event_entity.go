package entity

import "time"

// Event is a bookable event. Events are created once and never updated or
// deleted; CreatorID always references an existing User.
type Event struct {
	ID          string
	Title       string
	Description string
	Price       float64
	Date        time.Time
	CreatorID   string
	CreatedAt   time.Time
}
