package models

import "time"

type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Date        time.Time `json:"date"`
	Image       string    `json:"image,omitempty"`
}

// Volunteer is a user's volunteer profile. Event assignments live in a
// join table and are loaded on demand.
type Volunteer struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Availability string    `json:"availability,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	EventIDs     []string  `json:"eventIds,omitempty"`
}
