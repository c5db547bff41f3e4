package models

import "time"

// News is a published article. At least the primary image is required on
// creation; the others are optional.
type News struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	PrimaryImage   string    `json:"primaryImage"`
	SecondaryImage string    `json:"secondaryImage,omitempty"`
	TertiaryImage  string    `json:"tertiaryImage,omitempty"`
	Date           time.Time `json:"date"`
}
