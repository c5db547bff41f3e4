package models

import "time"

type Sponsor struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Logo      string    `json:"logo"`
	WebURL    string    `json:"webUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Partner struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
