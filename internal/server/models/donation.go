package models

import "time"

// Donation records a contribution. Amount is kept as a decimal string, the
// way the payment provider reports it; the platform never does arithmetic
// on it. UserID is nil for anonymous donations.
type Donation struct {
	ID       string    `json:"id"`
	FullName string    `json:"fullName,omitempty"`
	Email    string    `json:"email,omitempty"`
	Amount   string    `json:"amount"`
	Date     time.Time `json:"date"`
	UserID   *string   `json:"userId,omitempty"`
}
