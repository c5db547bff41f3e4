// Package models holds the persistence-level types shared by repositories
// and services.
package models

import "time"

// User is the credential record: the stored identity for a platform account.
// PasswordHash is a salted one-way hash; it is never logged and never
// serialized to clients.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash []byte    `json:"-"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	Roles        []string  `json:"roles,omitempty"`
}

// Role names used by route guards. A user may hold zero or more.
const (
	RoleAdmin     = "Admin"
	RoleVolunteer = "Volunteer"
	RolePartner   = "Partner"
)
