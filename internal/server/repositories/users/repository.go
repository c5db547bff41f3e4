// Package users provides the credential store: user records keyed by
// email, their password hashes, and their role assignments.
package users

import (
	"context"

	"github.com/fundacionraices/backend/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)

	// GetRoles returns the user's current role set. Route guards call this
	// on every request; role claims are never read from tokens.
	GetRoles(ctx context.Context, userID string) ([]string, error)
	GrantRole(ctx context.Context, userID, role string) error
	RevokeRole(ctx context.Context, userID, role string) error
}
