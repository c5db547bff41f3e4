package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fundacionraices/backend/internal/server/models"
	"github.com/fundacionraices/backend/internal/server/repositories/repomanager"
)

// UserService exposes account administration: listing accounts and managing
// role assignments. Role grants and revocations take effect on the next
// guarded request, because guards re-fetch roles from the store every time.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager) *UserService {
	return &UserService{db: db, repomanager: m}
}

// List returns all accounts with their role sets. Password hashes are not
// part of the listing query at all.
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	repo := s.repomanager.Users(s.db)

	result, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing accounts: %w", err)
	}

	for _, user := range result {
		roles, err := repo.GetRoles(ctx, user.ID)
		if err != nil {
			return nil, fmt.Errorf("error loading roles: %w", err)
		}
		user.Roles = roles
	}
	return result, nil
}

// Get returns a single account with its roles, hash stripped.
func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = nil

	roles, err := repo.GetRoles(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("error loading roles: %w", err)
	}
	user.Roles = roles
	return user, nil
}

// Roles returns the user's current role set.
func (s *UserService) Roles(ctx context.Context, userID string) ([]string, error) {
	return s.repomanager.Users(s.db).GetRoles(ctx, userID)
}

// GrantRole adds a role to a user. Granting an already-held role is a no-op.
func (s *UserService) GrantRole(ctx context.Context, userID, role string) error {
	return s.repomanager.Users(s.db).GrantRole(ctx, userID, role)
}

// RevokeRole removes a role from a user. Already-issued tokens are not
// revoked; the next guarded request simply sees the reduced role set.
func (s *UserService) RevokeRole(ctx context.Context, userID, role string) error {
	return s.repomanager.Users(s.db).RevokeRole(ctx, userID, role)
}
