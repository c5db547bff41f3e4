// Package services contains server-side business logic. This file implements
// AuthService, which turns presented credentials (or a pre-verified federated
// identity) into signed session tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/fundacionraices/backend/internal/common"
	"github.com/fundacionraices/backend/internal/server/auth"
	"github.com/fundacionraices/backend/internal/server/config"
	"github.com/fundacionraices/backend/internal/server/models"
	"github.com/fundacionraices/backend/internal/server/repositories/repomanager"
)

// bcryptCost keeps hashing around tens of milliseconds per call, which is
// the point: credential verification is deliberately slow.
const bcryptCost = 10

// RegisterInput carries the sign-up payload. The plaintext password lives
// only on the stack during hashing and is never persisted or returned.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
	Address  string
}

// AuthService provides the authentication operations:
//   - Register: create credential records
//   - Authenticate: verify credentials and mint a session token
//   - AuthenticateFederated: mint a token for a provider-verified email
type AuthService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	jwtSecret     []byte
	tokenValidity time.Duration
}

// NewAuthService constructs an AuthService using repositories and server config.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AuthService {
	return &AuthService{
		db:            db,
		repomanager:   m,
		jwtSecret:     []byte(cfg.JWTSecret),
		tokenValidity: cfg.TokenValidityDuration,
	}
}

// dummyHash is compared against when the email is unknown, so the unknown-email
// and wrong-password paths cost roughly the same.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy-password-for-timing"), bcryptCost)

// Register creates a new credential record. The email must not already exist
// (matched case-insensitively); otherwise common.ErrorDuplicateAccount is
// returned and the existing record is left untouched. The returned user has
// the password hash stripped.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	_, err := repo.GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, common.ErrorDuplicateAccount
	case errors.Is(err, common.ErrorNotFound):
		// proceed
	default:
		return nil, fmt.Errorf("error checking account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		Email:        in.Email,
		PasswordHash: hash,
		Name:         in.Name,
		Phone:        in.Phone,
		Address:      in.Address,
	}
	created, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorDuplicateAccount) {
			return nil, common.ErrorDuplicateAccount
		}
		return nil, fmt.Errorf("error creating account: %w", err)
	}

	created.PasswordHash = nil
	return created, nil
}

// Authenticate verifies the email/password pair and returns a signed session
// token. Unknown email and wrong password both produce
// common.ErrorInvalidCredentials; callers must not be able to tell which
// part failed.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return "", common.ErrorInvalidCredentials
		}
		return "", common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		return "", common.ErrorInvalidCredentials
	}

	return s.generateToken(user)
}

// AuthenticateFederated issues a session token for an email already verified
// by a trusted identity provider. It never creates accounts: an unknown
// email fails with common.ErrorUnknownAccount.
func (s *AuthService) AuthenticateFederated(ctx context.Context, verifiedEmail string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, verifiedEmail)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnknownAccount
		}
		return "", common.ErrorInternal
	}

	return s.generateToken(user)
}

func (s *AuthService) generateToken(user *models.User) (string, error) {
	token, err := auth.GenerateToken(user.ID, user.Email, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}
