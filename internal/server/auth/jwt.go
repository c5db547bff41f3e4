// Package auth implements the session token codec: signed, time-bounded
// assertions of identity issued at sign-in and checked by the HTTP guard.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fundacionraices/backend/internal/common"
)

// Claims is the token payload: registered claims plus the user id and email.
// The email is carried for display only; authorization decisions never read
// it, and roles are deliberately not embedded (they are re-fetched from the
// store on every guarded request).
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
	Email  string `json:"email"`
}

// Identity is the decoded, verified result handed to request handlers.
type Identity struct {
	Subject string
	Email   string
}

// GenerateToken signs an HS256 token for the given user with issued-at now
// and expiry now+validityDuration.
func GenerateToken(userID, email string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID: userID,
		Email:  email,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies the signature and validity window of tokenString and
// returns the identity it asserts. Malformed, badly signed, and expired
// tokens all collapse into common.ErrorInvalidToken so that callers cannot
// probe which check failed.
func ParseToken(tokenString string, secretKey []byte) (*Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, common.ErrorInvalidToken
	}

	if !token.Valid || claims.UserID == "" {
		return nil, common.ErrorInvalidToken
	}

	return &Identity{Subject: claims.UserID, Email: claims.Email}, nil
}
