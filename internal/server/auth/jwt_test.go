package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/fundacionraices/backend/internal/common"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	userID := "user-123"
	email := "a@x.com"

	tok, err := GenerateToken(userID, email, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	id, err := ParseToken(tok, secret)
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if id.Subject != userID {
		t.Fatalf("subject mismatch: got %q want %q", id.Subject, userID)
	}
	if id.Email != email {
		t.Fatalf("email mismatch: got %q want %q", id.Email, email)
	}
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	tok, err := GenerateToken("u1", "u1@x.com", secret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = ParseToken(tok, secret)
	if !errors.Is(err, common.ErrorInvalidToken) {
		t.Fatalf("expected ErrorInvalidToken for expired token, got %v", err)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("u1", "u1@x.com", []byte("right"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = ParseToken(tok, []byte("wrong"))
	if !errors.Is(err, common.ErrorInvalidToken) {
		t.Fatalf("expected ErrorInvalidToken for bad signature, got %v", err)
	}
}

func TestParseToken_Garbage(t *testing.T) {
	t.Parallel()

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := ParseToken(tok, []byte("secret")); !errors.Is(err, common.ErrorInvalidToken) {
			t.Fatalf("expected ErrorInvalidToken for %q, got %v", tok, err)
		}
	}
}

func TestParseToken_SameErrorForAllFailures(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	expired, _ := GenerateToken("u1", "u1@x.com", secret, -time.Minute)
	forged, _ := GenerateToken("u1", "u1@x.com", []byte("other"), time.Hour)

	_, errExpired := ParseToken(expired, secret)
	_, errForged := ParseToken(forged, secret)
	_, errMalformed := ParseToken("garbage", secret)

	if errExpired.Error() != errForged.Error() || errForged.Error() != errMalformed.Error() {
		t.Fatalf("failure causes must be indistinguishable: %v / %v / %v",
			errExpired, errForged, errMalformed)
	}
}
