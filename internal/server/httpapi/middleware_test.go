package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fundacionraices/backend/internal/logging"
	"github.com/fundacionraices/backend/internal/server/auth"
	"github.com/fundacionraices/backend/internal/server/models"
)

var testSecret = []byte("test-secret")

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewJSONHandler(io.Discard, nil)))
}

// fakeRoles is an in-memory RolesSource the gate tests mutate mid-flight.
type fakeRoles struct {
	roles map[string][]string
	err   error
}

func (f *fakeRoles) Roles(ctx context.Context, userID string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.roles[userID], nil
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func doRequest(t *testing.T, h http.Handler, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestAuthn_MissingToken(t *testing.T) {
	h := Authn(testSecret)(okHandler())

	rec := doRequest(t, h, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "missing token", errorBody(t, rec))
}

func TestAuthn_InvalidTokensCollapse(t *testing.T) {
	h := Authn(testSecret)(okHandler())

	garbage := doRequest(t, h, "not-a-jwt")

	wrongKey, err := auth.GenerateToken("u1", "a@b.c", []byte("other-secret"), time.Hour)
	require.NoError(t, err)
	badSig := doRequest(t, h, wrongKey)

	expiredTok, err := auth.GenerateToken("u1", "a@b.c", testSecret, -time.Minute)
	require.NoError(t, err)
	expired := doRequest(t, h, expiredTok)

	for _, rec := range []*httptest.ResponseRecorder{garbage, badSig, expired} {
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "invalid token", errorBody(t, rec))
	}
}

func TestAuthn_ValidTokenInjectsIdentity(t *testing.T) {
	var got *auth.Identity
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = IdentityFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	h := Authn(testSecret)(inner)

	token, err := auth.GenerateToken("u42", "ana@example.org", testSecret, time.Hour)
	require.NoError(t, err)

	rec := doRequest(t, h, token)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, "u42", got.Subject)
	assert.Equal(t, "ana@example.org", got.Email)
}

func TestRequireRoles_GrantTakesEffectWithSameToken(t *testing.T) {
	roles := &fakeRoles{roles: map[string][]string{}}
	h := Authn(testSecret)(RequireRoles(roles, testLogger(), models.RoleAdmin)(okHandler()))

	token, err := auth.GenerateToken("u1", "a@b.c", testSecret, time.Hour)
	require.NoError(t, err)

	rec := doRequest(t, h, token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "forbidden", errorBody(t, rec))

	// grant the role in the store; the very same token must now pass
	roles.roles["u1"] = []string{models.RoleAdmin}
	rec = doRequest(t, h, token)
	assert.Equal(t, http.StatusOK, rec.Code)

	// and a revocation locks the token out again
	roles.roles["u1"] = nil
	rec = doRequest(t, h, token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoles_AnyOfAllowed(t *testing.T) {
	roles := &fakeRoles{roles: map[string][]string{"u1": {models.RoleVolunteer}}}
	h := Authn(testSecret)(RequireRoles(roles, testLogger(), models.RoleAdmin, models.RoleVolunteer)(okHandler()))

	token, err := auth.GenerateToken("u1", "a@b.c", testSecret, time.Hour)
	require.NoError(t, err)

	rec := doRequest(t, h, token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoles_StoreFailureIs500(t *testing.T) {
	roles := &fakeRoles{err: errors.New("connection refused")}
	h := Authn(testSecret)(RequireRoles(roles, testLogger(), models.RoleAdmin)(okHandler()))

	token, err := auth.GenerateToken("u1", "a@b.c", testSecret, time.Hour)
	require.NoError(t, err)

	rec := doRequest(t, h, token)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// no internal detail leaks
	assert.Equal(t, "internal error", errorBody(t, rec))
}

func TestRequireRoles_WithoutAuthn(t *testing.T) {
	roles := &fakeRoles{}
	h := RequireRoles(roles, testLogger(), models.RoleAdmin)(okHandler())

	rec := doRequest(t, h, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
