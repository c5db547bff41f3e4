// Package httpapi exposes the platform over REST: a chi router, JSON
// request/response helpers, and the authentication/authorization guards.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fundacionraices/backend/internal/common"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// writeError maps the service-layer sentinel errors onto HTTP statuses.
// Anything unrecognized becomes a plain 500 with no detail leaked.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: common.ErrorValidation.Error()})
	case errors.Is(err, common.ErrorInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: common.ErrorInvalidCredentials.Error()})
	case errors.Is(err, common.ErrorUnknownAccount):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: common.ErrorUnknownAccount.Error()})
	case errors.Is(err, common.ErrorMissingToken):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: common.ErrorMissingToken.Error()})
	case errors.Is(err, common.ErrorInvalidToken):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: common.ErrorInvalidToken.Error()})
	case errors.Is(err, common.ErrorForbidden):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: common.ErrorForbidden.Error()})
	case errors.Is(err, common.ErrorNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: common.ErrorNotFound.Error()})
	case errors.Is(err, common.ErrorDuplicateAccount):
		writeJSON(w, http.StatusConflict, errorResponse{Error: common.ErrorDuplicateAccount.Error()})
	case errors.Is(err, common.ErrorAlreadyExists):
		writeJSON(w, http.StatusConflict, errorResponse{Error: common.ErrorAlreadyExists.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: common.ErrorInternal.Error()})
	}
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return common.ErrorValidation
	}
	return nil
}
