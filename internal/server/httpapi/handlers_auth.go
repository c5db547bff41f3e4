package httpapi

import (
	"net/http"

	"github.com/fundacionraices/backend/internal/common"
	"github.com/fundacionraices/backend/internal/server/services"
)

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type federatedRequest struct {
	Email string `json:"email"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (h *Handlers) signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, common.ErrorValidation)
		return
	}

	user, err := h.Auth.Register(r.Context(), services.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

func (h *Handlers) signin(w http.ResponseWriter, r *http.Request) {
	var req signinRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	token, err := h.Auth.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}

// googleSignin exchanges a provider-verified email for a session token.
// The identity provider assertion is checked at the edge before this
// endpoint is reached; an email without an existing account is rejected,
// never auto-registered.
func (h *Handlers) googleSignin(w http.ResponseWriter, r *http.Request) {
	var req federatedRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Email == "" {
		writeError(w, common.ErrorValidation)
		return
	}

	token, err := h.Auth.AuthenticateFederated(r.Context(), req.Email)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}
