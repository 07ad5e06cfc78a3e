package handler

import (
	"net/http"

	"github.com/kulturboden/api/internal/middleware"
	"github.com/kulturboden/api/internal/service"
)

// AuthHandler serves the back-office session endpoints. The surface is a
// single path discriminated by the action query parameter, matching what
// the admin frontend calls.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates the auth handler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	SessionID string `json:"sessionId"`
	Username  string `json:"username"`
}

// Handle dispatches /auth?action=login|logout|check.
func (h *AuthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Query().Get("action") {
	case "login":
		h.login(w, r)
	case "logout":
		h.logout(w, r)
	case "check":
		h.check(w, r)
	default:
		WriteError(w, http.StatusBadRequest, "unknown action")
	}
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteMethodNotAllowed(w)
		return
	}

	var req loginRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteData(w, http.StatusOK, loginResponse{
		SessionID: result.Token,
		Username:  result.Username,
	})
}

// logout is a client-side token discard; tokens are self-contained and stay
// valid until expiry. Always 200 so a stale client can log out cleanly.
func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteMethodNotAllowed(w)
		return
	}
	WriteData(w, http.StatusOK, map[string]bool{"loggedOut": true})
}

func (h *AuthHandler) check(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteMethodNotAllowed(w)
		return
	}

	claims := h.auth.Validate(r.Header.Get(middleware.SessionHeader))
	if claims == nil {
		WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	WriteData(w, http.StatusOK, map[string]string{"username": claims.Username})
}
