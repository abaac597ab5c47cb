package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"Inkwell/internal/api/handlers"
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/users"
)

// LoginHandler handles credential verification and token issuing
type LoginHandler struct {
	service users.Service
	auth    *middleware.Auth
}

// NewLoginHandler creates a new handler for logging in
func NewLoginHandler(service users.Service, auth *middleware.Auth) *LoginHandler {
	return &LoginHandler{service: service, auth: auth}
}

// LoginOutput carries the account and its bearer token
type LoginOutput struct {
	User  *users.User `json:"user"`
	Token string      `json:"token"`
}

// HandleLogin handles credential verification
// POST /api/auth/login
func (h *LoginHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 16*1024)

	var input users.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.service.Login(r.Context(), input)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	token, err := h.auth.IssueToken(user.ID)
	if err != nil {
		slog.Error("failed to issue token", slog.String("error", err.Error()))
		handlers.WriteError(w, http.StatusInternalServerError, "An internal error occurred")
		return
	}

	handlers.WriteJSON(w, http.StatusOK, handlers.Envelope{
		Success: true,
		Message: "Logged in",
		Data:    LoginOutput{User: user, Token: token},
	})
}
