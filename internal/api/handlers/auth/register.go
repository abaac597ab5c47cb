package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"Inkwell/internal/api/handlers"
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/users"
)

// RegisterHandler handles account creation
type RegisterHandler struct {
	service users.Service
	auth    *middleware.Auth
}

// NewRegisterHandler creates a new handler for registering accounts
func NewRegisterHandler(service users.Service, auth *middleware.Auth) *RegisterHandler {
	return &RegisterHandler{service: service, auth: auth}
}

// RegisterOutput carries the created account and its bearer token
type RegisterOutput struct {
	User  *users.User `json:"user"`
	Token string      `json:"token"`
}

// HandleRegister handles account creation
// POST /api/auth/register
func (h *RegisterHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 16*1024)

	var input users.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.service.Register(r.Context(), input)
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

	handlers.WriteJSON(w, http.StatusCreated, handlers.Envelope{
		Success: true,
		Message: "Account created",
		Data:    RegisterOutput{User: user, Token: token},
	})
}
