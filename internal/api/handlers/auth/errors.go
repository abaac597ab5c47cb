package auth

import (
	"log/slog"
	"net/http"

	"Inkwell/internal/api/handlers"
	"Inkwell/internal/core/users"
)

// handleServiceError maps user-service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case users.IsInvalidCredentials(err):
		handlers.WriteError(w, http.StatusUnauthorized, err.Error())

	case users.IsValidationError(err):
		handlers.WriteError(w, http.StatusBadRequest, err.Error())

	default:
		slog.Error("unexpected error in auth handler", slog.String("error", err.Error()))
		handlers.WriteError(w, http.StatusInternalServerError, "An internal error occurred")
	}
}
