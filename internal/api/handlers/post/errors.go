package post

import (
	"log/slog"
	"net/http"

	"Inkwell/internal/api/handlers"
	"Inkwell/internal/core/authz"
	"Inkwell/internal/core/posts"
)

// handleServiceError maps service-layer errors to distinct HTTP statuses:
// not-found 404, not-author 403, validation 400, everything else 500.
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case posts.IsNotFound(err):
		handlers.WriteError(w, http.StatusNotFound, err.Error())

	case authz.IsNotAuthor(err):
		handlers.WriteError(w, http.StatusForbidden, err.Error())

	case posts.IsValidationError(err):
		handlers.WriteError(w, http.StatusBadRequest, err.Error())

	default:
		// Don't leak internal error details to clients
		slog.Error("unexpected error in post handler", slog.String("error", err.Error()))
		handlers.WriteError(w, http.StatusInternalServerError, "An internal error occurred")
	}
}
