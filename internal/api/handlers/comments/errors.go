package comments

import (
	"log/slog"
	"net/http"

	"Inkwell/internal/api/handlers"
	"Inkwell/internal/core/authz"
	"Inkwell/internal/core/comments"
)

// handleServiceError maps service-layer errors to HTTP responses.
// This follows the error handling pattern from the post handlers.
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case comments.IsNotFound(err):
		handlers.WriteError(w, http.StatusNotFound, err.Error())

	case authz.IsNotAuthor(err):
		handlers.WriteError(w, http.StatusForbidden, err.Error())

	case comments.IsValidationError(err):
		handlers.WriteError(w, http.StatusBadRequest, err.Error())

	default:
		slog.Error("unexpected error in comments handler", slog.String("error", err.Error()))
		handlers.WriteError(w, http.StatusInternalServerError, "An internal error occurred")
	}
}
