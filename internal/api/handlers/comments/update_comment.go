package comments

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"Inkwell/internal/api/handlers"
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/comments"
)

// UpdateCommentHandler handles comment edits
type UpdateCommentHandler struct {
	service comments.Service
}

// NewUpdateCommentHandler creates a new handler for editing comments
func NewUpdateCommentHandler(service comments.Service) *UpdateCommentHandler {
	return &UpdateCommentHandler{service: service}
}

// UpdateCommentInput is the request body for PUT /api/comments/{id}
type UpdateCommentInput struct {
	Content string `json:"content"`
}

// HandleUpdate handles author-only comment edits
// PUT /api/comments/{id}
func (h *UpdateCommentHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	commentID := chi.URLParam(r, "id")
	if _, err := uuid.Parse(commentID); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "Invalid comment ID")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 100*1024)

	var input UpdateCommentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID := middleware.GetUserID(r)
	if userID == "" {
		handlers.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	if strings.TrimSpace(input.Content) == "" {
		handlers.WriteError(w, http.StatusBadRequest, "Content is required")
		return
	}

	updated, err := h.service.Edit(r.Context(), commentID, userID, input.Content)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, handlers.Envelope{
		Success: true,
		Message: "Comment updated",
		Data:    updated,
	})
}
