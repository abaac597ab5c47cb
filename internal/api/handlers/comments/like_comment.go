package comments

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"Inkwell/internal/api/handlers"
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/comments"
)

// LikeCommentHandler handles like toggles on comments
type LikeCommentHandler struct {
	service comments.Service
}

// NewLikeCommentHandler creates a new handler for toggling comment likes
func NewLikeCommentHandler(service comments.Service) *LikeCommentHandler {
	return &LikeCommentHandler{service: service}
}

// HandleLike flips the caller's membership in the comment's like-set
// POST /api/comments/{id}/like
func (h *LikeCommentHandler) HandleLike(w http.ResponseWriter, r *http.Request) {
	commentID := chi.URLParam(r, "id")
	if _, err := uuid.Parse(commentID); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "Invalid comment ID")
		return
	}

	userID := middleware.GetUserID(r)
	if userID == "" {
		handlers.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	result, err := h.service.ToggleLike(r.Context(), commentID, userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, handlers.Envelope{
		Success: true,
		Message: result.Message,
		Data:    result.Comment,
	})
}
