package comments

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"Inkwell/internal/api/handlers"
	"Inkwell/internal/core/comments"
)

// GetCommentsHandler handles listing a post's comments
type GetCommentsHandler struct {
	service comments.Service
}

// NewGetCommentsHandler creates a new handler for listing comments
func NewGetCommentsHandler(service comments.Service) *GetCommentsHandler {
	return &GetCommentsHandler{service: service}
}

// HandleGet lists the comments on a post, oldest first
// GET /api/comments/{postId}
func (h *GetCommentsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postId")
	if _, err := uuid.Parse(postID); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	views, err := h.service.ListForPost(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, handlers.Envelope{
		Success: true,
		Count:   handlers.Count(len(views)),
		Data:    views,
	})
}
