package comments

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"Inkwell/internal/api/handlers"
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/comments"
)

// CreateCommentHandler handles comment creation requests
type CreateCommentHandler struct {
	service comments.Service
}

// NewCreateCommentHandler creates a new handler for creating comments
func NewCreateCommentHandler(service comments.Service) *CreateCommentHandler {
	return &CreateCommentHandler{service: service}
}

// CreateCommentInput is the request body for POST /api/comments
type CreateCommentInput struct {
	PostID  string `json:"postId"`
	Content string `json:"content"`
}

// HandleCreate handles comment creation requests
// POST /api/comments
func (h *CreateCommentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	// 100KB is plenty for comments
	r.Body = http.MaxBytesReader(w, r.Body, 100*1024)

	var input CreateCommentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID := middleware.GetUserID(r)
	if userID == "" {
		handlers.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	if _, err := uuid.Parse(input.PostID); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "Valid post ID is required")
		return
	}
	if strings.TrimSpace(input.Content) == "" {
		handlers.WriteError(w, http.StatusBadRequest, "Content is required")
		return
	}

	created, err := h.service.Add(r.Context(), userID, comments.AddRequest{
		PostID:  input.PostID,
		Content: input.Content,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, handlers.Envelope{
		Success: true,
		Message: "Comment added",
		Data:    created,
	})
}
