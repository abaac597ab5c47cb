package post

import (
	"encoding/json"
	"net/http"
	"strings"

	"Inkwell/internal/api/handlers"
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/posts"
)

// CreateHandler handles post creation requests
type CreateHandler struct {
	service posts.Service
}

// NewCreateHandler creates a new handler for creating posts
func NewCreateHandler(service posts.Service) *CreateHandler {
	return &CreateHandler{service: service}
}

// CreateInput is the request body for POST /api/posts
type CreateInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// HandleCreate handles post creation requests
// POST /api/posts
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var input CreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID := middleware.GetUserID(r)
	if userID == "" {
		handlers.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	// Reject empty required fields before the service layer runs
	if strings.TrimSpace(input.Title) == "" {
		handlers.WriteError(w, http.StatusBadRequest, "Title is required")
		return
	}
	if strings.TrimSpace(input.Content) == "" {
		handlers.WriteError(w, http.StatusBadRequest, "Content is required")
		return
	}

	created, err := h.service.Create(r.Context(), posts.CreateRequest{
		Title:    input.Title,
		Content:  input.Content,
		AuthorID: userID,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, handlers.Envelope{
		Success: true,
		Message: "Post created",
		Data:    created,
	})
}
