package post

import (
	"net/http"

	"Inkwell/internal/api/handlers"
	"Inkwell/internal/core/posts"
)

// ListHandler handles the aggregated post listing
type ListHandler struct {
	service posts.Service
}

// NewListHandler creates a new handler for listing posts
func NewListHandler(service posts.Service) *ListHandler {
	return &ListHandler{service: service}
}

// HandleList handles the public aggregated listing
// GET /api/posts
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	views, err := h.service.ListAggregated(r.Context())
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
