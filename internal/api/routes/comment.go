package routes

import (
	"github.com/go-chi/chi/v5"

	"Inkwell/internal/api/handlers/comments"
	"Inkwell/internal/api/middleware"
	commentsCore "Inkwell/internal/core/comments"
)

// RegisterCommentRoutes registers comment endpoints on the router.
// Reading a post's comments is public; every write requires authentication.
func RegisterCommentRoutes(r chi.Router, service commentsCore.Service, auth *middleware.Auth) {
	getHandler := comments.NewGetCommentsHandler(service)
	createHandler := comments.NewCreateCommentHandler(service)
	updateHandler := comments.NewUpdateCommentHandler(service)
	deleteHandler := comments.NewDeleteCommentHandler(service)
	likeHandler := comments.NewLikeCommentHandler(service)

	r.Get("/api/comments/{postId}", getHandler.HandleGet)
	r.With(auth.RequireAuth).Post("/api/comments", createHandler.HandleCreate)
	r.With(auth.RequireAuth).Put("/api/comments/{id}", updateHandler.HandleUpdate)
	r.With(auth.RequireAuth).Delete("/api/comments/{id}", deleteHandler.HandleDelete)
	r.With(auth.RequireAuth).Post("/api/comments/{id}/like", likeHandler.HandleLike)
}
