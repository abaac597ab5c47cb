package routes

import (
	"github.com/go-chi/chi/v5"

	"Inkwell/internal/api/handlers/post"
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/posts"
)

// RegisterPostRoutes registers post endpoints on the router.
// The listing is public; every write requires authentication.
func RegisterPostRoutes(r chi.Router, service posts.Service, auth *middleware.Auth) {
	listHandler := post.NewListHandler(service)
	createHandler := post.NewCreateHandler(service)
	updateHandler := post.NewUpdateHandler(service)
	deleteHandler := post.NewDeleteHandler(service)
	likeHandler := post.NewLikeHandler(service)

	r.Get("/api/posts", listHandler.HandleList)
	r.With(auth.RequireAuth).Post("/api/posts", createHandler.HandleCreate)
	r.With(auth.RequireAuth).Put("/api/posts/{id}", updateHandler.HandleUpdate)
	r.With(auth.RequireAuth).Delete("/api/posts/{id}", deleteHandler.HandleDelete)
	r.With(auth.RequireAuth).Post("/api/posts/{id}/like", likeHandler.HandleLike)
}
