package routes

import (
	"github.com/go-chi/chi/v5"

	authHandlers "Inkwell/internal/api/handlers/auth"
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/users"
)

// RegisterAuthRoutes registers the account endpoints on the router
func RegisterAuthRoutes(r chi.Router, service users.Service, auth *middleware.Auth) {
	registerHandler := authHandlers.NewRegisterHandler(service, auth)
	loginHandler := authHandlers.NewLoginHandler(service, auth)

	r.Post("/api/auth/register", registerHandler.HandleRegister)
	r.Post("/api/auth/login", loginHandler.HandleLogin)
}
