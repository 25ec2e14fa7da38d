package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/scholarly/article-api/internal/api"
	apiMiddleware "github.com/scholarly/article-api/internal/api/middleware"
	"github.com/scholarly/article-api/internal/api/shared"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)

	errorMapper := api.NewErrorMapper(app.config.IsDevelopment())

	authHandler := api.NewAuthHandler(app.userService, app.jwtService, errorMapper, app.logger)
	userHandler := api.NewUserHandler(app.userService, app.passwordVerifier, errorMapper, app.logger)
	articleHandler := api.NewArticleHandler(app.articleService, errorMapper, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	// Authentication endpoints (public)
	r.Post("/users/register", authHandler.Register)
	r.Post("/users/login", authHandler.Login)
	r.Post("/users/token", authHandler.RefreshToken)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		// User endpoints
		r.Get("/users/{id}", userHandler.Get)
		r.Put("/users/{id}", userHandler.Update)
		r.Put("/users/{id}/password", userHandler.UpdatePassword)
		r.Delete("/users/{id}", userHandler.Delete)

		// Article endpoints
		r.Post("/articles", articleHandler.Create)
		r.Get("/articles", articleHandler.List)
		r.Get("/articles/{id}", articleHandler.Get)
		r.Put("/articles/{id}", articleHandler.Update)
		r.Delete("/articles/{id}", articleHandler.Delete)
		r.Get("/articles/user/{user_id}", articleHandler.ListByUser)
		r.Get("/articles/search/{user_id}", articleHandler.Search)
	})

	// Landing and health endpoints
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithSuccess(w, r, http.StatusOK, map[string]interface{}{
			"message": "Article API is running",
		})
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
