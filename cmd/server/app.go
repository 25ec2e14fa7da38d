package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/scholarly/article-api/internal/config"
	"github.com/scholarly/article-api/internal/platform/postgres"
	"github.com/scholarly/article-api/internal/service"
	"github.com/scholarly/article-api/internal/service/auth"
	"github.com/scholarly/article-api/internal/store"
)

// application holds the shared application dependencies to simplify wiring
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore    store.UserStore
	articleStore store.ArticleStore

	// Service interfaces
	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
	userService      service.UserService
	articleService   service.ArticleService
}

// newApplication creates a new application instance with all dependencies
// initialized. Configuration, logging, and the database connection must be
// established before this is called.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"access_token_lifetime_seconds", cfg.Auth.AccessTokenLifetimeSeconds,
		"refresh_token_lifetime_seconds", cfg.Auth.RefreshTokenLifetimeSeconds)

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	app.passwordHasher = hasher
	app.passwordVerifier = hasher

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.articleStore = postgres.NewPostgresArticleStore(db, logger)

	app.userService = service.NewUserService(
		app.userStore,
		app.passwordHasher,
		app.passwordVerifier,
		db,
		logger,
	)
	app.articleService = service.NewArticleService(
		app.articleStore,
		app.userStore,
		logger,
	)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
