// Package runtime wires configuration, persistence, and the HTTP server into
// a runnable application.
package runtime

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	app "github.com/Quentin-Piot/posts-service/internal/app"
	"github.com/Quentin-Piot/posts-service/internal/app/httpapi"
	"github.com/Quentin-Piot/posts-service/internal/app/storage"
	"github.com/Quentin-Piot/posts-service/internal/app/storage/memory"
	"github.com/Quentin-Piot/posts-service/internal/app/storage/postgres"
	"github.com/Quentin-Piot/posts-service/internal/config"
	"github.com/Quentin-Piot/posts-service/internal/middleware"
	"github.com/Quentin-Piot/posts-service/internal/platform/database"
	"github.com/Quentin-Piot/posts-service/internal/platform/migrations"
	"github.com/Quentin-Piot/posts-service/pkg/logger"
)

// Application manages the process lifecycle: database, migrations, HTTP server.
type Application struct {
	cfg        *config.Config
	log        *logger.Logger
	app        *app.Application
	httpServer *http.Server
	db         *sql.DB
}

// NewApplication constructs the application from the provided configuration.
// Migration failures are fatal; an empty database DSN selects the in-memory
// store for local development.
func NewApplication(ctx context.Context, cfg *config.Config) (*Application, error) {
	log := logger.New(logger.LoggingConfig{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})

	var (
		store storage.PostStore
		db    *sql.DB
	)
	if cfg.Database.DSN != "" {
		var err error
		db, err = database.Open(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		if err := migrations.Apply(ctx, db); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply migrations: %w", err)
		}
		store = postgres.New(db)
	} else {
		log.Warn("DATABASE_URL not set; using in-memory store")
		store = memory.New()
	}

	application := app.New(app.Stores{Posts: store}, log)

	handler := httpapi.NewHandler(application)
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, log)
		limiter.StartCleanup(ctx, time.Minute)
		handler = limiter.Handler(handler)
	}
	handler = middleware.RequestLogger(log)(handler)
	handler = middleware.NewCORS(cfg.CORS.AllowedOrigins).Handler(handler)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &Application{
		cfg:        cfg,
		log:        log,
		app:        application,
		httpServer: httpServer,
		db:         db,
	}, nil
}

// App exposes the wired domain services. Mainly used by integration tests.
func (a *Application) App() *app.Application {
	return a.app
}

// Handler exposes the fully wrapped HTTP handler.
func (a *Application) Handler() http.Handler {
	return a.httpServer.Handler
}

// Run starts the HTTP server and blocks until the context is cancelled or the
// server fails.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.log.Infof("HTTP server listening on %s", a.httpServer.Addr)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}

// Shutdown gracefully shuts down the HTTP server and closes the database.
func (a *Application) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.WithError(err).Warn("error closing database connection")
		}
	}

	return nil
}
