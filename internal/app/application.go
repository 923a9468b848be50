// Package app wires the domain services to their stores.
package app

import (
	"github.com/Quentin-Piot/posts-service/internal/app/services/posts"
	"github.com/Quentin-Piot/posts-service/internal/app/storage"
	"github.com/Quentin-Piot/posts-service/internal/app/storage/memory"
	"github.com/Quentin-Piot/posts-service/pkg/logger"
)

// Stores encapsulates persistence dependencies. Nil stores default to the
// in-memory implementation.
type Stores struct {
	Posts storage.PostStore
}

// Application ties domain services together.
type Application struct {
	log *logger.Logger

	Posts *posts.Service
}

// New builds a fully initialised application with the provided stores.
func New(stores Stores, log *logger.Logger) *Application {
	if log == nil {
		log = logger.NewDefault("app")
	}
	if stores.Posts == nil {
		stores.Posts = memory.New()
	}

	return &Application{
		log:   log,
		Posts: posts.New(stores.Posts, log),
	}
}
