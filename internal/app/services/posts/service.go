package posts

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/Quentin-Piot/posts-service/internal/app/domain/post"
	"github.com/Quentin-Piot/posts-service/internal/app/storage"
	"github.com/Quentin-Piot/posts-service/pkg/logger"
)

// ErrEmptyTitle is returned by Create when the title is empty or whitespace.
var ErrEmptyTitle = errors.New("title must not be empty")

// Service manages post records over a PostStore.
type Service struct {
	store storage.PostStore
	log   *logger.Logger
}

// New constructs a posts service.
func New(store storage.PostStore, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewDefault("posts")
	}
	return &Service{store: store, log: log}
}

// Create persists a new post. The published flag is always false at creation
// time; clients cannot publish through the create path.
func (s *Service) Create(ctx context.Context, title, body string) (post.Post, error) {
	if strings.TrimSpace(title) == "" {
		return post.Post{}, ErrEmptyTitle
	}

	p, err := s.store.CreatePost(ctx, post.Post{
		Title:     title,
		Body:      body,
		Published: false,
	})
	if err != nil {
		return post.Post{}, err
	}

	s.log.WithField("post_id", p.ID).Info("post created")
	return p, nil
}

// Get returns the post with the given id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (post.Post, error) {
	return s.store.GetPost(ctx, id)
}

// List returns every post matching the filter.
func (s *Service) List(ctx context.Context, filter post.Filter) ([]post.Post, error) {
	return s.store.ListPosts(ctx, filter)
}
