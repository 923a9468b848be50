package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/Quentin-Piot/posts-service/internal/app/domain/post"
)

// PostStore persists post records.
type PostStore interface {
	// CreatePost inserts a post, assigning an identifier when none is set,
	// and returns the stored record.
	CreatePost(ctx context.Context, p post.Post) (post.Post, error)
	// GetPost returns the post with the given id or post.NotFoundError.
	GetPost(ctx context.Context, id uuid.UUID) (post.Post, error)
	// ListPosts returns every post matching the filter, in no guaranteed
	// order. An empty result is not an error.
	ListPosts(ctx context.Context, filter post.Filter) ([]post.Post, error)
}
