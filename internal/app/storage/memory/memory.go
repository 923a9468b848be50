package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/Quentin-Piot/posts-service/internal/app/domain/post"
	"github.com/Quentin-Piot/posts-service/internal/app/storage"
)

// Store is an in-memory implementation of the storage interfaces. It is safe
// for concurrent use and is primarily intended for tests and local development.
type Store struct {
	mu    sync.RWMutex
	posts map[uuid.UUID]post.Post
}

var _ storage.PostStore = (*Store)(nil)

// New creates an empty store.
func New() *Store {
	return &Store{posts: make(map[uuid.UUID]post.Post)}
}

func (s *Store) CreatePost(ctx context.Context, p post.Post) (post.Post, error) {
	_ = ctx
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts[p.ID] = p
	return p, nil
}

func (s *Store) GetPost(ctx context.Context, id uuid.UUID) (post.Post, error) {
	_ = ctx

	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.posts[id]
	if !ok {
		return post.Post{}, post.NotFoundError{ID: id}
	}
	return p, nil
}

func (s *Store) ListPosts(ctx context.Context, filter post.Filter) ([]post.Post, error) {
	_ = ctx

	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []post.Post
	for _, p := range s.posts {
		if matches(p, filter) {
			result = append(result, p)
		}
	}
	return result, nil
}

func matches(p post.Post, filter post.Filter) bool {
	if filter.Published != nil && p.Published != *filter.Published {
		return false
	}
	if filter.TitleContains != "" &&
		!strings.Contains(strings.ToLower(p.Title), strings.ToLower(filter.TitleContains)) {
		return false
	}
	return true
}
