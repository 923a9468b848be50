package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Quentin-Piot/posts-service/internal/app/domain/post"
	"github.com/Quentin-Piot/posts-service/internal/app/storage"
)

// Store implements the storage interfaces backed by PostgreSQL.
type Store struct {
	db *sql.DB
}

var _ storage.PostStore = (*Store)(nil)

// New creates a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreatePost(ctx context.Context, p post.Post) (post.Post, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO posts (id, title, body, published)
		VALUES ($1, $2, $3, $4)
	`, p.ID, p.Title, p.Body, p.Published)
	if err != nil {
		return post.Post{}, err
	}
	return p, nil
}

func (s *Store) GetPost(ctx context.Context, id uuid.UUID) (post.Post, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, body, published
		FROM posts
		WHERE id = $1
	`, id)

	var p post.Post
	if err := row.Scan(&p.ID, &p.Title, &p.Body, &p.Published); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return post.Post{}, post.NotFoundError{ID: id}
		}
		return post.Post{}, err
	}
	return p, nil
}

func (s *Store) ListPosts(ctx context.Context, filter post.Filter) ([]post.Post, error) {
	query := `SELECT id, title, body, published FROM posts`

	var (
		conds []string
		args  []any
	)
	if filter.Published != nil {
		args = append(args, *filter.Published)
		conds = append(conds, fmt.Sprintf("published = $%d", len(args)))
	}
	if filter.TitleContains != "" {
		args = append(args, "%"+filter.TitleContains+"%")
		conds = append(conds, fmt.Sprintf("title ILIKE $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []post.Post
	for rows.Next() {
		var p post.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Body, &p.Published); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}
