package postgres

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/Quentin-Piot/posts-service/internal/app/domain/post"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return New(db), mock
}

func TestCreatePostAssignsID(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("INSERT INTO posts").
		WithArgs(sqlmock.AnyArg(), "title", "body", false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := store.CreatePost(context.Background(), post.Post{Title: "title", Body: "body"})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatalf("expected generated id")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestGetPostMapsNoRowsToNotFound(t *testing.T) {
	store, mock := newMockStore(t)

	id := uuid.New()
	mock.ExpectQuery("SELECT id, title, body, published FROM posts WHERE id = \\$1").
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err := store.GetPost(context.Background(), id)
	if !post.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestGetPostScansRow(t *testing.T) {
	store, mock := newMockStore(t)

	id := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "title", "body", "published"}).
		AddRow(id.String(), "t", "b", true)
	mock.ExpectQuery("SELECT id, title, body, published FROM posts WHERE id = \\$1").
		WithArgs(id).
		WillReturnRows(rows)

	p, err := store.GetPost(context.Background(), id)
	if err != nil {
		t.Fatalf("get post: %v", err)
	}
	if p.ID != id || p.Title != "t" || p.Body != "b" || !p.Published {
		t.Fatalf("unexpected post: %#v", p)
	}
}

func TestListPostsBuildsFilteredQuery(t *testing.T) {
	store, mock := newMockStore(t)

	published := true
	rows := sqlmock.NewRows([]string{"id", "title", "body", "published"}).
		AddRow(uuid.NewString(), "go post", "b", true)
	mock.ExpectQuery(`SELECT id, title, body, published FROM posts WHERE published = \$1 AND title ILIKE \$2`).
		WithArgs(true, "%go%").
		WillReturnRows(rows)

	result, err := store.ListPosts(context.Background(), post.Filter{
		Published:     &published,
		TitleContains: "go",
	})
	if err != nil {
		t.Fatalf("list posts: %v", err)
	}
	if len(result) != 1 || result[0].Title != "go post" {
		t.Fatalf("unexpected result: %#v", result)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestListPostsNoFilterNoWhere(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`^SELECT id, title, body, published FROM posts$`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "body", "published"}))

	result, err := store.ListPosts(context.Background(), post.Filter{})
	if err != nil {
		t.Fatalf("list posts: %v", err)
	}
	if len(result) != 0 {
		t.Fatalf("expected empty result, got %#v", result)
	}
}

func TestStoreIntegration(t *testing.T) {
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set; skipping postgres integration test")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	store := New(db)

	ctx := context.Background()
	created, err := store.CreatePost(ctx, post.Post{Title: "integration", Body: "body"})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	fetched, err := store.GetPost(ctx, created.ID)
	if err != nil {
		t.Fatalf("get post: %v", err)
	}
	if fetched != created {
		t.Fatalf("fetched post differs: %#v vs %#v", fetched, created)
	}

	listed, err := store.ListPosts(ctx, post.Filter{TitleContains: "INTEGRATION"})
	if err != nil {
		t.Fatalf("list posts: %v", err)
	}
	found := false
	for _, p := range listed {
		if p.ID == created.ID {
			found = true
		}
	}
	if !found {
		t.Fatalf("created post missing from case-insensitive listing")
	}
}
