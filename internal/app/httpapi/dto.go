package httpapi

import (
	"time"

	"github.com/google/uuid"

	"github.com/Quentin-Piot/posts-service/internal/app/domain/post"
)

// postResponse is the externally-facing shape of a post.
type postResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Published bool      `json:"published"`
}

type listPostsResponse struct {
	Posts []postResponse `json:"posts"`
}

// errorResponse is the JSON body for 404 and 500 responses.
type errorResponse struct {
	Resource   string    `json:"resource"`
	Message    string    `json:"message"`
	HappenedAt time.Time `json:"happened_at"`
}

// badRequestResponse is the JSON body for client input failures.
type badRequestResponse struct {
	Message string `json:"message"`
}

func toPostResponse(p post.Post) postResponse {
	return postResponse{
		ID:        p.ID,
		Title:     p.Title,
		Body:      p.Body,
		Published: p.Published,
	}
}
