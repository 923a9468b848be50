package post

import "github.com/google/uuid"

// Post is a titled, bodied, publishable text record. The identifier is
// assigned by the server at creation time and never changes.
type Post struct {
	ID        uuid.UUID
	Title     string
	Body      string
	Published bool
}

// Filter narrows a listing. A zero Filter matches every post. Published is an
// exact match, TitleContains a case-insensitive substring match; both are
// ANDed when present.
type Filter struct {
	Published     *bool
	TitleContains string
}
