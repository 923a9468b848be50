package post

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// NotFoundError reports a point lookup that matched no stored post.
type NotFoundError struct {
	ID uuid.UUID
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("post %s not found", e.ID)
}

// IsNotFound reports whether err is, or wraps, a NotFoundError.
func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}
