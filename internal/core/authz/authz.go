package authz

import "errors"

// ErrNotAuthor indicates the acting user is not the stored author of the
// resource they are trying to mutate.
var ErrNotAuthor = errors.New("not authorized: user is not the author")

// RequireAuthor enforces author-only mutations. Both the post and comment
// services use this single comparison; there is no per-entity variant.
func RequireAuthor(authorID, userID string) error {
	if authorID != userID {
		return ErrNotAuthor
	}
	return nil
}

// IsNotAuthor checks if error is an ownership failure
func IsNotAuthor(err error) bool {
	return errors.Is(err, ErrNotAuthor)
}
