package comments

import "context"

// PostChecker validates that the post a comment references exists.
// Satisfied by the post repository; keeps this package free of a
// dependency on the posts domain.
type PostChecker interface {
	Exists(ctx context.Context, postID string) (bool, error)
}

// Service defines the business logic interface for comments
type Service interface {
	// Add creates a comment on an existing post. Fails with ErrPostNotFound
	// if the referenced post is missing.
	Add(ctx context.Context, userID string, req AddRequest) (*Comment, error)

	// ListForPost returns a post's comments with author username and display
	// timestamps, oldest first.
	ListForPost(ctx context.Context, postID string) ([]*CommentView, error)

	// Edit replaces the comment's content. Author-only.
	Edit(ctx context.Context, commentID, userID, content string) (*Comment, error)

	// Delete removes a comment. Author-only.
	Delete(ctx context.Context, commentID, userID string) error

	// ToggleLike flips the user's membership in the comment's like-set.
	ToggleLike(ctx context.Context, commentID, userID string) (*ToggleResult, error)
}

// Repository defines the data access interface for comments
type Repository interface {
	Create(ctx context.Context, comment *Comment) error

	// GetByID returns ErrNotFound if no comment has the given id
	GetByID(ctx context.Context, id string) (*Comment, error)

	// ListByPost returns a post's comments joined with the author's
	// username, ordered by created_at ascending
	ListByPost(ctx context.Context, postID string) ([]*CommentWithAuthor, error)

	// UpdateContent replaces the content and bumps updated_at.
	// Returns ErrNotFound if the comment does not exist.
	UpdateContent(ctx context.Context, id, content string) (*Comment, error)

	Delete(ctx context.Context, id string) error

	// ToggleLike flips (commentID, userID) membership in the like-set and
	// reports the resulting state: true if the row now exists.
	ToggleLike(ctx context.Context, commentID, userID string) (bool, error)
}
