package posts

import "context"

// Service defines the business logic interface for posts
type Service interface {
	// Create stores a new post with an empty like-set and server timestamps
	Create(ctx context.Context, req CreateRequest) (*Post, error)

	// ListAggregated returns all posts joined with their author summary and
	// derived comment/like counts, newest first. Read-only; never mutates.
	ListAggregated(ctx context.Context) ([]*AggregatedPostView, error)

	// ToggleLike flips the user's membership in the post's like-set.
	// Each call flips state exactly once; a pair of calls restores it.
	ToggleLike(ctx context.Context, postID, userID string) (*ToggleResult, error)

	// Edit applies a partial update. Author-only.
	Edit(ctx context.Context, postID, userID string, req EditRequest) (*Post, error)

	// Delete removes a post and, by cascade, its comments and likes. Author-only.
	Delete(ctx context.Context, postID, userID string) error
}

// Repository defines the data access interface for posts
type Repository interface {
	Create(ctx context.Context, post *Post) error

	// GetByID returns ErrNotFound if no post has the given id
	GetByID(ctx context.Context, id string) (*Post, error)

	// ListAggregated returns every post with author summary and counts,
	// ordered by created_at descending
	ListAggregated(ctx context.Context) ([]*AggregatedPost, error)

	// Update sets only the non-nil fields and bumps updated_at.
	// Returns ErrNotFound if the post does not exist.
	Update(ctx context.Context, id string, title, content *string) (*Post, error)

	Delete(ctx context.Context, id string) error

	// ToggleLike flips (postID, userID) membership in the like-set and
	// reports the resulting state: true if the row now exists.
	ToggleLike(ctx context.Context, postID, userID string) (bool, error)

	// Exists reports whether a post with the given id is stored.
	// Used by the comment service to validate the foreign reference.
	Exists(ctx context.Context, id string) (bool, error)
}
