package posts

import "time"

// Post is a stored blog post. AuthorID is immutable after creation; likes
// live in a separate membership table and surface here only as a count.
type Post struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	ID        string    `json:"id" db:"id"`
	AuthorID  string    `json:"authorId" db:"author_id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	LikeCount int       `json:"likeCount" db:"like_count"`
}

// AuthorSummary is the subset of user fields embedded in listings.
// Credential fields are never part of this projection.
type AuthorSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AggregatedPost is the repository row backing the listing view: the post
// joined with its author plus derived counts, timestamps still raw.
type AggregatedPost struct {
	CreatedAt    time.Time
	UpdatedAt    time.Time
	ID           string
	Title        string
	Content      string
	Author       AuthorSummary
	CommentCount int
	LikeCount    int
}

// AggregatedPostView is the API-facing listing entry with timestamps
// rendered for display.
type AggregatedPostView struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Content      string        `json:"content"`
	Author       AuthorSummary `json:"author"`
	CommentCount int           `json:"commentCount"`
	LikeCount    int           `json:"likeCount"`
	CreatedAt    string        `json:"createdAt"`
	UpdatedAt    string        `json:"updatedAt"`
}

// CreateRequest represents the input for creating a new post
type CreateRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	AuthorID string `json:"-"`
}

// EditRequest carries a partial update. A nil field means "leave unchanged";
// a provided empty string is a validation error, not a silent no-op.
type EditRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// ToggleResult reports the outcome of a like toggle.
type ToggleResult struct {
	Liked   bool   `json:"liked"`
	Message string `json:"message"`
	Post    *Post  `json:"post"`
}
