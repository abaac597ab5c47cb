package comments

import "time"

// Comment belongs to exactly one post. AuthorID and PostID are immutable
// after creation.
type Comment struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	ID        string    `json:"id" db:"id"`
	PostID    string    `json:"postId" db:"post_id"`
	AuthorID  string    `json:"authorId" db:"author_id"`
	Content   string    `json:"content" db:"content"`
	LikeCount int       `json:"likeCount" db:"like_count"`
}

// CommentWithAuthor is the repository row for a post's comment listing:
// the comment joined with the author's username, timestamps still raw.
type CommentWithAuthor struct {
	Comment
	AuthorUsername string `db:"author_username"`
}

// CommentView is the API-facing listing entry. The author projection for
// comments is username only.
type CommentView struct {
	ID        string      `json:"id"`
	PostID    string      `json:"postId"`
	Content   string      `json:"content"`
	Author    AuthorEntry `json:"author"`
	LikeCount int         `json:"likeCount"`
	CreatedAt string      `json:"createdAt"`
	UpdatedAt string      `json:"updatedAt"`
}

// AuthorEntry is the comment listing's author projection.
type AuthorEntry struct {
	Username string `json:"username"`
}

// AddRequest represents the input for creating a new comment
type AddRequest struct {
	PostID  string `json:"postId"`
	Content string `json:"content"`
}

// ToggleResult reports the outcome of a like toggle on a comment.
type ToggleResult struct {
	Liked   bool     `json:"liked"`
	Message string   `json:"message"`
	Comment *Comment `json:"comment"`
}
