package comments

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"Inkwell/internal/core/authz"
	"Inkwell/internal/dates"
)

type commentService struct {
	repo  Repository
	posts PostChecker
}

// NewCommentService creates a new comment service
func NewCommentService(repo Repository, posts PostChecker) Service {
	return &commentService{repo: repo, posts: posts}
}

// Add creates a comment after verifying the referenced post exists, so
// orphaned comments cannot be created.
func (s *commentService) Add(ctx context.Context, userID string, req AddRequest) (*Comment, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, NewValidationError("content", "content is required")
	}
	if req.PostID == "" {
		return nil, NewValidationError("postId", "postId is required")
	}
	if userID == "" {
		return nil, NewValidationError("author", "author is required")
	}

	exists, err := s.posts.Exists(ctx, req.PostID)
	if err != nil {
		return nil, fmt.Errorf("failed to check post: %w", err)
	}
	if !exists {
		return nil, ErrPostNotFound
	}

	comment := &Comment{
		ID:       uuid.NewString(),
		PostID:   req.PostID,
		AuthorID: userID,
		Content:  req.Content,
	}

	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return comment, nil
}

// ListForPost renders a post's comments for display, oldest first
func (s *commentService) ListForPost(ctx context.Context, postID string) ([]*CommentView, error) {
	rows, err := s.repo.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	views := make([]*CommentView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &CommentView{
			ID:        row.ID,
			PostID:    row.PostID,
			Content:   row.Content,
			Author:    AuthorEntry{Username: row.AuthorUsername},
			LikeCount: row.LikeCount,
			CreatedAt: dates.Display(row.CreatedAt),
			UpdatedAt: dates.Display(row.UpdatedAt),
		})
	}

	return views, nil
}

// Edit replaces the content of the caller's own comment
func (s *commentService) Edit(ctx context.Context, commentID, userID, content string) (*Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, NewValidationError("content", "content is required")
	}

	comment, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	if err := authz.RequireAuthor(comment.AuthorID, userID); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateContent(ctx, commentID, content)
	if err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	return updated, nil
}

// Delete removes the caller's own comment
func (s *commentService) Delete(ctx context.Context, commentID, userID string) error {
	comment, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	if err := authz.RequireAuthor(comment.AuthorID, userID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, commentID); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	return nil
}

// ToggleLike flips the user's membership in the comment's like-set
func (s *commentService) ToggleLike(ctx context.Context, commentID, userID string) (*ToggleResult, error) {
	if _, err := s.repo.GetByID(ctx, commentID); err != nil {
		return nil, err
	}

	liked, err := s.repo.ToggleLike(ctx, commentID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle like: %w", err)
	}

	comment, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	message := "Unliked"
	if liked {
		message = "Liked"
	}

	return &ToggleResult{Liked: liked, Message: message, Comment: comment}, nil
}
