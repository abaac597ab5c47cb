package posts

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"Inkwell/internal/core/authz"
	"Inkwell/internal/dates"
)

type postService struct {
	repo Repository
}

// NewPostService creates a new post service
func NewPostService(repo Repository) Service {
	return &postService{repo: repo}
}

// Create stores a new post. Title and content are validated again here even
// though the handler rejects empty fields first.
func (s *postService) Create(ctx context.Context, req CreateRequest) (*Post, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, NewValidationError("title", "title is required")
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, NewValidationError("content", "content is required")
	}
	if req.AuthorID == "" {
		return nil, NewValidationError("author", "author is required")
	}

	post := &Post{
		ID:       uuid.NewString(),
		AuthorID: req.AuthorID,
		Title:    req.Title,
		Content:  req.Content,
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

// ListAggregated renders the repository's aggregated rows for display
func (s *postService) ListAggregated(ctx context.Context) ([]*AggregatedPostView, error) {
	rows, err := s.repo.ListAggregated(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	views := make([]*AggregatedPostView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &AggregatedPostView{
			ID:           row.ID,
			Title:        row.Title,
			Content:      row.Content,
			Author:       row.Author,
			CommentCount: row.CommentCount,
			LikeCount:    row.LikeCount,
			CreatedAt:    dates.Display(row.CreatedAt),
			UpdatedAt:    dates.Display(row.UpdatedAt),
		})
	}

	return views, nil
}

// ToggleLike flips the user's membership in the post's like-set.
// Any authenticated user may like any post; no ownership check applies.
func (s *postService) ToggleLike(ctx context.Context, postID, userID string) (*ToggleResult, error) {
	if _, err := s.repo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	liked, err := s.repo.ToggleLike(ctx, postID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle like: %w", err)
	}

	// Re-read so the response carries the post-toggle like count.
	// Concurrent toggles can interleave here; the store's per-row atomicity
	// is the only guarantee, matching the accepted race in the design.
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	message := "Unliked"
	if liked {
		message = "Liked"
	}

	return &ToggleResult{Liked: liked, Message: message, Post: post}, nil
}

// Edit applies a partial update to the caller's own post. Fields left nil
// are untouched; fields provided empty are rejected.
func (s *postService) Edit(ctx context.Context, postID, userID string, req EditRequest) (*Post, error) {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if err := authz.RequireAuthor(post.AuthorID, userID); err != nil {
		return nil, err
	}

	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return nil, NewValidationError("title", "title cannot be empty")
	}
	if req.Content != nil && strings.TrimSpace(*req.Content) == "" {
		return nil, NewValidationError("content", "content cannot be empty")
	}

	updated, err := s.repo.Update(ctx, postID, req.Title, req.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return updated, nil
}

// Delete removes the caller's own post
func (s *postService) Delete(ctx context.Context, postID, userID string) error {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if err := authz.RequireAuthor(post.AuthorID, userID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, postID); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	return nil
}
