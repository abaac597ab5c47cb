package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"Inkwell/internal/core/comments"
)

type postgresCommentRepo struct {
	db *sql.DB
}

// NewCommentRepository creates a new PostgreSQL comment repository
func NewCommentRepository(db *sql.DB) comments.Repository {
	return &postgresCommentRepo{db: db}
}

// Create inserts a new comment into the comments table
func (r *postgresCommentRepo) Create(ctx context.Context, comment *comments.Comment) error {
	query := `
		INSERT INTO comments (id, post_id, author_id, content)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		comment.ID, comment.PostID, comment.AuthorID, comment.Content).
		Scan(&comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "violates foreign key constraint") {
			if strings.Contains(err.Error(), "comments_post_id_fkey") {
				return comments.ErrPostNotFound
			}
			return fmt.Errorf("author not found: %s", comment.AuthorID)
		}
		return fmt.Errorf("failed to insert comment: %w", err)
	}

	return nil
}

// GetByID retrieves a comment by id, including its like count
func (r *postgresCommentRepo) GetByID(ctx context.Context, id string) (*comments.Comment, error) {
	query := `
		SELECT c.id, c.post_id, c.author_id, c.content, c.created_at, c.updated_at,
			(SELECT COUNT(*) FROM comment_likes cl WHERE cl.comment_id = c.id) AS like_count
		FROM comments c
		WHERE c.id = $1`

	comment := &comments.Comment{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&comment.ID, &comment.PostID, &comment.AuthorID, &comment.Content,
		&comment.CreatedAt, &comment.UpdatedAt, &comment.LikeCount,
	)
	if err == sql.ErrNoRows {
		return nil, comments.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return comment, nil
}

// ListByPost returns a post's comments with the author's username,
// oldest first
func (r *postgresCommentRepo) ListByPost(ctx context.Context, postID string) ([]*comments.CommentWithAuthor, error) {
	query := `
		SELECT c.id, c.post_id, c.author_id, c.content, c.created_at, c.updated_at,
			(SELECT COUNT(*) FROM comment_likes cl WHERE cl.comment_id = c.id) AS like_count,
			u.username
		FROM comments c
		INNER JOIN users u ON c.author_id = u.id
		WHERE c.post_id = $1
		ORDER BY c.created_at ASC, c.id ASC`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	var result []*comments.CommentWithAuthor
	for rows.Next() {
		row := &comments.CommentWithAuthor{}
		err := rows.Scan(
			&row.ID, &row.PostID, &row.AuthorID, &row.Content,
			&row.CreatedAt, &row.UpdatedAt, &row.LikeCount,
			&row.AuthorUsername,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}

	return result, nil
}

// UpdateContent replaces the content and bumps updated_at
func (r *postgresCommentRepo) UpdateContent(ctx context.Context, id, content string) (*comments.Comment, error) {
	query := `
		UPDATE comments
		SET content = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, post_id, author_id, content, created_at, updated_at,
			(SELECT COUNT(*) FROM comment_likes cl WHERE cl.comment_id = comments.id)`

	comment := &comments.Comment{}
	err := r.db.QueryRowContext(ctx, query, id, content).Scan(
		&comment.ID, &comment.PostID, &comment.AuthorID, &comment.Content,
		&comment.CreatedAt, &comment.UpdatedAt, &comment.LikeCount,
	)
	if err == sql.ErrNoRows {
		return nil, comments.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	return comment, nil
}

// Delete removes a comment and, via FK cascade, its likes
func (r *postgresCommentRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return comments.ErrNotFound
	}

	return nil
}

// ToggleLike flips (commentID, userID) membership in comment_likes.
// Same remove-then-insert scheme as post likes; same accepted race.
func (r *postgresCommentRepo) ToggleLike(ctx context.Context, commentID, userID string) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin toggle: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			slog.Error("failed to rollback like toggle", slog.String("error", err.Error()))
		}
	}()

	result, err := tx.ExecContext(ctx,
		`DELETE FROM comment_likes WHERE comment_id = $1 AND user_id = $2`, commentID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to remove like: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected: %w", err)
	}

	liked := false
	if removed == 0 {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO comment_likes (comment_id, user_id) VALUES ($1, $2)`, commentID, userID); err != nil {
			return false, fmt.Errorf("failed to add like: %w", err)
		}
		liked = true
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit toggle: %w", err)
	}

	return liked, nil
}
