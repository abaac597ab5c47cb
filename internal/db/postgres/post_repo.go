package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"Inkwell/internal/core/posts"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// Create inserts a new post into the posts table
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) error {
	query := `
		INSERT INTO posts (id, author_id, title, content)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query, post.ID, post.AuthorID, post.Title, post.Content).
		Scan(&post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "violates foreign key constraint") {
			return fmt.Errorf("author not found: %s", post.AuthorID)
		}
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

// GetByID retrieves a post by id, including its like count
func (r *postgresPostRepo) GetByID(ctx context.Context, id string) (*posts.Post, error) {
	query := `
		SELECT p.id, p.author_id, p.title, p.content, p.created_at, p.updated_at,
			(SELECT COUNT(*) FROM post_likes pl WHERE pl.post_id = p.id) AS like_count
		FROM posts p
		WHERE p.id = $1`

	post := &posts.Post{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID, &post.AuthorID, &post.Title, &post.Content,
		&post.CreatedAt, &post.UpdatedAt, &post.LikeCount,
	)
	if err == sql.ErrNoRows {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

// ListAggregated returns every post joined with its author and derived
// counts, newest first. The secondary id ordering keeps ties stable.
func (r *postgresPostRepo) ListAggregated(ctx context.Context) ([]*posts.AggregatedPost, error) {
	query := `
		SELECT
			p.id, p.title, p.content,
			u.id AS author_id, u.username, u.email,
			(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id) AS comment_count,
			(SELECT COUNT(*) FROM post_likes pl WHERE pl.post_id = p.id) AS like_count,
			p.created_at, p.updated_at
		FROM posts p
		INNER JOIN users u ON p.author_id = u.id
		ORDER BY p.created_at DESC, p.id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query aggregated posts: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	var result []*posts.AggregatedPost
	for rows.Next() {
		row := &posts.AggregatedPost{}
		err := rows.Scan(
			&row.ID, &row.Title, &row.Content,
			&row.Author.ID, &row.Author.Username, &row.Author.Email,
			&row.CommentCount, &row.LikeCount,
			&row.CreatedAt, &row.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan aggregated post: %w", err)
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating aggregated posts: %w", err)
	}

	return result, nil
}

// Update sets only the non-nil fields and bumps updated_at
func (r *postgresPostRepo) Update(ctx context.Context, id string, title, content *string) (*posts.Post, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	argNum := 1

	if title != nil {
		setClauses = append(setClauses, fmt.Sprintf("title = $%d", argNum))
		args = append(args, *title)
		argNum++
	}
	if content != nil {
		setClauses = append(setClauses, fmt.Sprintf("content = $%d", argNum))
		args = append(args, *content)
		argNum++
	}

	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE posts
		SET %s
		WHERE id = $%d
		RETURNING id, author_id, title, content, created_at, updated_at,
			(SELECT COUNT(*) FROM post_likes pl WHERE pl.post_id = posts.id)`,
		strings.Join(setClauses, ", "), argNum)

	post := &posts.Post{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&post.ID, &post.AuthorID, &post.Title, &post.Content,
		&post.CreatedAt, &post.UpdatedAt, &post.LikeCount,
	)
	if err == sql.ErrNoRows {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return post, nil
}

// Delete removes a post. Comments and likes go with it via FK cascade.
func (r *postgresPostRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return posts.ErrNotFound
	}

	return nil
}

// ToggleLike flips (postID, userID) membership in post_likes.
// Remove-then-insert inside one transaction; the (post_id, user_id) primary
// key makes duplicates impossible. Two concurrent toggles can still
// interleave, which is the accepted race.
func (r *postgresPostRepo) ToggleLike(ctx context.Context, postID, userID string) (bool, error) {
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
		`DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`, postID, userID)
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
			`INSERT INTO post_likes (post_id, user_id) VALUES ($1, $2)`, postID, userID); err != nil {
			return false, fmt.Errorf("failed to add like: %w", err)
		}
		liked = true
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit toggle: %w", err)
	}

	return liked, nil
}

// Exists reports whether a post with the given id is stored
func (r *postgresPostRepo) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check post existence: %w", err)
	}
	return exists, nil
}
