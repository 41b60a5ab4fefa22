package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cinelog/internal/models"
)

type CommentRepository struct {
	db *sql.DB
}

func NewCommentRepository(db *sql.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

var _ Comments = (*CommentRepository)(nil)

const (
	insertCommentSQL = `INSERT INTO comments (id, user_id, review_id, movie_series_id, content, created_at)
VALUES (?, ?, ?, ?, ?, ?)`
	selectCommentSQL       = `SELECT id, user_id, review_id, movie_series_id, content, created_at FROM comments WHERE id = ?`
	updateCommentSQL       = `UPDATE comments SET content = ? WHERE id = ?`
	deleteCommentSQL       = `DELETE FROM comments WHERE id = ?`
	listCommentsByTitleSQL = `SELECT id, user_id, review_id, movie_series_id, content, created_at FROM comments WHERE movie_series_id = ?`
)

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func (r *CommentRepository) Create(ctx context.Context, c models.Comment) error {
	_, err := r.db.ExecContext(ctx, insertCommentSQL,
		c.ID, c.UserID, nullable(c.ReviewID), nullable(c.MovieSeriesID), c.Content, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

// GetByID fetches a comment. Returns (nil, nil) if not found.
func (r *CommentRepository) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	var (
		c        models.Comment
		reviewID sql.NullString
		titleID  sql.NullString
	)
	err := r.db.QueryRowContext(ctx, selectCommentSQL, id).
		Scan(&c.ID, &c.UserID, &reviewID, &titleID, &c.Content, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select comment %q: %w", id, err)
	}
	c.ReviewID = reviewID.String
	c.MovieSeriesID = titleID.String
	return &c, nil
}

func (r *CommentRepository) Update(ctx context.Context, id, content string) error {
	res, err := r.db.ExecContext(ctx, updateCommentSQL, content, id)
	if err != nil {
		return fmt.Errorf("update comment %q: %w", id, err)
	}
	return requireRowAffected(res, "comment", id)
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteCommentSQL, id)
	if err != nil {
		return fmt.Errorf("delete comment %q: %w", id, err)
	}
	return requireRowAffected(res, "comment", id)
}

func (r *CommentRepository) ListByTitle(ctx context.Context, movieSeriesID string) ([]models.Comment, error) {
	rows, err := r.db.QueryContext(ctx, listCommentsByTitleSQL, movieSeriesID)
	if err != nil {
		return nil, fmt.Errorf("list comments for %q: %w", movieSeriesID, err)
	}
	defer func() { _ = rows.Close() }()

	var comments []models.Comment
	for rows.Next() {
		var (
			c        models.Comment
			reviewID sql.NullString
			titleID  sql.NullString
		)
		if err := rows.Scan(&c.ID, &c.UserID, &reviewID, &titleID, &c.Content, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment row: %w", err)
		}
		c.ReviewID = reviewID.String
		c.MovieSeriesID = titleID.String
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}
	return comments, nil
}
