package repository

import (
	"context"
	"database/sql"
	"fmt"

	"cinelog/internal/models"
)

type ReviewRepository struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

var _ Reviews = (*ReviewRepository)(nil)

const (
	insertReviewSQL = `INSERT INTO reviews (id, user_id, movie_series_id, rating, comment, created_at)
VALUES (?, ?, ?, ?, ?, ?)`
	// Reviews are always read together with a reviewer summary.
	listReviewsByTitleSQL = `SELECT r.id, r.user_id, r.movie_series_id, r.rating, r.comment, r.created_at,
u.username, u.profile_image
FROM reviews r JOIN users u ON u.id = r.user_id
WHERE r.movie_series_id = ?`
	listReviewsByUserSQL = `SELECT r.id, r.user_id, r.movie_series_id, r.rating, r.comment, r.created_at,
u.username, u.profile_image
FROM reviews r JOIN users u ON u.id = r.user_id
WHERE r.user_id = ?`
)

func (r *ReviewRepository) Create(ctx context.Context, rev models.Review) error {
	_, err := r.db.ExecContext(ctx, insertReviewSQL,
		rev.ID, rev.UserID, rev.MovieSeriesID, rev.Rating, rev.Comment, rev.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert review for title %q: %w", rev.MovieSeriesID, err)
	}
	return nil
}

func (r *ReviewRepository) ListByTitle(ctx context.Context, movieSeriesID string) ([]models.Review, error) {
	return r.list(ctx, listReviewsByTitleSQL, movieSeriesID)
}

func (r *ReviewRepository) ListByUser(ctx context.Context, userID string) ([]models.Review, error) {
	return r.list(ctx, listReviewsByUserSQL, userID)
}

func (r *ReviewRepository) list(ctx context.Context, query, arg string) ([]models.Review, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var reviews []models.Review
	for rows.Next() {
		var (
			rev models.Review
			u   models.UserSummary
		)
		if err := rows.Scan(&rev.ID, &rev.UserID, &rev.MovieSeriesID, &rev.Rating,
			&rev.Comment, &rev.CreatedAt, &u.Username, &u.ProfileImage); err != nil {
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		u.ID = rev.UserID
		rev.User = &u
		reviews = append(reviews, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reviews: %w", err)
	}
	return reviews, nil
}
