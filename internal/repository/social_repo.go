package repository

import (
	"context"
	"database/sql"
	"fmt"

	"cinelog/internal/models"
)

type SocialRepository struct {
	db *sql.DB
}

func NewSocialRepository(db *sql.DB) *SocialRepository {
	return &SocialRepository{db: db}
}

var _ Social = (*SocialRepository)(nil)

const (
	existsFollowSQL = `SELECT COUNT(1) FROM followers WHERE user_id = ? AND followed_user_id = ?`
	insertFollowSQL = `INSERT INTO followers (user_id, followed_user_id) VALUES (?, ?)`
	deleteFollowSQL = `DELETE FROM followers WHERE user_id = ? AND followed_user_id = ?`

	existsFavoriteSQL = `SELECT COUNT(1) FROM favorites WHERE user_id = ? AND movie_series_id = ?`
	insertFavoriteSQL = `INSERT INTO favorites (user_id, movie_series_id) VALUES (?, ?)`
	deleteFavoriteSQL = `DELETE FROM favorites WHERE user_id = ? AND movie_series_id = ?`

	existsWatchlistSQL = `SELECT COUNT(1) FROM watchlist WHERE user_id = ? AND movie_series_id = ?`
	insertWatchlistSQL = `INSERT INTO watchlist (user_id, movie_series_id) VALUES (?, ?)`
	deleteWatchlistSQL = `DELETE FROM watchlist WHERE user_id = ? AND movie_series_id = ?`

	listFollowersSQL = `SELECT u.id, u.username, u.email, u.profile_image
FROM followers f JOIN users u ON u.id = f.user_id
WHERE f.followed_user_id = ?`
	listFollowingSQL = `SELECT u.id, u.username, u.email, u.profile_image
FROM followers f JOIN users u ON u.id = f.followed_user_id
WHERE f.user_id = ?`

	listFavoritesSQL = `SELECT f.user_id, m.id, m.title, m.description
FROM favorites f JOIN movie_series m ON m.id = f.movie_series_id
WHERE f.user_id = ?`
	listWatchlistSQL = `SELECT w.user_id, m.id, m.title, m.description
FROM watchlist w JOIN movie_series m ON m.id = w.movie_series_id
WHERE w.user_id = ?`
)

// toggleEdge flips an edge inside one transaction: the existence check
// and the insert/delete cannot interleave with a concurrent toggle on
// the same pair. Returns true when the edge was added.
func (r *SocialRepository) toggleEdge(ctx context.Context, existsSQL, insertSQL, deleteSQL, a, b string) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin toggle tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var count int
	if err := tx.QueryRowContext(ctx, existsSQL, a, b).Scan(&count); err != nil {
		return false, fmt.Errorf("check edge: %w", err)
	}

	added := count == 0
	if added {
		_, err = tx.ExecContext(ctx, insertSQL, a, b)
	} else {
		_, err = tx.ExecContext(ctx, deleteSQL, a, b)
	}
	if err != nil {
		return false, fmt.Errorf("toggle edge: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit toggle tx: %w", err)
	}
	return added, nil
}

func (r *SocialRepository) ToggleFollow(ctx context.Context, userID, followedUserID string) (bool, error) {
	return r.toggleEdge(ctx, existsFollowSQL, insertFollowSQL, deleteFollowSQL, userID, followedUserID)
}

func (r *SocialRepository) ToggleFavorite(ctx context.Context, userID, movieSeriesID string) (bool, error) {
	return r.toggleEdge(ctx, existsFavoriteSQL, insertFavoriteSQL, deleteFavoriteSQL, userID, movieSeriesID)
}

func (r *SocialRepository) ToggleWatchlist(ctx context.Context, userID, movieSeriesID string) (bool, error) {
	return r.toggleEdge(ctx, existsWatchlistSQL, insertWatchlistSQL, deleteWatchlistSQL, userID, movieSeriesID)
}

func (r *SocialRepository) Followers(ctx context.Context, userID string) ([]models.UserSummary, error) {
	return r.listUsers(ctx, listFollowersSQL, userID)
}

func (r *SocialRepository) Following(ctx context.Context, userID string) ([]models.UserSummary, error) {
	return r.listUsers(ctx, listFollowingSQL, userID)
}

func (r *SocialRepository) listUsers(ctx context.Context, query, userID string) ([]models.UserSummary, error) {
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list follow edges for %q: %w", userID, err)
	}
	defer func() { _ = rows.Close() }()

	var users []models.UserSummary
	for rows.Next() {
		var u models.UserSummary
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.ProfileImage); err != nil {
			return nil, fmt.Errorf("scan follow edge: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate follow edges: %w", err)
	}
	return users, nil
}

func (r *SocialRepository) Favorites(ctx context.Context, userID string) ([]models.TitleEdge, error) {
	return r.listTitleEdges(ctx, listFavoritesSQL, userID)
}

func (r *SocialRepository) Watchlist(ctx context.Context, userID string) ([]models.TitleEdge, error) {
	return r.listTitleEdges(ctx, listWatchlistSQL, userID)
}

func (r *SocialRepository) listTitleEdges(ctx context.Context, query, userID string) ([]models.TitleEdge, error) {
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list title edges for %q: %w", userID, err)
	}
	defer func() { _ = rows.Close() }()

	var edges []models.TitleEdge
	for rows.Next() {
		var e models.TitleEdge
		if err := rows.Scan(&e.UserID, &e.MovieSeries.ID, &e.MovieSeries.Title, &e.MovieSeries.Description); err != nil {
			return nil, fmt.Errorf("scan title edge: %w", err)
		}
		edges = append(edges, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate title edges: %w", err)
	}
	return edges, nil
}
