package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cinelog/internal/models"
)

type TitleRepository struct {
	db *sql.DB
}

func NewTitleRepository(db *sql.DB) *TitleRepository {
	return &TitleRepository{db: db}
}

var _ Titles = (*TitleRepository)(nil)

const (
	insertTitleSQL = `INSERT INTO movie_series (id, title, description, release_year, created_by, created_at)
VALUES (?, ?, ?, ?, ?, ?)`
	selectTitleByIDSQL    = `SELECT id, title, description, release_year, created_by, created_at FROM movie_series WHERE id = ?`
	selectTitleByTitleSQL = `SELECT id, title, description, release_year, created_by, created_at FROM movie_series WHERE title = ?`
	listTitlesSQL         = `SELECT id, title, description, release_year, created_by, created_at FROM movie_series`
	updateTitleSQL        = `UPDATE movie_series SET title = ?, description = ?, release_year = ? WHERE id = ?`
	deleteTitleSQL        = `DELETE FROM movie_series WHERE id = ?`

	insertGenreSQL      = `INSERT OR IGNORE INTO genres (name) VALUES (?)`
	selectGenreIDSQL    = `SELECT id FROM genres WHERE name = ?`
	clearMovieGenresSQL = `DELETE FROM movie_genres WHERE movie_series_id = ?`
	insertMovieGenreSQL = `INSERT INTO movie_genres (movie_series_id, genre_id) VALUES (?, ?)`
	genresOfTitleSQL    = `SELECT g.name FROM genres g
JOIN movie_genres mg ON mg.genre_id = g.id
WHERE mg.movie_series_id = ?`
)

func (r *TitleRepository) Create(ctx context.Context, m models.MovieSeries) error {
	var createdBy any
	if m.CreatedBy != "" {
		createdBy = m.CreatedBy
	}
	_, err := r.db.ExecContext(ctx, insertTitleSQL,
		m.ID, m.Title, m.Description, m.ReleaseYear, createdBy, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert title %q: %w", m.Title, err)
	}
	return nil
}

func scanTitle(row *sql.Row) (*models.MovieSeries, error) {
	var (
		m         models.MovieSeries
		createdBy sql.NullString
	)
	err := row.Scan(&m.ID, &m.Title, &m.Description, &m.ReleaseYear, &createdBy, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	m.CreatedBy = createdBy.String
	return &m, nil
}

// GetByID fetches a title with its genre names. Returns (nil, nil) if not found.
func (r *TitleRepository) GetByID(ctx context.Context, id string) (*models.MovieSeries, error) {
	m, err := scanTitle(r.db.QueryRowContext(ctx, selectTitleByIDSQL, id))
	if err != nil {
		return nil, fmt.Errorf("select title %q: %w", id, err)
	}
	if m == nil {
		return nil, nil
	}
	if m.Genres, err = r.genresOf(ctx, m.ID); err != nil {
		return nil, err
	}
	return m, nil
}

// GetByTitle fetches a title by its unique name. Returns (nil, nil) if not found.
func (r *TitleRepository) GetByTitle(ctx context.Context, title string) (*models.MovieSeries, error) {
	m, err := scanTitle(r.db.QueryRowContext(ctx, selectTitleByTitleSQL, title))
	if err != nil {
		return nil, fmt.Errorf("select title by name %q: %w", title, err)
	}
	if m == nil {
		return nil, nil
	}
	if m.Genres, err = r.genresOf(ctx, m.ID); err != nil {
		return nil, err
	}
	return m, nil
}

func (r *TitleRepository) List(ctx context.Context) ([]models.MovieSeries, error) {
	rows, err := r.db.QueryContext(ctx, listTitlesSQL)
	if err != nil {
		return nil, fmt.Errorf("list titles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var titles []models.MovieSeries
	for rows.Next() {
		var (
			m         models.MovieSeries
			createdBy sql.NullString
		)
		if err := rows.Scan(&m.ID, &m.Title, &m.Description, &m.ReleaseYear, &createdBy, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan title row: %w", err)
		}
		m.CreatedBy = createdBy.String
		titles = append(titles, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate titles: %w", err)
	}
	for i := range titles {
		if titles[i].Genres, err = r.genresOf(ctx, titles[i].ID); err != nil {
			return nil, err
		}
	}
	return titles, nil
}

func (r *TitleRepository) Update(ctx context.Context, m models.MovieSeries) error {
	res, err := r.db.ExecContext(ctx, updateTitleSQL, m.Title, m.Description, m.ReleaseYear, m.ID)
	if err != nil {
		return fmt.Errorf("update title %q: %w", m.ID, err)
	}
	return requireRowAffected(res, "title", m.ID)
}

func (r *TitleRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteTitleSQL, id)
	if err != nil {
		return fmt.Errorf("delete title %q: %w", id, err)
	}
	return requireRowAffected(res, "title", id)
}

// SetGenres replaces the genre set of a title, creating genre rows as needed.
func (r *TitleRepository) SetGenres(ctx context.Context, movieSeriesID string, genres []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin genres tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, clearMovieGenresSQL, movieSeriesID); err != nil {
		return fmt.Errorf("clear genres of %q: %w", movieSeriesID, err)
	}
	for _, name := range genres {
		if _, err := tx.ExecContext(ctx, insertGenreSQL, name); err != nil {
			return fmt.Errorf("insert genre %q: %w", name, err)
		}
		var genreID int64
		if err := tx.QueryRowContext(ctx, selectGenreIDSQL, name).Scan(&genreID); err != nil {
			return fmt.Errorf("select genre %q: %w", name, err)
		}
		if _, err := tx.ExecContext(ctx, insertMovieGenreSQL, movieSeriesID, genreID); err != nil {
			return fmt.Errorf("link genre %q to %q: %w", name, movieSeriesID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit genres tx: %w", err)
	}
	return nil
}

func (r *TitleRepository) genresOf(ctx context.Context, movieSeriesID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, genresOfTitleSQL, movieSeriesID)
	if err != nil {
		return nil, fmt.Errorf("genres of %q: %w", movieSeriesID, err)
	}
	defer func() { _ = rows.Close() }()

	var genres []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan genre: %w", err)
		}
		genres = append(genres, name)
	}
	return genres, rows.Err()
}
