package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"cinelog/internal/models"
)

func titleRow(id, title, desc string, year int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "title", "description", "release_year", "created_by", "created_at"}).
		AddRow(id, title, desc, year, nil, time.Now())
}

func TestTitleRepository_GetByID(t *testing.T) {
	t.Run("found with genres", func(t *testing.T) {
		db, mock, cleanup := newMockDB(t)
		defer cleanup()
		repo := NewTitleRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(selectTitleByIDSQL)).
			WithArgs("m1").
			WillReturnRows(titleRow("m1", "Dune", "sand", 2021))
		mock.ExpectQuery(regexp.QuoteMeta(genresOfTitleSQL)).
			WithArgs("m1").
			WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Sci-Fi").AddRow("Drama"))

		m, err := repo.GetByID(context.Background(), "m1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m == nil || m.Title != "Dune" {
			t.Fatalf("unexpected title: %+v", m)
		}
		if len(m.Genres) != 2 || m.Genres[0] != "Sci-Fi" {
			t.Fatalf("unexpected genres: %v", m.Genres)
		}
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, cleanup := newMockDB(t)
		defer cleanup()
		repo := NewTitleRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(selectTitleByIDSQL)).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		m, err := repo.GetByID(context.Background(), "missing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m != nil {
			t.Fatalf("expected nil title, got %+v", m)
		}
	})
}

func TestTitleRepository_SetGenres_ReplacesLinksInTx(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewTitleRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(clearMovieGenresSQL)).
		WithArgs("m1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(insertGenreSQL)).
		WithArgs("Sci-Fi").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(regexp.QuoteMeta(selectGenreIDSQL)).
		WithArgs("Sci-Fi").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec(regexp.QuoteMeta(insertMovieGenreSQL)).
		WithArgs("m1", int64(1)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	if err := repo.SetGenres(context.Background(), "m1", []string{"Sci-Fi"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTitleRepository_Update_NotFound(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewTitleRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(updateTitleSQL)).
		WithArgs("Dune", "sand", 2021, "gone").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), models.MovieSeries{ID: "gone", Title: "Dune", Description: "sand", ReleaseYear: 2021})
	if err == nil {
		t.Fatalf("expected error for missing row")
	}
}
