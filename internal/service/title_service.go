package service

import (
	"context"
	"fmt"
	"time"

	"cinelog/internal/models"
	"cinelog/internal/repository"

	"github.com/google/uuid"
)

// TitleService manages movie/series entries.
type TitleService struct {
	titles   repository.Titles
	reviews  repository.Reviews
	comments repository.Comments
}

func NewTitleService(titles repository.Titles, reviews repository.Reviews, comments repository.Comments) *TitleService {
	return &TitleService{titles: titles, reviews: reviews, comments: comments}
}

var _ Titles = (*TitleService)(nil)

// TitleParams is the create/update payload.
type TitleParams struct {
	Title       string
	Description string
	ReleaseYear int
	Genres      []string
	CreatedBy   string
}

var errEmptyTitle = fmt.Errorf("%w: title must not be empty", ErrValidation)

// Upsert creates the title or, when one with the same name exists,
// updates it in place. The second return reports whether a new row was
// created.
func (s *TitleService) Upsert(ctx context.Context, p TitleParams) (*models.MovieSeries, bool, error) {
	if p.Title == "" {
		return nil, false, errEmptyTitle
	}

	existing, err := s.titles.GetByTitle(ctx, p.Title)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		existing.Description = p.Description
		existing.ReleaseYear = p.ReleaseYear
		if err := s.titles.Update(ctx, *existing); err != nil {
			return nil, false, err
		}
		if err := s.titles.SetGenres(ctx, existing.ID, p.Genres); err != nil {
			return nil, false, err
		}
		existing.Genres = p.Genres
		return existing, false, nil
	}

	m := models.MovieSeries{
		ID:          uuid.NewString(),
		Title:       p.Title,
		Description: p.Description,
		ReleaseYear: p.ReleaseYear,
		CreatedBy:   p.CreatedBy,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.titles.Create(ctx, m); err != nil {
		return nil, false, err
	}
	if len(p.Genres) > 0 {
		if err := s.titles.SetGenres(ctx, m.ID, p.Genres); err != nil {
			return nil, false, err
		}
		m.Genres = p.Genres
	}
	return &m, true, nil
}

func (s *TitleService) ListTitles(ctx context.Context) ([]models.MovieSeries, error) {
	return s.titles.List(ctx)
}

// GetTitle fetches a title with its reviews and direct comments.
// Absent and malformed ids both yield ErrNotFound.
func (s *TitleService) GetTitle(ctx context.Context, id string) (*models.TitleDetail, error) {
	m, err := s.titles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrNotFound
	}

	detail := models.TitleDetail{MovieSeries: *m}
	if detail.Reviews, err = s.reviews.ListByTitle(ctx, id); err != nil {
		return nil, err
	}
	if detail.Comments, err = s.comments.ListByTitle(ctx, id); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (s *TitleService) UpdateTitle(ctx context.Context, id string, p TitleParams) error {
	m, err := s.titles.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if m == nil {
		return ErrNotFound
	}
	if p.Title != "" {
		m.Title = p.Title
	}
	m.Description = p.Description
	m.ReleaseYear = p.ReleaseYear
	if err := s.titles.Update(ctx, *m); err != nil {
		return err
	}
	if p.Genres != nil {
		return s.titles.SetGenres(ctx, id, p.Genres)
	}
	return nil
}

func (s *TitleService) DeleteTitle(ctx context.Context, id string) error {
	m, err := s.titles.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if m == nil {
		return ErrNotFound
	}
	return s.titles.Delete(ctx, id)
}
