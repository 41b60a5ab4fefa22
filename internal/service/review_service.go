package service

import (
	"context"
	"fmt"
	"time"

	"cinelog/internal/models"
	"cinelog/internal/repository"

	"github.com/google/uuid"
)

// ReviewService creates reviews and lists them per title.
type ReviewService struct {
	reviews  repository.Reviews
	titles   repository.Titles
	activity Activity
}

func NewReviewService(reviews repository.Reviews, titles repository.Titles, activity Activity) *ReviewService {
	return &ReviewService{reviews: reviews, titles: titles, activity: activity}
}

var _ Reviews = (*ReviewService)(nil)

// ReviewParams is the creation payload.
type ReviewParams struct {
	UserID        string
	MovieSeriesID string
	Rating        int
	Comment       string
}

var errInvalidRating = fmt.Errorf("%w: rating must be between 1 and 10", ErrValidation)

// CreateReview validates the rating, checks that the title exists and
// persists the review.
func (s *ReviewService) CreateReview(ctx context.Context, p ReviewParams) (*models.Review, error) {
	if p.Rating < 1 || p.Rating > 10 {
		return nil, errInvalidRating
	}

	title, err := s.titles.GetByID(ctx, p.MovieSeriesID)
	if err != nil {
		return nil, err
	}
	if title == nil {
		return nil, fmt.Errorf("title %q: %w", p.MovieSeriesID, ErrNotFound)
	}

	rev := models.Review{
		ID:            uuid.NewString(),
		UserID:        p.UserID,
		MovieSeriesID: p.MovieSeriesID,
		Rating:        p.Rating,
		Comment:       p.Comment,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.reviews.Create(ctx, rev); err != nil {
		return nil, err
	}

	s.activity.Publish(models.ActivityEvent{
		Type:       models.ActivityReviewCreated,
		ActorID:    p.UserID,
		SubjectID:  p.MovieSeriesID,
		OccurredAt: rev.CreatedAt,
	})
	return &rev, nil
}

func (s *ReviewService) ReviewsByTitle(ctx context.Context, movieSeriesID string) ([]models.Review, error) {
	return s.reviews.ListByTitle(ctx, movieSeriesID)
}
