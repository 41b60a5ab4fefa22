package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cinelog/internal/models"
	"cinelog/internal/repository"

	"github.com/google/uuid"
)

// CommentService manages comments on reviews and titles.
type CommentService struct {
	comments repository.Comments
}

func NewCommentService(comments repository.Comments) *CommentService {
	return &CommentService{comments: comments}
}

var _ Comments = (*CommentService)(nil)

// CommentParams is the creation payload; exactly one of ReviewID and
// MovieSeriesID must be set.
type CommentParams struct {
	UserID        string
	ReviewID      string
	MovieSeriesID string
	Content       string
}

var (
	errCommentTarget   = fmt.Errorf("%w: comment must reference exactly one of a review or a title", ErrValidation)
	errEmptyComment    = fmt.Errorf("%w: comment content must not be empty", ErrValidation)
	ErrNotCommentOwner = errors.New("comment belongs to another account")
)

func (s *CommentService) CreateComment(ctx context.Context, p CommentParams) (*models.Comment, error) {
	if (p.ReviewID == "") == (p.MovieSeriesID == "") {
		return nil, errCommentTarget
	}
	if p.Content == "" {
		return nil, errEmptyComment
	}

	c := models.Comment{
		ID:            uuid.NewString(),
		UserID:        p.UserID,
		ReviewID:      p.ReviewID,
		MovieSeriesID: p.MovieSeriesID,
		Content:       p.Content,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateComment rewrites the content; only the author may edit.
func (s *CommentService) UpdateComment(ctx context.Context, id, userID, content string) error {
	if content == "" {
		return errEmptyComment
	}
	c, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return ErrNotFound
	}
	if c.UserID != userID {
		return ErrNotCommentOwner
	}
	return s.comments.Update(ctx, id, content)
}

// DeleteComment removes a comment; only the author may delete.
func (s *CommentService) DeleteComment(ctx context.Context, id, userID string) error {
	c, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return ErrNotFound
	}
	if c.UserID != userID {
		return ErrNotCommentOwner
	}
	return s.comments.Delete(ctx, id)
}
