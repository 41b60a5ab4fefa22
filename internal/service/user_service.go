package service

import (
	"context"

	"cinelog/internal/models"
	"cinelog/internal/repository"
)

// AccountService serves account detail, search, update and deletion.
// Detail and search responses carry the nested associations the
// frontend renders on a profile page.
type AccountService struct {
	users   repository.Users
	social  repository.Social
	reviews repository.Reviews
}

func NewAccountService(users repository.Users, social repository.Social, reviews repository.Reviews) *AccountService {
	return &AccountService{users: users, social: social, reviews: reviews}
}

var _ Accounts = (*AccountService)(nil)

// UpdateAccountParams is the set of mutable profile fields. Nil fields
// keep their current value.
type UpdateAccountParams struct {
	Username     *string
	Name         *string
	Bio          *string
	ProfileImage *string
}

// Get fetches a full profile. Absent and malformed ids both yield
// ErrNotFound.
func (s *AccountService) Get(ctx context.Context, id string) (*models.UserProfile, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return s.profileOf(ctx, *u)
}

// Search lists profiles matching the filter.
func (s *AccountService) Search(ctx context.Context, f models.UserFilter) ([]models.UserProfile, error) {
	users, err := s.users.Search(ctx, f)
	if err != nil {
		return nil, err
	}
	profiles := make([]models.UserProfile, 0, len(users))
	for _, u := range users {
		p, err := s.profileOf(ctx, u)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	return profiles, nil
}

func (s *AccountService) profileOf(ctx context.Context, u models.User) (*models.UserProfile, error) {
	p := models.UserProfile{User: u}
	var err error
	if p.Followers, err = s.social.Followers(ctx, u.ID); err != nil {
		return nil, err
	}
	if p.Following, err = s.social.Following(ctx, u.ID); err != nil {
		return nil, err
	}
	if p.Reviews, err = s.reviews.ListByUser(ctx, u.ID); err != nil {
		return nil, err
	}
	if p.Favorites, err = s.social.Favorites(ctx, u.ID); err != nil {
		return nil, err
	}
	if p.Watchlist, err = s.social.Watchlist(ctx, u.ID); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *AccountService) UpdateAccount(ctx context.Context, id string, p UpdateAccountParams) error {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrNotFound
	}
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.ProfileImage != nil {
		u.ProfileImage = *p.ProfileImage
	}
	return s.users.Update(ctx, *u)
}

func (s *AccountService) DeleteAccount(ctx context.Context, id string) error {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrNotFound
	}
	return s.users.Delete(ctx, id)
}
