package service

import (
	"context"
	"time"

	"cinelog/internal/models"
	"cinelog/internal/repository"
)

// SocialService flips and lists the follow/favorite/watchlist edges.
type SocialService struct {
	social   repository.Social
	users    repository.Users
	activity Activity
}

func NewSocialService(social repository.Social, users repository.Users, activity Activity) *SocialService {
	return &SocialService{social: social, users: users, activity: activity}
}

var _ Social = (*SocialService)(nil)

// ToggleFollow flips the follow edge from userID to followedUserID.
// Self-follow is rejected before any persistence call.
func (s *SocialService) ToggleFollow(ctx context.Context, userID, followedUserID string) (bool, error) {
	if userID == followedUserID {
		return false, ErrSelfFollow
	}

	target, err := s.users.GetByID(ctx, followedUserID)
	if err != nil {
		return false, err
	}
	if target == nil {
		return false, ErrNotFound
	}

	added, err := s.social.ToggleFollow(ctx, userID, followedUserID)
	if err != nil {
		return false, err
	}
	s.publish(added, models.ActivityFollowed, models.ActivityUnfollowed, userID, followedUserID)
	return added, nil
}

func (s *SocialService) ToggleFavorite(ctx context.Context, userID, movieSeriesID string) (bool, error) {
	added, err := s.social.ToggleFavorite(ctx, userID, movieSeriesID)
	if err != nil {
		return false, err
	}
	s.publish(added, models.ActivityFavorited, models.ActivityUnfavorited, userID, movieSeriesID)
	return added, nil
}

func (s *SocialService) ToggleWatchlist(ctx context.Context, userID, movieSeriesID string) (bool, error) {
	added, err := s.social.ToggleWatchlist(ctx, userID, movieSeriesID)
	if err != nil {
		return false, err
	}
	s.publish(added, models.ActivityWatchlisted, models.ActivityUnwatchlisted, userID, movieSeriesID)
	return added, nil
}

func (s *SocialService) publish(added bool, addedType, removedType, actorID, subjectID string) {
	typ := removedType
	if added {
		typ = addedType
	}
	s.activity.Publish(models.ActivityEvent{
		Type:       typ,
		ActorID:    actorID,
		SubjectID:  subjectID,
		OccurredAt: time.Now().UTC(),
	})
}

func (s *SocialService) Followers(ctx context.Context, userID string) ([]models.UserSummary, error) {
	return s.social.Followers(ctx, userID)
}

func (s *SocialService) Following(ctx context.Context, userID string) ([]models.UserSummary, error) {
	return s.social.Following(ctx, userID)
}

func (s *SocialService) Favorites(ctx context.Context, userID string) ([]models.TitleEdge, error) {
	return s.social.Favorites(ctx, userID)
}

func (s *SocialService) Watchlist(ctx context.Context, userID string) ([]models.TitleEdge, error) {
	return s.social.Watchlist(ctx, userID)
}
