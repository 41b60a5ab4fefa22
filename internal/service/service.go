package service

import (
	"context"

	"cinelog/internal/config"
	"cinelog/internal/mailer"
	"cinelog/internal/models"
	"cinelog/internal/repository"
)

type Authorization interface {
	Register(ctx context.Context, p RegisterParams) (*models.User, error)
	Login(ctx context.Context, login, password string) (string, *models.UserProfile, error)
	ParseToken(accessToken string) (string, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// Accounts exposes account listing, detail, update and deletion.
type Accounts interface {
	Search(ctx context.Context, f models.UserFilter) ([]models.UserProfile, error)
	Get(ctx context.Context, id string) (*models.UserProfile, error)
	UpdateAccount(ctx context.Context, id string, p UpdateAccountParams) error
	DeleteAccount(ctx context.Context, id string) error
}

// Titles exposes movie/series CRUD; creation is upsert-by-title.
type Titles interface {
	Upsert(ctx context.Context, p TitleParams) (*models.MovieSeries, bool, error)
	ListTitles(ctx context.Context) ([]models.MovieSeries, error)
	GetTitle(ctx context.Context, id string) (*models.TitleDetail, error)
	UpdateTitle(ctx context.Context, id string, p TitleParams) error
	DeleteTitle(ctx context.Context, id string) error
}

// Reviews exposes review creation and per-title listing.
type Reviews interface {
	CreateReview(ctx context.Context, p ReviewParams) (*models.Review, error)
	ReviewsByTitle(ctx context.Context, movieSeriesID string) ([]models.Review, error)
}

// Comments exposes comment CRUD.
type Comments interface {
	CreateComment(ctx context.Context, p CommentParams) (*models.Comment, error)
	UpdateComment(ctx context.Context, id, userID, content string) error
	DeleteComment(ctx context.Context, id, userID string) error
}

// Social exposes the toggle edges and their listing counterparts.
type Social interface {
	ToggleFollow(ctx context.Context, userID, followedUserID string) (bool, error)
	ToggleFavorite(ctx context.Context, userID, movieSeriesID string) (bool, error)
	ToggleWatchlist(ctx context.Context, userID, movieSeriesID string) (bool, error)
	Followers(ctx context.Context, userID string) ([]models.UserSummary, error)
	Following(ctx context.Context, userID string) ([]models.UserSummary, error)
	Favorites(ctx context.Context, userID string) ([]models.TitleEdge, error)
	Watchlist(ctx context.Context, userID string) ([]models.TitleEdge, error)
}

// Activity is the in-process fan-out behind the websocket feed.
type Activity interface {
	Publish(ev models.ActivityEvent)
	Subscribe() (<-chan models.ActivityEvent, func())
}

// Service aggregates all sub-services behind one dependency for the
// HTTP layer.
type Service struct {
	Authorization
	Accounts
	Titles
	Reviews
	Comments
	Social
	Activity
}

func NewService(repos *repository.Repository, cfg *config.Config, mail mailer.Mailer) *Service {
	activity := NewActivityBroker()
	return &Service{
		Authorization: NewAuthService(repos.Users, cfg, mail),
		Accounts:      NewAccountService(repos.Users, repos.Social, repos.Reviews),
		Titles:        NewTitleService(repos.Titles, repos.Reviews, repos.Comments),
		Reviews:       NewReviewService(repos.Reviews, repos.Titles, activity),
		Comments:      NewCommentService(repos.Comments),
		Social:        NewSocialService(repos.Social, repos.Users, activity),
		Activity:      activity,
	}
}
