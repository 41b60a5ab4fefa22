package repository

import (
	"context"
	"database/sql"

	"cinelog/internal/models"
)

// Users persists account records.
type Users interface {
	Create(ctx context.Context, u models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByLogin(ctx context.Context, emailOrUsername string) (*models.User, error)
	Search(ctx context.Context, f models.UserFilter) ([]models.User, error)
	Update(ctx context.Context, u models.User) error
	Delete(ctx context.Context, id string) error
	SetResetToken(ctx context.Context, id, token string) error
	ConsumeResetToken(ctx context.Context, id, newPasswordHash string) error
}

// Titles persists movie/series records and their genre links.
type Titles interface {
	Create(ctx context.Context, m models.MovieSeries) error
	GetByID(ctx context.Context, id string) (*models.MovieSeries, error)
	GetByTitle(ctx context.Context, title string) (*models.MovieSeries, error)
	List(ctx context.Context) ([]models.MovieSeries, error)
	Update(ctx context.Context, m models.MovieSeries) error
	Delete(ctx context.Context, id string) error
	SetGenres(ctx context.Context, movieSeriesID string, genres []string) error
}

// Reviews persists title ratings.
type Reviews interface {
	Create(ctx context.Context, r models.Review) error
	ListByTitle(ctx context.Context, movieSeriesID string) ([]models.Review, error)
	ListByUser(ctx context.Context, userID string) ([]models.Review, error)
}

// Comments persists comments on reviews and titles.
type Comments interface {
	Create(ctx context.Context, c models.Comment) error
	GetByID(ctx context.Context, id string) (*models.Comment, error)
	Update(ctx context.Context, id, content string) error
	Delete(ctx context.Context, id string) error
	ListByTitle(ctx context.Context, movieSeriesID string) ([]models.Comment, error)
}

// Social owns the three toggle-edge tables and their listings.
// Toggle methods report whether the edge was added (true) or removed.
type Social interface {
	ToggleFollow(ctx context.Context, userID, followedUserID string) (bool, error)
	ToggleFavorite(ctx context.Context, userID, movieSeriesID string) (bool, error)
	ToggleWatchlist(ctx context.Context, userID, movieSeriesID string) (bool, error)
	Followers(ctx context.Context, userID string) ([]models.UserSummary, error)
	Following(ctx context.Context, userID string) ([]models.UserSummary, error)
	Favorites(ctx context.Context, userID string) ([]models.TitleEdge, error)
	Watchlist(ctx context.Context, userID string) ([]models.TitleEdge, error)
}

type Repository struct {
	Users    Users
	Titles   Titles
	Reviews  Reviews
	Comments Comments
	Social   Social
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:    NewUserRepository(db),
		Titles:   NewTitleRepository(db),
		Reviews:  NewReviewRepository(db),
		Comments: NewCommentRepository(db),
		Social:   NewSocialRepository(db),
	}
}
