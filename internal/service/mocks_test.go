package service

import (
	"context"
	"errors"
	"sync"

	"cinelog/internal/models"
)

// fakeUsers is an in-memory Users repository for service tests.
type fakeUsers struct {
	mu    sync.Mutex
	users map[string]models.User // by id

	createErr error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: make(map[string]models.User)}
}

func (f *fakeUsers) Create(ctx context.Context, u models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[u.ID] = u
	return nil
}

func (f *fakeUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (f *fakeUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) GetByLogin(ctx context.Context, login string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == login || u.Username == login {
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) Search(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUsers) Update(ctx context.Context, u models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.users[u.ID]
	if !ok {
		return errors.New("no such user")
	}
	stored.Username = u.Username
	stored.Name = u.Name
	stored.Bio = u.Bio
	stored.ProfileImage = u.ProfileImage
	f.users[u.ID] = stored
	return nil
}

func (f *fakeUsers) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, id)
	return nil
}

func (f *fakeUsers) SetResetToken(ctx context.Context, id, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return errors.New("no such user")
	}
	u.ResetToken = token
	u.ResetTokenUsed = false
	f.users[id] = u
	return nil
}

func (f *fakeUsers) ConsumeResetToken(ctx context.Context, id, newHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return errors.New("no such user")
	}
	u.PasswordHash = newHash
	u.ResetTokenUsed = true
	f.users[id] = u
	return nil
}

// fakeSocial is an in-memory Social repository.
type fakeSocial struct {
	mu        sync.Mutex
	follows   map[[2]string]bool
	favorites map[[2]string]bool
	watch     map[[2]string]bool

	toggleErr error
}

func newFakeSocial() *fakeSocial {
	return &fakeSocial{
		follows:   make(map[[2]string]bool),
		favorites: make(map[[2]string]bool),
		watch:     make(map[[2]string]bool),
	}
}

func (f *fakeSocial) toggle(edges map[[2]string]bool, a, b string) (bool, error) {
	if f.toggleErr != nil {
		return false, f.toggleErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	key := [2]string{a, b}
	if edges[key] {
		delete(edges, key)
		return false, nil
	}
	edges[key] = true
	return true, nil
}

func (f *fakeSocial) ToggleFollow(ctx context.Context, a, b string) (bool, error) {
	return f.toggle(f.follows, a, b)
}

func (f *fakeSocial) ToggleFavorite(ctx context.Context, a, b string) (bool, error) {
	return f.toggle(f.favorites, a, b)
}

func (f *fakeSocial) ToggleWatchlist(ctx context.Context, a, b string) (bool, error) {
	return f.toggle(f.watch, a, b)
}

func (f *fakeSocial) Followers(ctx context.Context, userID string) ([]models.UserSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.UserSummary
	for key := range f.follows {
		if key[1] == userID {
			out = append(out, models.UserSummary{ID: key[0]})
		}
	}
	return out, nil
}

func (f *fakeSocial) Following(ctx context.Context, userID string) ([]models.UserSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.UserSummary
	for key := range f.follows {
		if key[0] == userID {
			out = append(out, models.UserSummary{ID: key[1]})
		}
	}
	return out, nil
}

func (f *fakeSocial) Favorites(ctx context.Context, userID string) ([]models.TitleEdge, error) {
	return f.titleEdges(f.favorites, userID), nil
}

func (f *fakeSocial) Watchlist(ctx context.Context, userID string) ([]models.TitleEdge, error) {
	return f.titleEdges(f.watch, userID), nil
}

func (f *fakeSocial) titleEdges(edges map[[2]string]bool, userID string) []models.TitleEdge {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.TitleEdge
	for key := range edges {
		if key[0] == userID {
			out = append(out, models.TitleEdge{UserID: userID, MovieSeries: models.TitleInfo{ID: key[1]}})
		}
	}
	return out
}

// fakeTitles is an in-memory Titles repository.
type fakeTitles struct {
	mu     sync.Mutex
	titles map[string]models.MovieSeries
	genres map[string][]string
}

func newFakeTitles() *fakeTitles {
	return &fakeTitles{
		titles: make(map[string]models.MovieSeries),
		genres: make(map[string][]string),
	}
}

func (f *fakeTitles) Create(ctx context.Context, m models.MovieSeries) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.titles[m.ID] = m
	return nil
}

func (f *fakeTitles) GetByID(ctx context.Context, id string) (*models.MovieSeries, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if m, ok := f.titles[id]; ok {
		m.Genres = f.genres[id]
		return &m, nil
	}
	return nil, nil
}

func (f *fakeTitles) GetByTitle(ctx context.Context, title string) (*models.MovieSeries, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.titles {
		if m.Title == title {
			m.Genres = f.genres[m.ID]
			return &m, nil
		}
	}
	return nil, nil
}

func (f *fakeTitles) List(ctx context.Context) ([]models.MovieSeries, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.MovieSeries
	for _, m := range f.titles {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeTitles) Update(ctx context.Context, m models.MovieSeries) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.titles[m.ID]; !ok {
		return errors.New("no such title")
	}
	f.titles[m.ID] = m
	return nil
}

func (f *fakeTitles) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.titles, id)
	return nil
}

func (f *fakeTitles) SetGenres(ctx context.Context, id string, genres []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.genres[id] = genres
	return nil
}

// fakeReviews is an in-memory Reviews repository.
type fakeReviews struct {
	mu      sync.Mutex
	reviews []models.Review
}

func (f *fakeReviews) Create(ctx context.Context, r models.Review) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reviews = append(f.reviews, r)
	return nil
}

func (f *fakeReviews) ListByTitle(ctx context.Context, id string) ([]models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Review
	for _, r := range f.reviews {
		if r.MovieSeriesID == id {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviews) ListByUser(ctx context.Context, id string) ([]models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Review
	for _, r := range f.reviews {
		if r.UserID == id {
			out = append(out, r)
		}
	}
	return out, nil
}

// fakeComments is an in-memory Comments repository.
type fakeComments struct {
	mu       sync.Mutex
	comments []models.Comment
}

func (f *fakeComments) Create(ctx context.Context, c models.Comment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.comments = append(f.comments, c)
	return nil
}

func (f *fakeComments) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.comments {
		if c.ID == id {
			out := c
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeComments) Update(ctx context.Context, id, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, c := range f.comments {
		if c.ID == id {
			f.comments[i].Content = content
			return nil
		}
	}
	return errors.New("no such comment")
}

func (f *fakeComments) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, c := range f.comments {
		if c.ID == id {
			f.comments = append(f.comments[:i], f.comments[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeComments) ListByTitle(ctx context.Context, movieSeriesID string) ([]models.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Comment
	for _, c := range f.comments {
		if c.MovieSeriesID == movieSeriesID {
			out = append(out, c)
		}
	}
	return out, nil
}

// fakeMailer records sent reset mails.
type fakeMailer struct {
	mu     sync.Mutex
	sent   []string // recipient addresses
	tokens []string
	err    error
}

func (f *fakeMailer) SendPasswordReset(ctx context.Context, to, token string) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, to)
	f.tokens = append(f.tokens, token)
	return nil
}
