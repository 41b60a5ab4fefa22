package handlers

import (
	"context"
	"net/http"

	"cinelog/internal/config"
	"cinelog/internal/models"
	"cinelog/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerUser *models.User
	registerErr  error
	loginToken   string
	loginProfile *models.UserProfile
	loginErr     error
	parseID      string
	parseErr     error
	forgotErr    error
	resetErr     error

	lastRegister  service.RegisterParams
	lastLogin     string
	lastPassword  string
	lastParsed    string
	lastForgot    string
	lastResetTok  string
	lastResetPass string
}

func (m *mockAuth) Register(ctx context.Context, p service.RegisterParams) (*models.User, error) {
	m.lastRegister = p
	return m.registerUser, m.registerErr
}

func (m *mockAuth) Login(ctx context.Context, login, password string) (string, *models.UserProfile, error) {
	m.lastLogin = login
	m.lastPassword = password
	return m.loginToken, m.loginProfile, m.loginErr
}

func (m *mockAuth) ParseToken(accessToken string) (string, error) {
	m.lastParsed = accessToken
	return m.parseID, m.parseErr
}

func (m *mockAuth) ForgotPassword(ctx context.Context, email string) error {
	m.lastForgot = email
	return m.forgotErr
}

func (m *mockAuth) ResetPassword(ctx context.Context, token, newPassword string) error {
	m.lastResetTok = token
	m.lastResetPass = newPassword
	return m.resetErr
}

type mockAccounts struct {
	searchResp []models.UserProfile
	searchErr  error
	getResp    *models.UserProfile
	getErr     error
	updateErr  error
	deleteErr  error

	lastFilter models.UserFilter
	lastGetID  string
	lastUpdate service.UpdateAccountParams
	lastDelete string
}

func (m *mockAccounts) Search(ctx context.Context, f models.UserFilter) ([]models.UserProfile, error) {
	m.lastFilter = f
	return m.searchResp, m.searchErr
}

func (m *mockAccounts) Get(ctx context.Context, id string) (*models.UserProfile, error) {
	m.lastGetID = id
	return m.getResp, m.getErr
}

func (m *mockAccounts) UpdateAccount(ctx context.Context, id string, p service.UpdateAccountParams) error {
	m.lastUpdate = p
	return m.updateErr
}

func (m *mockAccounts) DeleteAccount(ctx context.Context, id string) error {
	m.lastDelete = id
	return m.deleteErr
}

type mockTitles struct {
	upsertResp    *models.MovieSeries
	upsertCreated bool
	upsertErr     error
	listResp      []models.MovieSeries
	listErr       error
	getResp       *models.TitleDetail
	getErr        error
	updateErr     error
	deleteErr     error

	lastUpsert service.TitleParams
	lastGetID  string
	lastDelete string
}

func (m *mockTitles) Upsert(ctx context.Context, p service.TitleParams) (*models.MovieSeries, bool, error) {
	m.lastUpsert = p
	return m.upsertResp, m.upsertCreated, m.upsertErr
}

func (m *mockTitles) ListTitles(ctx context.Context) ([]models.MovieSeries, error) {
	return m.listResp, m.listErr
}

func (m *mockTitles) GetTitle(ctx context.Context, id string) (*models.TitleDetail, error) {
	m.lastGetID = id
	return m.getResp, m.getErr
}

func (m *mockTitles) UpdateTitle(ctx context.Context, id string, p service.TitleParams) error {
	return m.updateErr
}

func (m *mockTitles) DeleteTitle(ctx context.Context, id string) error {
	m.lastDelete = id
	return m.deleteErr
}

type mockReviews struct {
	createResp *models.Review
	createErr  error
	listResp   []models.Review
	listErr    error

	lastCreate service.ReviewParams
	lastListID string
}

func (m *mockReviews) CreateReview(ctx context.Context, p service.ReviewParams) (*models.Review, error) {
	m.lastCreate = p
	return m.createResp, m.createErr
}

func (m *mockReviews) ReviewsByTitle(ctx context.Context, movieSeriesID string) ([]models.Review, error) {
	m.lastListID = movieSeriesID
	return m.listResp, m.listErr
}

type mockComments struct {
	createResp *models.Comment
	createErr  error
	updateErr  error
	deleteErr  error

	lastCreate  service.CommentParams
	lastUpdID   string
	lastUpdUser string
	lastContent string
}

func (m *mockComments) CreateComment(ctx context.Context, p service.CommentParams) (*models.Comment, error) {
	m.lastCreate = p
	return m.createResp, m.createErr
}

func (m *mockComments) UpdateComment(ctx context.Context, id, userID, content string) error {
	m.lastUpdID = id
	m.lastUpdUser = userID
	m.lastContent = content
	return m.updateErr
}

func (m *mockComments) DeleteComment(ctx context.Context, id, userID string) error {
	return m.deleteErr
}

type mockSocial struct {
	followAdded   bool
	followErr     error
	favoriteAdded bool
	favoriteErr   error
	watchAdded    bool
	watchErr      error
	followersResp []models.UserSummary
	followingResp []models.UserSummary
	favoritesResp []models.TitleEdge
	watchlistResp []models.TitleEdge
	listErr       error

	lastFollowUser   string
	lastFollowTarget string
	lastFavoriteUser string
	lastFavoriteID   string
	lastWatchID      string
	lastListUser     string
}

func (m *mockSocial) ToggleFollow(ctx context.Context, userID, followedUserID string) (bool, error) {
	m.lastFollowUser = userID
	m.lastFollowTarget = followedUserID
	return m.followAdded, m.followErr
}

func (m *mockSocial) ToggleFavorite(ctx context.Context, userID, movieSeriesID string) (bool, error) {
	m.lastFavoriteUser = userID
	m.lastFavoriteID = movieSeriesID
	return m.favoriteAdded, m.favoriteErr
}

func (m *mockSocial) ToggleWatchlist(ctx context.Context, userID, movieSeriesID string) (bool, error) {
	m.lastWatchID = movieSeriesID
	return m.watchAdded, m.watchErr
}

func (m *mockSocial) Followers(ctx context.Context, userID string) ([]models.UserSummary, error) {
	m.lastListUser = userID
	return m.followersResp, m.listErr
}

func (m *mockSocial) Following(ctx context.Context, userID string) ([]models.UserSummary, error) {
	m.lastListUser = userID
	return m.followingResp, m.listErr
}

func (m *mockSocial) Favorites(ctx context.Context, userID string) ([]models.TitleEdge, error) {
	m.lastListUser = userID
	return m.favoritesResp, m.listErr
}

func (m *mockSocial) Watchlist(ctx context.Context, userID string) ([]models.TitleEdge, error) {
	m.lastListUser = userID
	return m.watchlistResp, m.listErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil, config.CORS{})
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
