package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cinelog/internal/config"
	"cinelog/internal/mailer"
	"cinelog/internal/models"
	"cinelog/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login, token verification and the
// password-reset flow.
type AuthService struct {
	users repository.Users
	cfg   *config.Auth
	mail  mailer.Mailer
}

func NewAuthService(users repository.Users, cfg *config.Config, mail mailer.Mailer) *AuthService {
	return &AuthService{users: users, cfg: &cfg.Auth, mail: mail}
}

var _ Authorization = (*AuthService)(nil)

// RegisterParams is the validated registration payload.
type RegisterParams struct {
	Email        string
	Username     string
	Name         string
	Password     string
	Bio          string
	ProfileImage string
}

// Claims carried by access tokens.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// Register creates an account with a bcrypt-hashed password. Duplicate
// emails are rejected with ErrEmailTaken; the plaintext password is
// never stored.
func (s *AuthService) Register(ctx context.Context, p RegisterParams) (*models.User, error) {
	existing, err := s.users.GetByEmail(ctx, p.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := hashPassword(p.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	u := models.User{
		ID:           uuid.NewString(),
		Email:        p.Email,
		Username:     p.Username,
		Name:         p.Name,
		PasswordHash: hash,
		Bio:          p.Bio,
		ProfileImage: p.ProfileImage,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Login validates credentials and issues an access token. Unknown
// account and wrong password both yield ErrInvalidCredentials so the
// response cannot be used for account enumeration.
func (s *AuthService) Login(ctx context.Context, login, password string) (string, *models.UserProfile, error) {
	u, err := s.users.GetByLogin(ctx, login)
	if err != nil {
		return "", nil, err
	}
	if u == nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(u.ID)
	if err != nil {
		return "", nil, err
	}
	return token, &models.UserProfile{User: *u}, nil
}

// ParseToken verifies an access token and returns the account id.
func (s *AuthService) ParseToken(accessToken string) (string, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, s.keyFunc)
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}

func (s *AuthService) keyFunc(token *jwt.Token) (interface{}, error) {
	// Ensure HMAC signing is used
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return []byte(s.cfg.SigningKey), nil
}

func (s *AuthService) issueToken(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	})
	return token.SignedString([]byte(s.cfg.SigningKey))
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
