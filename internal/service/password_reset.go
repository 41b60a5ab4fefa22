package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// resetClaims carried by password-reset tokens. The email is the
// payload; the stored copy on the user row makes the token single-use.
type resetClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// ForgotPassword issues a reset token and mails it to the account.
// The caller always gets a nil error for an unknown email so the
// endpoint cannot be used to probe which addresses are registered;
// only infrastructure failures surface.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if u == nil {
		return nil
	}

	token, err := s.issueResetToken(email)
	if err != nil {
		return err
	}
	if err := s.users.SetResetToken(ctx, u.ID, token); err != nil {
		return err
	}
	return s.mail.SendPasswordReset(ctx, email, token)
}

// ResetPassword consumes a reset token and sets the new password.
// Rejections, in order: bad signature or expiry, account gone, token
// not the one on record or already used, new password equal to the
// current one.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	email, err := s.parseResetToken(token)
	if err != nil {
		return ErrInvalidToken
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrNotFound
	}
	if u.ResetToken != token {
		return ErrInvalidToken
	}
	if u.ResetTokenUsed {
		return ErrTokenUsed
	}
	if verifyPassword(u.PasswordHash, newPassword) == nil {
		return ErrSamePassword
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return s.users.ConsumeResetToken(ctx, u.ID, hash)
}

func (s *AuthService) issueResetToken(email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &resetClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.ResetTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email: email,
	})
	return token.SignedString([]byte(s.cfg.SigningKey))
}

func (s *AuthService) parseResetToken(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &resetClaims{}, s.keyFunc)
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*resetClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}
	return claims.Email, nil
}
