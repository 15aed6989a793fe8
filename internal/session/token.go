package session

import (
	"context"
	"errors"
	"os"
	"time"

	"tillbox/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// Resume tokens let a restarted process re-establish the session user
// without re-prompting for credentials. They are plain HS256 JWTs
// signed with SESSION_SECRET; with no secret configured the feature is
// off.

var ErrNoSecret = errors.New("SESSION_SECRET is not set")

const tokenTTL = 24 * time.Hour

type claims struct {
	UserID int    `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Token mints a resume token for the current session user.
func (s *Session) Token() (string, error) {
	if len(s.secret) == 0 {
		return "", ErrNoSecret
	}
	u, ok := s.Current()
	if !ok {
		return "", errors.New("no session user")
	}

	c := claims{
		UserID: u.ID,
		Name:   u.Name,
		Role:   string(u.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString(s.secret)
}

// Resume re-establishes the session from a token. The user must still
// exist in the store; a removed account cannot be resumed into.
func (s *Session) Resume(ctx context.Context, tokenStr string) error {
	if len(s.secret) == 0 {
		return ErrNoSecret
	}

	token, err := jwt.ParseWithClaims(
		tokenStr,
		&claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return s.secret, nil
		},
	)
	if err != nil {
		return err
	}

	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return errors.New("invalid token")
	}

	u, err := s.users.Get(ctx, c.UserID)
	if err != nil {
		return err
	}

	s.current = u
	logger.FromCtx(ctx).Info("session resumed",
		zap.Int("user_id", u.ID),
		zap.String("name", u.Name),
	)
	return nil
}

// SaveFile persists the current session's resume token. With no session
// user or no secret the file is removed instead, so a logout sticks.
func (s *Session) SaveFile(path string) error {
	token, err := s.Token()
	if err != nil {
		_ = os.Remove(path)
		return nil
	}
	return os.WriteFile(path, []byte(token), 0o600)
}

// ResumeFile restores the session from a saved token. Any failure, a
// missing file included, leaves the session unset and is not an error:
// the user just logs in again.
func (s *Session) ResumeFile(ctx context.Context, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	if err := s.Resume(ctx, string(data)); err != nil {
		logger.FromCtx(ctx).Info("saved session not resumable", zap.Error(err))
	}
}
