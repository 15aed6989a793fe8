// Package session holds the single authenticated user for the process
// and the login throttling and resume-token plumbing around it.
package session

import (
	"context"
	"errors"

	"tillbox/internal/logger"
	"tillbox/internal/user"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var ErrTooManyAttempts = errors.New("too many login attempts, slow down")

type Session struct {
	users   user.Service
	limits  *limiter
	secret  []byte
	current *user.User
}

func New(users user.Service, secret string, loginRate float64, loginBurst int) *Session {
	return &Session{
		users:  users,
		limits: newLimiter(rate.Limit(loginRate), loginBurst),
		secret: []byte(secret),
	}
}

// Login authenticates and, on success, makes the user the process-wide
// session user. Attempts are throttled per username so the tool cannot
// be used to grind passwords.
func (s *Session) Login(ctx context.Context, name, password string) (*user.User, error) {
	if !s.limits.allow(name) {
		logger.FromCtx(ctx).Warn("login throttled", zap.String("name", name))
		return nil, ErrTooManyAttempts
	}

	u, err := s.users.Authenticate(ctx, name, password)
	if err != nil {
		return nil, err
	}

	s.current = u
	return u, nil
}

// Current returns the session user, if any.
func (s *Session) Current() (*user.User, bool) {
	if s.current == nil {
		return nil, false
	}
	return s.current, true
}

func (s *Session) Logout() {
	s.current = nil
}
