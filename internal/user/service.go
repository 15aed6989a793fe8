package user

import (
	"context"
	"errors"

	"tillbox/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, name, password string, role Role) (*User, error)
	Authenticate(ctx context.Context, name, password string) (*User, error)
	ChangePassword(ctx context.Context, id int, password string) error
	Get(ctx context.Context, id int) (*User, error)
	Remove(ctx context.Context, id int)
	List(ctx context.Context) []*User
}

type service struct {
	repo   Repository
	scheme Scheme
}

func NewService(repo Repository, scheme Scheme) Service {
	if !scheme.Valid() {
		scheme = SchemeLegacy
	}
	return &service{repo: repo, scheme: scheme}
}

// Register enforces the flow-level rules the store itself does not:
// name bounds, password bounds and the duplicate-name check.
func (s *service) Register(ctx context.Context, name, password string, role Role) (*User, error) {
	log := logger.FromCtx(ctx)

	if len(name) < MinNameLen || len(name) > MaxNameLen {
		return nil, ErrNameLength
	}
	if len(password) < MinPasswordLen || len(password) > MaxPasswordLen {
		return nil, ErrPassword
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	if _, err := s.repo.FindByName(name); err == nil {
		log.Warn("registration rejected, name taken", zap.String("name", name))
		return nil, ErrNameExists
	}

	hashed, err := Hash(password, s.scheme)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return nil, err
	}

	u := s.repo.Create(name, hashed, role)
	s.repo.Add(u)

	log.Info("user registered",
		zap.Int("user_id", u.ID),
		zap.String("name", u.Name),
		zap.String("role", string(u.Role)),
	)

	return u, nil
}

// Authenticate verifies a name/password pair. The failure is the same
// for an unknown name and a wrong password.
func (s *service) Authenticate(ctx context.Context, name, password string) (*User, error) {
	log := logger.FromCtx(ctx)

	u, err := s.repo.FindByName(name)
	if err != nil {
		log.Info("login failed", zap.String("name", name))
		return nil, ErrInvalidCredentials
	}

	if !Verify(u.HashedPassword, password) {
		log.Info("login failed", zap.String("name", name))
		return nil, ErrInvalidCredentials
	}

	log.Info("login succeeded", zap.Int("user_id", u.ID), zap.String("name", name))
	return u, nil
}

func (s *service) ChangePassword(ctx context.Context, id int, password string) error {
	log := logger.FromCtx(ctx)

	if len(password) < MinPasswordLen || len(password) > MaxPasswordLen {
		return ErrPassword
	}

	hashed, err := Hash(password, s.scheme)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return err
	}

	if err := s.repo.ChangePassword(id, hashed); err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			log.Error("failed to change password", zap.Int("user_id", id), zap.Error(err))
		}
		return err
	}

	log.Info("password changed", zap.Int("user_id", id))
	return nil
}

func (s *service) Get(ctx context.Context, id int) (*User, error) {
	return s.repo.Find(id)
}

// Remove never touches orders opened by the user; their cashier id goes
// dangling and lookups on it report not found.
func (s *service) Remove(ctx context.Context, id int) {
	s.repo.Remove(id)
	logger.FromCtx(ctx).Info("user removed", zap.Int("user_id", id))
}

func (s *service) List(ctx context.Context) []*User {
	return s.repo.All()
}
