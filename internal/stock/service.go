package stock

import (
	"context"

	"tillbox/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, name string, price, quantity int) (*Stock, error)
	Get(ctx context.Context, id int) (*Stock, error)
	Increment(ctx context.Context, id, amount int) error
	Decrement(ctx context.Context, id, amount int) error
	Remove(ctx context.Context, id int)
	List(ctx context.Context) []*Stock
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Create re-validates the name at the core boundary; the views prompt
// until input is valid but the store no longer trusts them.
func (s *service) Create(ctx context.Context, name string, price, quantity int) (*Stock, error) {
	log := logger.FromCtx(ctx)

	if len(name) == 0 || len(name) > MaxNameLen {
		log.Warn("rejected stock name", zap.Int("length", len(name)))
		return nil, ErrInvalidName
	}

	st := s.repo.Create(name, price, quantity)
	s.repo.Add(st)

	log.Info("stock created",
		zap.Int("stock_id", st.ID),
		zap.String("name", st.Name),
		zap.Int("price", st.Price),
		zap.Int("quantity", st.Quantity),
	)

	return st, nil
}

func (s *service) Get(ctx context.Context, id int) (*Stock, error) {
	return s.repo.Find(id)
}

func (s *service) Increment(ctx context.Context, id, amount int) error {
	if _, err := s.repo.Find(id); err != nil {
		return err
	}
	s.repo.IncrementQuantity(id, amount)
	logger.FromCtx(ctx).Info("stock quantity incremented",
		zap.Int("stock_id", id),
		zap.Int("amount", amount),
	)
	return nil
}

func (s *service) Decrement(ctx context.Context, id, amount int) error {
	if _, err := s.repo.Find(id); err != nil {
		return err
	}
	s.repo.DecrementQuantity(id, amount)
	logger.FromCtx(ctx).Info("stock quantity decremented",
		zap.Int("stock_id", id),
		zap.Int("amount", amount),
	)
	return nil
}

// Remove never cascades: order items keep their stock id and lookups on
// it report not found.
func (s *service) Remove(ctx context.Context, id int) {
	s.repo.Remove(id)
	logger.FromCtx(ctx).Info("stock removed", zap.Int("stock_id", id))
}

func (s *service) List(ctx context.Context) []*Stock {
	return s.repo.All()
}
