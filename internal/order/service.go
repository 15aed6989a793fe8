package order

import (
	"context"
	"errors"

	"tillbox/internal/logger"
	"tillbox/internal/stock"

	"go.uber.org/zap"
)

type Service interface {
	Open(ctx context.Context, cashierID int, payment PaymentType) (*Order, error)
	Get(ctx context.Context, id int) (*Order, error)
	AddItem(ctx context.Context, orderID, stockID, quantity int) error
	ModifyItem(ctx context.Context, orderID, stockID, quantity int) error
	SetStatus(ctx context.Context, orderID int, status Status) error
	Remove(ctx context.Context, orderID int)
	List(ctx context.Context) []*Order
	ListByStatus(ctx context.Context, status Status) []*Order
	Total(ctx context.Context, o *Order) int
}

type service struct {
	repo   Repository
	stocks stock.Repository
}

func NewService(repo Repository, stocks stock.Repository) Service {
	return &service{repo: repo, stocks: stocks}
}

func (s *service) Open(ctx context.Context, cashierID int, payment PaymentType) (*Order, error) {
	log := logger.FromCtx(ctx)

	if !payment.Valid() {
		return nil, ErrInvalidPayment
	}

	o := s.repo.Create(cashierID, payment)
	s.repo.Add(o)

	log.Info("order opened",
		zap.Int("order_id", o.ID),
		zap.Int("cashier_id", cashierID),
		zap.String("payment_type", string(payment)),
	)

	return o, nil
}

func (s *service) Get(ctx context.Context, id int) (*Order, error) {
	return s.repo.Find(id)
}

// AddItem surfaces the failures the raw store swallows: an unknown
// order or stock id and a non-positive quantity come back as errors.
func (s *service) AddItem(ctx context.Context, orderID, stockID, quantity int) error {
	log := logger.FromCtx(ctx)

	o, err := s.repo.Find(orderID)
	if err != nil {
		return err
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if _, err := s.stocks.Find(stockID); err != nil {
		log.Warn("item rejected, stock unknown",
			zap.Int("order_id", orderID),
			zap.Int("stock_id", stockID),
		)
		return err
	}

	s.repo.AddItem(o, stockID, quantity)

	log.Info("item added",
		zap.Int("order_id", orderID),
		zap.Int("stock_id", stockID),
		zap.Int("quantity", quantity),
	)

	return nil
}

func (s *service) ModifyItem(ctx context.Context, orderID, stockID, quantity int) error {
	o, err := s.repo.Find(orderID)
	if err != nil {
		return err
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if o.FindItem(stockID) == nil {
		return ErrItemNotFound
	}

	s.repo.ModifyItem(o, stockID, quantity)

	logger.FromCtx(ctx).Info("item modified",
		zap.Int("order_id", orderID),
		zap.Int("stock_id", stockID),
		zap.Int("quantity", quantity),
	)

	return nil
}

func (s *service) SetStatus(ctx context.Context, orderID int, status Status) error {
	o, err := s.repo.Find(orderID)
	if err != nil {
		return err
	}
	if !status.Valid() {
		return ErrInvalidStatus
	}

	previous := o.Status
	s.repo.SetStatus(o, status)

	logger.FromCtx(ctx).Info("order status changed",
		zap.Int("order_id", orderID),
		zap.String("from", string(previous)),
		zap.String("to", string(status)),
	)

	return nil
}

func (s *service) Remove(ctx context.Context, orderID int) {
	s.repo.Remove(orderID)
	logger.FromCtx(ctx).Info("order removed", zap.Int("order_id", orderID))
}

func (s *service) List(ctx context.Context) []*Order {
	return s.repo.All()
}

func (s *service) ListByStatus(ctx context.Context, status Status) []*Order {
	var out []*Order
	for _, o := range s.repo.All() {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}

// Total prices the order against the current stock records. Lines whose
// stock id has gone dangling contribute nothing.
func (s *service) Total(ctx context.Context, o *Order) int {
	total := 0
	o.Items.Each(func(it *Item) bool {
		st, err := s.stocks.Find(it.StockID)
		if err != nil {
			if errors.Is(err, stock.ErrStockNotFound) {
				logger.FromCtx(ctx).Warn("pricing skipped dangling stock reference",
					zap.Int("order_id", o.ID),
					zap.Int("stock_id", it.StockID),
				)
			}
			return true
		}
		total += st.Price * it.Quantity
		return true
	})
	return total
}
