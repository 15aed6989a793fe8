package order

import (
	"context"
	"testing"

	"tillbox/internal/id"
	"tillbox/internal/stock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (Service, stock.Repository) {
	t.Helper()
	gen := id.NewGenerator()
	stocks := stock.NewRepository(gen)
	repo := NewRepository(gen, stocks)
	return NewService(repo, stocks), stocks
}

func TestService_Open(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, _ := newService(t)

		o, err := svc.Open(ctx, 42, PaymentCash)
		require.NoError(t, err)
		assert.Equal(t, StatusWaiting, o.Status)

		got, err := svc.Get(ctx, o.ID)
		require.NoError(t, err)
		assert.Same(t, o, got)
	})

	t.Run("UnknownPaymentType", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.Open(ctx, 42, PaymentType("BARTER"))
		assert.ErrorIs(t, err, ErrInvalidPayment)
	})

	t.Run("CashierIsNotChecked", func(t *testing.T) {
		// The cashier id is a plain reference; a later user removal
		// leaves it dangling, so opening never validates it either.
		svc, _ := newService(t)

		o, err := svc.Open(ctx, -12345, PaymentPayPal)
		require.NoError(t, err)
		assert.Equal(t, -12345, o.CashierID)
	})
}

func TestService_AddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, stocks := newService(t)
		stocks.Add(&stock.Stock{ID: 7, Name: "Burger", Price: 900, Quantity: 50})
		o, _ := svc.Open(ctx, 1, PaymentCash)

		require.NoError(t, svc.AddItem(ctx, o.ID, 7, 3))
		require.NoError(t, svc.AddItem(ctx, o.ID, 7, 2))
		assert.Equal(t, 5, o.FindItem(7).Quantity)
	})

	t.Run("UnknownOrder", func(t *testing.T) {
		svc, _ := newService(t)
		assert.ErrorIs(t, svc.AddItem(ctx, -1, 7, 3), ErrOrderNotFound)
	})

	t.Run("UnknownStock", func(t *testing.T) {
		svc, _ := newService(t)
		o, _ := svc.Open(ctx, 1, PaymentCash)

		assert.ErrorIs(t, svc.AddItem(ctx, o.ID, 999, 3), stock.ErrStockNotFound)
	})

	t.Run("NonPositiveQuantity", func(t *testing.T) {
		svc, stocks := newService(t)
		stocks.Add(&stock.Stock{ID: 7, Name: "Burger", Price: 900, Quantity: 50})
		o, _ := svc.Open(ctx, 1, PaymentCash)

		assert.ErrorIs(t, svc.AddItem(ctx, o.ID, 7, 0), ErrInvalidQuantity)
		assert.ErrorIs(t, svc.AddItem(ctx, o.ID, 7, -2), ErrInvalidQuantity)
	})
}

func TestService_ModifyItem(t *testing.T) {
	ctx := context.Background()
	svc, stocks := newService(t)
	stocks.Add(&stock.Stock{ID: 7, Name: "Burger", Price: 900, Quantity: 50})
	o, _ := svc.Open(ctx, 1, PaymentCash)
	require.NoError(t, svc.AddItem(ctx, o.ID, 7, 3))

	t.Run("Success", func(t *testing.T) {
		require.NoError(t, svc.ModifyItem(ctx, o.ID, 7, 9))
		assert.Equal(t, 9, o.FindItem(7).Quantity)
	})

	t.Run("AbsentLine", func(t *testing.T) {
		assert.ErrorIs(t, svc.ModifyItem(ctx, o.ID, 8, 9), ErrItemNotFound)
	})

	t.Run("UnknownOrder", func(t *testing.T) {
		assert.ErrorIs(t, svc.ModifyItem(ctx, -1, 7, 9), ErrOrderNotFound)
	})
}

func TestService_SetStatus(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)
	o, _ := svc.Open(ctx, 1, PaymentCash)

	t.Run("AnyTransitionAllowed", func(t *testing.T) {
		require.NoError(t, svc.SetStatus(ctx, o.ID, StatusCompleted))
		require.NoError(t, svc.SetStatus(ctx, o.ID, StatusWaiting))
		assert.Equal(t, StatusWaiting, o.Status)
	})

	t.Run("UnknownStatus", func(t *testing.T) {
		assert.ErrorIs(t, svc.SetStatus(ctx, o.ID, Status("BURNT")), ErrInvalidStatus)
	})

	t.Run("UnknownOrder", func(t *testing.T) {
		assert.ErrorIs(t, svc.SetStatus(ctx, -1, StatusCompleted), ErrOrderNotFound)
	})
}

func TestService_ListByStatus(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	a, _ := svc.Open(ctx, 1, PaymentCash)
	b, _ := svc.Open(ctx, 1, PaymentCash)
	c, _ := svc.Open(ctx, 2, PaymentPayPal)
	require.NoError(t, svc.SetStatus(ctx, b.ID, StatusCompleted))

	waiting := svc.ListByStatus(ctx, StatusWaiting)
	assert.ElementsMatch(t, []*Order{a, c}, waiting)
	assert.Len(t, svc.ListByStatus(ctx, StatusCancelled), 0)
}

func TestService_Total(t *testing.T) {
	ctx := context.Background()
	svc, stocks := newService(t)
	stocks.Add(&stock.Stock{ID: 1, Name: "Fries", Price: 350, Quantity: 50})
	stocks.Add(&stock.Stock{ID: 2, Name: "Cola", Price: 250, Quantity: 50})

	o, _ := svc.Open(ctx, 1, PaymentCash)
	require.NoError(t, svc.AddItem(ctx, o.ID, 1, 2))
	require.NoError(t, svc.AddItem(ctx, o.ID, 2, 3))

	assert.Equal(t, 2*350+3*250, svc.Total(ctx, o))

	t.Run("DanglingLineContributesNothing", func(t *testing.T) {
		stocks.Remove(2)
		assert.Equal(t, 2*350, svc.Total(ctx, o))
	})
}
