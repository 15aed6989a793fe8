package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"tillbox/internal/id"
	"tillbox/internal/order"
	"tillbox/internal/stock"
	"tillbox/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stores struct {
	users  user.Repository
	stocks stock.Repository
	orders order.Repository
}

func newStores() stores {
	gen := id.NewGenerator()
	stocks := stock.NewRepository(gen)
	return stores{
		users:  user.NewRepository(gen),
		stocks: stocks,
		orders: order.NewRepository(gen, stocks),
	}
}

func TestSnapshot_RoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	src := newStores()

	bob := src.users.Create("bob12", user.HashLegacy("secret1"), user.RoleCashier)
	src.users.Add(bob)
	src.users.Add(src.users.Create("alice", user.HashLegacy("pass01"), user.RoleAdmin))

	burger := src.stocks.Create("Burger", 900, 50)
	fries := src.stocks.Create("Fries", 350, 80)
	src.stocks.Add(burger)
	src.stocks.Add(fries)

	o := src.orders.Create(bob.ID, order.PaymentCreditCard)
	src.orders.Add(o)
	src.orders.AddItem(o, burger.ID, 2)
	src.orders.AddItem(o, fries.ID, 1)
	src.orders.SetStatus(o, order.StatusCompleted)

	require.NoError(t, New(dir, src.users, src.stocks, src.orders).Save(ctx))

	dst := newStores()
	require.NoError(t, New(dir, dst.users, dst.stocks, dst.orders).Load(ctx))

	t.Run("UsersPreserved", func(t *testing.T) {
		require.Equal(t, 2, dst.users.Len())

		got, err := dst.users.Find(bob.ID)
		require.NoError(t, err, "ids must survive the round trip")
		assert.Equal(t, "bob12", got.Name)
		assert.Equal(t, user.RoleCashier, got.Role)
		assert.True(t, user.Verify(got.HashedPassword, "secret1"))
	})

	t.Run("StocksPreservedInOrder", func(t *testing.T) {
		all := dst.stocks.All()
		require.Len(t, all, 2)
		assert.Equal(t, "Burger", all[0].Name)
		assert.Equal(t, "Fries", all[1].Name)
		assert.Equal(t, burger.ID, all[0].ID)
	})

	t.Run("OrdersPreservedWithItems", func(t *testing.T) {
		got, err := dst.orders.Find(o.ID)
		require.NoError(t, err)
		assert.Equal(t, bob.ID, got.CashierID)
		assert.Equal(t, order.PaymentCreditCard, got.PaymentType)
		assert.Equal(t, order.StatusCompleted, got.Status)

		require.Equal(t, 2, got.Items.Len())
		srcIDs := make([]int, 0, 2)
		for _, it := range o.Items.All() {
			srcIDs = append(srcIDs, it.StockID)
		}
		dstIDs := make([]int, 0, 2)
		for _, it := range got.Items.All() {
			dstIDs = append(dstIDs, it.StockID)
		}
		assert.Equal(t, srcIDs, dstIDs, "item order must survive")
		assert.Equal(t, 2, got.FindItem(burger.ID).Quantity)
	})
}

func TestSnapshot_LoadMissingFiles(t *testing.T) {
	ctx := context.Background()
	dst := newStores()

	require.NoError(t, New(t.TempDir(), dst.users, dst.stocks, dst.orders).Load(ctx))
	assert.Equal(t, 0, dst.users.Len())
	assert.Equal(t, 0, dst.stocks.Len())
	assert.Equal(t, 0, dst.orders.Len())
}

func TestSnapshot_LoadMalformedLine(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stocks.jsonl"), []byte("{\"id\":1}\nnot-json\n"), 0o644))

	dst := newStores()
	err := New(dir, dst.users, dst.stocks, dst.orders).Load(ctx)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestSnapshot_SaveEmptyStores(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	src := newStores()

	require.NoError(t, New(dir, src.users, src.stocks, src.orders).Save(ctx))

	for _, name := range []string{"users.jsonl", "stocks.jsonl", "orders.jsonl"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Empty(t, data)
	}
}
