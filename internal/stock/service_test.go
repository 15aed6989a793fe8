package stock

import (
	"context"
	"strings"
	"testing"

	"tillbox/internal/id"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc := NewService(newRepo())

		st, err := svc.Create(ctx, "Latte", 450, 20)
		require.NoError(t, err)
		assert.Equal(t, "Latte", st.Name)

		got, err := svc.Get(ctx, st.ID)
		require.NoError(t, err)
		assert.Same(t, st, got)
	})

	t.Run("EmptyName", func(t *testing.T) {
		svc := NewService(newRepo())

		_, err := svc.Create(ctx, "", 450, 20)
		assert.ErrorIs(t, err, ErrInvalidName)
	})

	t.Run("NameTooLong", func(t *testing.T) {
		svc := NewService(newRepo())

		_, err := svc.Create(ctx, strings.Repeat("x", MaxNameLen+1), 450, 20)
		assert.ErrorIs(t, err, ErrInvalidName)
	})
}

func TestService_Adjustments(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(id.NewGenerator())
	svc := NewService(repo)

	st, err := svc.Create(ctx, "Beans", 1200, 5)
	require.NoError(t, err)

	t.Run("Increment", func(t *testing.T) {
		require.NoError(t, svc.Increment(ctx, st.ID, 10))
		assert.Equal(t, 15, st.Quantity)
	})

	t.Run("Decrement", func(t *testing.T) {
		require.NoError(t, svc.Decrement(ctx, st.ID, 4))
		assert.Equal(t, 11, st.Quantity)
	})

	t.Run("AbsentIDSurfacesNotFound", func(t *testing.T) {
		assert.ErrorIs(t, svc.Increment(ctx, -1, 1), ErrStockNotFound)
		assert.ErrorIs(t, svc.Decrement(ctx, -1, 1), ErrStockNotFound)
	})
}

func TestService_Remove(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newRepo())

	st, err := svc.Create(ctx, "Tea", 250, 30)
	require.NoError(t, err)

	svc.Remove(ctx, st.ID)
	_, err = svc.Get(ctx, st.ID)
	assert.ErrorIs(t, err, ErrStockNotFound)
	assert.Empty(t, svc.List(ctx))
}
