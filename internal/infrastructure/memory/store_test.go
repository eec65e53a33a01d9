package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dulcibelle-api/internal/domain"
	"github.com/jhoicas/dulcibelle-api/internal/domain/entity"
	"github.com/jhoicas/dulcibelle-api/internal/domain/repository"
	"github.com/jhoicas/dulcibelle-api/internal/infrastructure/memory"
)

func TestRunOrder_RollbackRestauraEstado(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.Products().Create(ctx, &entity.Product{Name: "Sérum", Stock: 5}))

	boom := errors.New("boom")
	err := memory.NewTxRunner(store).RunOrder(ctx, func(p repository.ProductRepository, o repository.OrderRepository) error {
		require.NoError(t, p.DecrementStock(ctx, 1, 3))
		require.NoError(t, o.Create(ctx, &entity.Order{Quantity: 3}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	prod, err := store.Products().GetStorefront(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, prod.Stock)
	n, err := store.Orders().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestDecrementStock_NoBajaDeCero(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.Products().Create(ctx, &entity.Product{Stock: 3}))

	err := store.Products().DecrementStock(ctx, 1, 5)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	require.NoError(t, store.Products().DecrementStock(ctx, 1, 3))
	prod, _ := store.Products().GetStorefront(ctx)
	assert.Equal(t, 0, prod.Stock)
}

func TestOrders_ListDescendentePorFecha(t *testing.T) {
	ctx := context.Background()
	orders := memory.New().Orders()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, orders.Create(ctx, &entity.Order{CreatedAt: base.Add(time.Duration(i) * time.Hour)}))
	}

	list, err := orders.List(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(3), list[0].ID)
	assert.Equal(t, int64(2), list[1].ID)

	list, err = orders.List(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(1), list[0].ID)

	list, err = orders.List(ctx, 2, 10)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestOrders_UpdateStatusInexistente(t *testing.T) {
	err := memory.New().Orders().UpdateStatus(context.Background(), 99, entity.OrderStatusShipped)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrders_SetNumberDuplicado(t *testing.T) {
	ctx := context.Background()
	orders := memory.New().Orders()
	a, b := &entity.Order{}, &entity.Order{}
	require.NoError(t, orders.Create(ctx, a))
	require.NoError(t, orders.Create(ctx, b))
	require.NoError(t, orders.SetNumber(ctx, a.ID, "CMD-2024-0001"))
	assert.ErrorIs(t, orders.SetNumber(ctx, b.ID, "CMD-2024-0001"), domain.ErrDuplicate)
}

func TestAdmins_UsernameUnico(t *testing.T) {
	ctx := context.Background()
	admins := memory.New().Admins()
	require.NoError(t, admins.Create(ctx, &entity.Admin{Username: "marie", PasswordHash: "h"}))
	assert.ErrorIs(t, admins.Create(ctx, &entity.Admin{Username: "marie", PasswordHash: "h"}), domain.ErrDuplicate)

	got, err := admins.GetByUsername(ctx, "marie")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(1), got.ID)

	missing, err := admins.GetByUsername(ctx, "paul")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
